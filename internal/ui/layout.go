package ui

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ErrInvalidState reports an unbalanced layout call sequence: a frame opened
// twice, a widget placed outside any frame, or more pops than pushes. These
// are bugs in frame construction, not runtime conditions, so the stack
// panics with an error wrapping this sentinel instead of returning it.
var ErrInvalidState = errors.New("ui: invalid layout state")

// Orientation is the flow direction of a layout container.
type Orientation int

const (
	Horz Orientation = iota
	Vert
)

func (o Orientation) String() string {
	if o == Horz {
		return "horz"
	}
	return "vert"
}

// vector is the direction widgets advance along inside a container.
func (o Orientation) vector() Vec2 {
	if o == Horz {
		return Vec2{X: 1, Y: 0}
	}
	return Vec2{X: 0, Y: 1}
}

// Style selects one of the two board color states.
type Style int

const (
	Regular Style = iota
	Highlighted
)

// Surface receives absolutely positioned glyph runs from the layout stack.
// The TUI's frame buffer implements it; tests use a recording fake.
type Surface interface {
	Draw(pos Vec2, text string, style Style)
}

// Layout is one open container: where it starts and how much of it the
// widgets placed so far occupy. Size only ever grows.
type Layout struct {
	Orient Orientation
	Origin Vec2
	Size   Vec2
}

// AvailablePos is where the next widget in this container goes.
func (l Layout) AvailablePos() Vec2 {
	return l.Origin.Add(l.Size.Mul(l.Orient.vector()))
}

// AddWidget grows the container by one widget. Horizontal containers sum
// widths and keep the tallest height; vertical containers do the transpose.
func (l *Layout) AddWidget(size Vec2) {
	switch l.Orient {
	case Horz:
		l.Size.X += size.X
		l.Size.Y = max(l.Size.Y, size.Y)
	case Vert:
		l.Size.X = max(l.Size.X, size.X)
		l.Size.Y += size.Y
	}
}

// Stack lays out one frame as nested containers driven purely by call
// order. Nothing is retained between frames: Begin opens the root, widgets
// and nested containers grow it bottom-up, End tears everything down.
type Stack struct {
	surface Surface
	layouts []Layout
}

func NewStack(surface Surface) *Stack {
	return &Stack{surface: surface}
}

// Begin opens the root container. The previous frame must have been closed.
func (s *Stack) Begin(origin Vec2, orient Orientation) {
	if len(s.layouts) != 0 {
		s.fail("Begin inside an open frame")
	}
	s.layouts = append(s.layouts, Layout{Orient: orient, Origin: origin})
}

// BeginNested opens a child container at the parent's next free position.
func (s *Stack) BeginNested(orient Orientation) {
	top := s.top("BeginNested")
	s.layouts = append(s.layouts, Layout{Orient: orient, Origin: top.AvailablePos()})
}

// EndNested closes the innermost child and folds its accumulated size into
// the parent. The root cannot be popped this way.
func (s *Stack) EndNested() {
	if len(s.layouts) < 2 {
		s.fail("EndNested without a nested layout")
	}
	child := s.layouts[len(s.layouts)-1]
	s.layouts = s.layouts[:len(s.layouts)-1]
	s.layouts[len(s.layouts)-1].AddWidget(child.Size)
}

// End closes the root and completes the frame. The root's accumulated size
// is discarded.
func (s *Stack) End() {
	if len(s.layouts) != 1 {
		s.fail("End without exactly the root layout")
	}
	s.layouts = s.layouts[:0]
}

// Label places text occupying width columns and one row. Text wider than
// width is drawn in full; spilling past the reserved cells is accepted
// behavior, not something to silently truncate.
func (s *Stack) Label(text string, width int, style Style) {
	top := s.top("Label")
	s.surface.Draw(top.AvailablePos(), text, style)
	top.AddWidget(Vec2{X: width, Y: 1})
}

// EditField draws st as a single editable row: the buffer in regular style
// with the cell at the cursor inverted. A cursor at end-of-buffer shows as
// a blank highlighted cell. Occupies width columns and one row.
func (s *Stack) EditField(st *EditState, width int) {
	top := s.top("EditField")
	pos := top.AvailablePos()
	s.surface.Draw(pos, st.String(), Regular)

	cur := " "
	if r, ok := st.runeAtCursor(); ok {
		cur = string(r)
	}
	col := runewidth.StringWidth(st.beforeCursor())
	s.surface.Draw(pos.Add(Vec2{X: col}), cur, Highlighted)

	top.AddWidget(Vec2{X: width, Y: 1})
}

func (s *Stack) top(op string) *Layout {
	if len(s.layouts) == 0 {
		s.fail(op + " outside a frame")
	}
	return &s.layouts[len(s.layouts)-1]
}

func (s *Stack) fail(msg string) {
	panic(fmt.Errorf("%w: %s (%d open layouts)", ErrInvalidState, msg, len(s.layouts)))
}
