// Package tui drives the board: a bubbletea program whose Update routes
// keys through an ordered handler chain and whose View rebuilds the whole
// screen each frame through the layout stack.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"twodo/internal/ui"
)

// frame is the cell grid one render pass draws into. It implements
// ui.Surface; glyph runs falling outside the grid are dropped the way a
// physical terminal edge would drop them.
type frame struct {
	width, height int
	cells         []cell
}

// A zero rune marks the continuation cell of a wide rune.
type cell struct {
	r     rune
	style ui.Style
}

func newFrame(width, height int) *frame {
	f := &frame{width: width, height: height, cells: make([]cell, width*height)}
	for i := range f.cells {
		f.cells[i].r = ' '
	}
	return f
}

// Draw implements ui.Surface. Wide runes occupy two cells; a wide rune
// that would straddle the right edge is dropped entirely.
func (f *frame) Draw(pos ui.Vec2, text string, style ui.Style) {
	if pos.Y < 0 || pos.Y >= f.height {
		return
	}
	row := pos.Y * f.width
	x := pos.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= f.width {
			break
		}
		if x < 0 || x+w > f.width {
			x += w
			continue
		}
		f.cells[row+x] = cell{r: r, style: style}
		for i := 1; i < w; i++ {
			f.cells[row+x+i] = cell{style: style}
		}
		x += w
	}
}

// String flushes the grid to terminal lines, grouping consecutive cells of
// one style into a single styled run.
func (f *frame) String() string {
	var b strings.Builder
	for y := 0; y < f.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		f.flushRow(&b, y)
	}
	return b.String()
}

func (f *frame) flushRow(b *strings.Builder, y int) {
	row := f.cells[y*f.width : (y+1)*f.width]

	// Trailing regular blanks carry nothing; highlighted ones do (the edit
	// cursor can sit on one past the end of its buffer).
	end := len(row)
	for end > 0 && row[end-1].style == ui.Regular && (row[end-1].r == ' ' || row[end-1].r == 0) {
		end--
	}

	for x := 0; x < end; {
		style := row[x].style
		var run strings.Builder
		for x < end && row[x].style == style {
			if row[x].r != 0 {
				run.WriteRune(row[x].r)
			}
			x++
		}
		b.WriteString(boardStyle(style).Render(run.String()))
	}
}
