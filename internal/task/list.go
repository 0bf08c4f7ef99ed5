// Package task holds the board state: two ordered task lists and the
// cursor-driven operations that navigate and mutate them.
package task

// List is an ordered sequence of task titles plus the cursor every
// operation acts on. The cursor is 0 on an empty list and a valid index
// otherwise; every mutator restores that invariant before returning, so
// none of the operations can fail. Boundary conditions are absorbed by
// clamping instead of being reported.
type List struct {
	items  []string
	cursor int
}

// NewList wraps items in a list with the cursor on the first entry.
func NewList(items []string) *List {
	return &List{items: items}
}

func (l *List) Len() int { return len(l.items) }

// Items exposes the backing slice for rendering and saving. Callers must
// not mutate it.
func (l *List) Items() []string { return l.items }

// Cursor is the focused index: 0 on an empty list.
func (l *List) Cursor() int { return l.cursor }

// SetCursor moves the cursor to pos, clamped into the valid range.
func (l *List) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	l.cursor = pos
	l.reclamp()
}

// Title returns the focused item's text, or false on an empty list.
func (l *List) Title() (string, bool) {
	if l.cursor >= len(l.items) {
		return "", false
	}
	return l.items[l.cursor], true
}

// Up moves the cursor one row up, stopping at the first item.
func (l *List) Up() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// Down moves the cursor one row down, stopping at the last item.
func (l *List) Down() {
	if l.cursor+1 < len(l.items) {
		l.cursor++
	}
}

// First jumps to the top of the list.
func (l *List) First() {
	l.cursor = 0
}

// Last jumps to the bottom of the list; no-op when empty.
func (l *List) Last() {
	if n := len(l.items); n > 0 {
		l.cursor = n - 1
	}
}

// DragUp swaps the focused item with the one above it and moves the cursor
// along, keeping focus on the dragged item. Reports false at the boundary.
func (l *List) DragUp() bool {
	if l.cursor == 0 || l.cursor >= len(l.items) {
		return false
	}
	l.items[l.cursor-1], l.items[l.cursor] = l.items[l.cursor], l.items[l.cursor-1]
	l.cursor--
	return true
}

// DragDown swaps the focused item with the one below it, cursor following.
func (l *List) DragDown() bool {
	if l.cursor+1 >= len(l.items) {
		return false
	}
	l.items[l.cursor], l.items[l.cursor+1] = l.items[l.cursor+1], l.items[l.cursor]
	l.cursor++
	return true
}

// Delete removes the focused item and returns it. When the last item was
// removed the cursor reclamps to the new last index.
func (l *List) Delete() (string, bool) {
	if l.cursor >= len(l.items) {
		return "", false
	}
	removed := l.items[l.cursor]
	l.items = append(l.items[:l.cursor], l.items[l.cursor+1:]...)
	l.reclamp()
	return removed, true
}

// Transfer removes the focused item and appends it to the end of dst,
// preserving dst's insertion order. A cursor out of range (possible only
// transiently) makes this a silent no-op.
func (l *List) Transfer(dst *List) (string, bool) {
	if l.cursor >= len(l.items) {
		return "", false
	}
	title := l.items[l.cursor]
	dst.items = append(dst.items, title)
	l.items = append(l.items[:l.cursor], l.items[l.cursor+1:]...)
	l.reclamp()
	return title, true
}

// Insert places title at the cursor position; the cursor stays on the new
// item.
func (l *List) Insert(title string) {
	l.items = append(l.items, "")
	copy(l.items[l.cursor+1:], l.items[l.cursor:])
	l.items[l.cursor] = title
}

// Set replaces the focused item's text; no-op on an empty list.
func (l *List) Set(title string) {
	if l.cursor < len(l.items) {
		l.items[l.cursor] = title
	}
}

func (l *List) reclamp() {
	switch n := len(l.items); {
	case n == 0:
		l.cursor = 0
	case l.cursor >= n:
		l.cursor = n - 1
	}
}
