package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// EditState is the buffer and cursor behind in-place item editing. The
// cursor is a rune offset in [0, len]; it is re-clamped before every key so
// a stale offset can never index out of range.
type EditState struct {
	buffer []rune
	cursor int
}

// NewEditState seeds the buffer with text. atEnd places the cursor after
// the last rune (renaming an existing item); otherwise it starts at 0
// (typing a brand-new one).
func NewEditState(text string, atEnd bool) *EditState {
	st := &EditState{buffer: []rune(text)}
	if atEnd {
		st.cursor = len(st.buffer)
	}
	return st
}

func (st *EditState) String() string { return string(st.buffer) }

func (st *EditState) Len() int { return len(st.buffer) }

// Cursor returns the rune offset, always within [0, Len].
func (st *EditState) Cursor() int {
	st.clamp()
	return st.cursor
}

// HandleKey applies one key event to the buffer and reports whether the
// widget consumed it. Keys the widget does not own (notably Enter) are left
// for the caller to reinterpret.
func (st *EditState) HandleKey(msg tea.KeyMsg) bool {
	st.clamp()
	if msg.Alt {
		return false
	}
	switch msg.Type {
	case tea.KeyLeft:
		st.Left()
		return true
	case tea.KeyRight:
		st.Right()
		return true
	case tea.KeyBackspace:
		st.Backspace()
		return true
	case tea.KeyDelete:
		st.Delete()
		return true
	}
	// Printable input arrives as a one-rune key; only the ASCII printable
	// range is accepted.
	if s := msg.String(); len(s) == 1 && s[0] >= ' ' && s[0] <= '~' {
		st.Insert(rune(s[0]))
		return true
	}
	return false
}

// Insert places r at the cursor and advances past it.
func (st *EditState) Insert(r rune) {
	st.clamp()
	st.buffer = append(st.buffer, 0)
	copy(st.buffer[st.cursor+1:], st.buffer[st.cursor:])
	st.buffer[st.cursor] = r
	st.cursor++
}

// Left moves the cursor one rune back, stopping at the start.
func (st *EditState) Left() {
	st.clamp()
	if st.cursor > 0 {
		st.cursor--
	}
}

// Right moves the cursor one rune forward, stopping past the last rune.
func (st *EditState) Right() {
	st.clamp()
	if st.cursor < len(st.buffer) {
		st.cursor++
	}
}

// Backspace removes the rune before the cursor.
func (st *EditState) Backspace() {
	st.clamp()
	if st.cursor == 0 {
		return
	}
	st.cursor--
	st.buffer = append(st.buffer[:st.cursor], st.buffer[st.cursor+1:]...)
}

// Delete removes the rune under the cursor.
func (st *EditState) Delete() {
	st.clamp()
	if st.cursor >= len(st.buffer) {
		return
	}
	st.buffer = append(st.buffer[:st.cursor], st.buffer[st.cursor+1:]...)
}

func (st *EditState) clamp() {
	if st.cursor < 0 {
		st.cursor = 0
	}
	if st.cursor > len(st.buffer) {
		st.cursor = len(st.buffer)
	}
}

// runeAtCursor returns the rune under the cursor, or false when the cursor
// sits at end-of-buffer.
func (st *EditState) runeAtCursor() (rune, bool) {
	st.clamp()
	if st.cursor >= len(st.buffer) {
		return 0, false
	}
	return st.buffer[st.cursor], true
}

// beforeCursor returns the buffer contents left of the cursor, which is
// what determines the cursor's display column.
func (st *EditState) beforeCursor() string {
	st.clamp()
	return string(st.buffer[:st.cursor])
}
