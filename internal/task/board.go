package task

import "fmt"

// Status names the two panels.
type Status int

const (
	Todo Status = iota
	Done
)

// Toggle returns the other panel.
func (s Status) Toggle() Status {
	switch s {
	case Todo:
		return Done
	case Done:
		return Todo
	}
	panic(fmt.Sprintf("task: impossible status %d", int(s)))
}

func (s Status) String() string {
	switch s {
	case Todo:
		return "TODO"
	case Done:
		return "DONE"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Board is the whole model behind the UI: the two lists plus which panel
// has input focus. The lists share no state; items move between them only
// through Transfer.
type Board struct {
	Todo, Done List
	Active     Status
}

// NewBoard builds a board over freshly loaded items, focus on the todo
// panel with both cursors at the top.
func NewBoard(todo, done []string) *Board {
	return &Board{Todo: *NewList(todo), Done: *NewList(done)}
}

// ActiveList is the list owning input focus.
func (b *Board) ActiveList() *List {
	if b.Active == Todo {
		return &b.Todo
	}
	return &b.Done
}

// InactiveList is the other one.
func (b *Board) InactiveList() *List {
	if b.Active == Todo {
		return &b.Done
	}
	return &b.Todo
}

// ToggleActive flips focus to the other panel.
func (b *Board) ToggleActive() {
	b.Active = b.Active.Toggle()
}

// Transfer moves the focused item to the end of the inactive list and
// returns it; false when the active list is empty.
func (b *Board) Transfer() (string, bool) {
	return b.ActiveList().Transfer(b.InactiveList())
}
