package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"twodo/internal/interrupt"
	"twodo/internal/store"
	"twodo/internal/task"
)

// Run loads the task file at path and drives the board until quit or
// interrupt, writing the file back on the way out. hist may be nil when
// history recording is disabled.
func Run(path string, hist *store.History) error {
	todo, done, err := store.Load(path)
	if err != nil {
		return err
	}
	board := task.NewBoard(todo, done)
	restoreSession(board, store.LoadSession(store.SessionPath(path)))

	applyColorProfilePreference()
	applyThemePreference()
	interrupt.Install()

	m := newModel(path, board, hist)
	// The program polls the interrupt flag itself; bubbletea's own SIGINT
	// handling would quit without saving.
	out, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithoutSignalHandler()).Run()
	if err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	if final, ok := out.(model); ok && final.err != nil {
		return final.err
	}
	return nil
}

// restoreSession reapplies the previous focus and cursor positions. Cursors
// clamp against the freshly loaded lists, so a stale session can never
// point outside them.
func restoreSession(board *task.Board, sess store.Session) {
	if sess.Active == task.Done.String() {
		board.Active = task.Done
	}
	board.Todo.SetCursor(sess.TodoCursor)
	board.Done.SetCursor(sess.DoneCursor)
}
