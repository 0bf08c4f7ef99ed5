package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"twodo/internal/interrupt"
	"twodo/internal/logging"
	"twodo/internal/store"
	"twodo/internal/task"
	"twodo/internal/ui"
)

const frameInterval = 16 * time.Millisecond

// frameTickMsg paces the free-running loop so interrupts are noticed even
// when no input arrives.
type frameTickMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameTickMsg(t) })
}

// model is one board session. Update routes each key through an ordered
// chain of handlers; the first one that consumes the key ends dispatch, so
// list commands can never fire mid-edit.
type model struct {
	path  string
	board *task.Board
	keys  keyMap
	help  help.Model

	editing    *ui.EditState
	editingNew bool // edit came from insert, not rename

	notice   string
	width    int
	height   int
	showHelp bool
	helpText string

	hist     *store.History
	quitting bool
	err      error
}

func newModel(path string, board *task.Board, hist *store.History) model {
	return model{
		path:  path,
		board: board,
		keys:  defaultKeyMap(),
		help:  help.New(),
		hist:  hist,
	}
}

func (m model) Init() tea.Cmd {
	return frameTick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.showHelp {
			m.helpText = renderHelp(m.width, m.height)
		}
		return m, nil

	case frameTickMsg:
		if interrupt.Poll() {
			m.quitting = true
			cmd := m.finish()
			return m, cmd
		}
		return m, frameTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Whatever the key does, it retires the previous notice.
	m.notice = ""

	if m.showHelp {
		m.showHelp = false
		m.helpText = ""
		return m, nil
	}

	// Fixed priority: the first handler that consumes the key wins.
	for _, handle := range []func(tea.KeyMsg) bool{
		m.handleEditing,
		m.handleListKeys,
		m.handlePanelToggle,
		m.handleHelp,
		m.handleQuit,
	} {
		if handle(msg) {
			break
		}
	}

	if m.quitting {
		cmd := m.finish()
		return m, cmd
	}
	return m, nil
}

// handleEditing owns every key while an item is being edited: the widget
// consumes what it recognizes, Enter commits, and anything else is dropped
// on the floor rather than passed down the chain.
func (m *model) handleEditing(msg tea.KeyMsg) bool {
	if m.editing == nil {
		return false
	}
	if m.editing.HandleKey(msg) {
		return true
	}
	if msg.Type == tea.KeyEnter {
		m.commitEdit()
	}
	return true
}

func (m *model) commitEdit() {
	title := m.editing.String()
	m.board.ActiveList().Set(title)
	if m.editingNew {
		m.logEvent(store.EventAdd, title)
	} else {
		m.logEvent(store.EventRename, title)
	}
	m.editing = nil
	m.editingNew = false
}

func (m *model) handleListKeys(msg tea.KeyMsg) bool {
	list := m.board.ActiveList()
	switch {
	case key.Matches(msg, m.keys.Up):
		list.Up()
	case key.Matches(msg, m.keys.Down):
		list.Down()
	case key.Matches(msg, m.keys.First):
		list.First()
	case key.Matches(msg, m.keys.Last):
		list.Last()
	case key.Matches(msg, m.keys.DragUp):
		list.DragUp()
	case key.Matches(msg, m.keys.DragDown):
		list.DragDown()
	case key.Matches(msg, m.keys.Delete):
		m.deleteCurrent()
	case key.Matches(msg, m.keys.Insert):
		m.insertNew()
	case key.Matches(msg, m.keys.Rename):
		m.renameCurrent()
	case key.Matches(msg, m.keys.Transfer):
		m.transferCurrent()
	default:
		return false
	}
	return true
}

// Only finished items may be thrown away; todo items must be completed (or
// edited into shape) instead.
func (m *model) deleteCurrent() {
	if m.board.Active != task.Done {
		m.notice = "Can't delete items from TODO. Mark it as DONE first or edit it."
		return
	}
	if title, ok := m.board.Done.Delete(); ok {
		m.logEvent(store.EventDelete, title)
	}
}

// New items always start on the todo side.
func (m *model) insertNew() {
	if m.board.Active != task.Todo {
		m.notice = "Can't insert a new item into DONE"
		return
	}
	m.board.Todo.Insert("")
	m.editing = ui.NewEditState("", false)
	m.editingNew = true
}

func (m *model) renameCurrent() {
	if title, ok := m.board.ActiveList().Title(); ok {
		m.editing = ui.NewEditState(title, true)
		m.editingNew = false
	}
}

func (m *model) transferCurrent() {
	title, ok := m.board.Transfer()
	if !ok {
		return
	}
	if m.board.Active == task.Todo {
		m.notice = "DONE!"
		m.logEvent(store.EventDone, title)
	} else {
		m.notice = "No, not done yet..."
		m.logEvent(store.EventUndone, title)
	}
}

func (m *model) handlePanelToggle(msg tea.KeyMsg) bool {
	if !key.Matches(msg, m.keys.Toggle) {
		return false
	}
	m.board.ToggleActive()
	return true
}

func (m *model) handleHelp(msg tea.KeyMsg) bool {
	if !key.Matches(msg, m.keys.Help) {
		return false
	}
	m.showHelp = true
	m.helpText = renderHelp(m.width, m.height)
	return true
}

func (m *model) handleQuit(msg tea.KeyMsg) bool {
	if !key.Matches(msg, m.keys.Quit) {
		return false
	}
	m.quitting = true
	return true
}

func (m *model) logEvent(kind store.EventKind, title string) {
	if m.hist == nil {
		return
	}
	if err := m.hist.Append(context.Background(), kind, title); err != nil {
		logging.Warnf("history append failed: %v", err)
	}
}

// finish persists everything and leaves the event loop. An edit still open
// (interrupt arrived mid-typing) is committed first so the typed text is
// not lost.
func (m *model) finish() tea.Cmd {
	if m.editing != nil {
		m.commitEdit()
	}
	if err := store.Save(m.path, m.board.Todo.Items(), m.board.Done.Items()); err != nil {
		m.err = err
	}
	sess := store.Session{
		Version:    1,
		Active:     m.board.Active.String(),
		TodoCursor: m.board.Todo.Cursor(),
		DoneCursor: m.board.Done.Cursor(),
	}
	if err := store.SaveSession(store.SessionPath(m.path), sess); err != nil {
		logging.Warnf("session save failed: %v", err)
	}
	return tea.Quit
}

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.showHelp {
		return m.helpText
	}

	rows := m.height
	footer := ""
	if rows > 1 {
		rows--
		footer = "\n" + m.help.View(m.keys)
	}
	f := newFrame(m.width, rows)
	m.drawBoard(f)
	return f.String() + footer
}

// drawBoard rebuilds the whole frame: the notice line and a spacer on top,
// then the two panels side by side. Nothing survives between frames.
func (m model) drawBoard(f *frame) {
	stack := ui.NewStack(f)
	half := m.width / 2

	stack.Begin(ui.Vec2{}, ui.Vert)
	stack.Label(m.notice, m.width, ui.Regular)
	stack.Label("", m.width, ui.Regular)
	stack.BeginNested(ui.Horz)
	m.drawPanel(stack, &m.board.Todo, task.Todo, half)
	m.drawPanel(stack, &m.board.Done, task.Done, half)
	stack.EndNested()
	stack.End()
}

func (m model) drawPanel(stack *ui.Stack, list *task.List, panel task.Status, width int) {
	stack.BeginNested(ui.Vert)

	if m.board.Active == panel {
		stack.Label("["+panel.String()+"]", width, ui.Highlighted)
	} else {
		stack.Label(" "+panel.String()+" ", width, ui.Regular)
	}

	for i, title := range list.Items() {
		focused := m.board.Active == panel && i == list.Cursor()
		if focused && m.editing != nil {
			stack.EditField(m.editing, width)
			continue
		}
		style := ui.Regular
		if focused {
			style = ui.Highlighted
		}
		stack.Label(itemRow(panel, title), width, style)
	}

	stack.EndNested()
}

// itemRow renders one task line in the classic checkbox form.
func itemRow(panel task.Status, title string) string {
	if panel == task.Done {
		return "- [x] " + title
	}
	return "- [ ] " + title
}
