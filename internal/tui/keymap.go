package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap is the Normal-mode key set. While an item is being edited the edit
// widget reads raw key events instead, so none of these fire.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	First    key.Binding
	Last     key.Binding
	DragUp   key.Binding
	DragDown key.Binding
	Delete   key.Binding
	Insert   key.Binding
	Rename   key.Binding
	Transfer key.Binding
	Toggle   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var _ help.KeyMap = keyMap{}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "w", "up"), key.WithHelp("↑/k/w", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "s", "down"), key.WithHelp("↓/j/s", "down")),
		First:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g/home", "first item")),
		Last:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G/end", "last item")),
		DragUp:   key.NewBinding(key.WithKeys("K", "W", "shift+up"), key.WithHelp("shift+↑/K/W", "drag up")),
		DragDown: key.NewBinding(key.WithKeys("J", "S", "shift+down"), key.WithHelp("shift+↓/J/S", "drag down")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete (done panel)")),
		Insert:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert (todo panel)")),
		Rename:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Transfer: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "move item")),
		Toggle:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch panel")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is the one-line footer under the board.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Transfer, k.Toggle, k.Help, k.Quit}
}

// FullHelp feeds the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.First, k.Last},
		{k.DragUp, k.DragDown, k.Insert, k.Rename, k.Delete},
		{k.Transfer, k.Toggle, k.Help, k.Quit},
	}
}
