package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextPane key.Binding
	PrevPane key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	BigLeft  key.Binding
	BigRight key.Binding

	AddStop     key.Binding
	RemoveStop  key.Binding
	EditHex     key.Binding
	Random      key.Binding
	OpacityDown key.Binding
	OpacityUp   key.Binding

	Apply  key.Binding
	Format key.Binding
	Copy   key.Binding
	Theme  key.Binding
	Reset  key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevPane: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		BigLeft:  key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H", "decrease ×10")),
		BigRight: key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L", "increase ×10")),

		AddStop:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add stop")),
		RemoveStop:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove stop")),
		EditHex:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit color")),
		Random:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random color")),
		OpacityDown: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "opacity -")),
		OpacityUp:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "opacity +")),

		Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply preset")),
		Format: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "export format")),
		Copy:   key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy code")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Reset:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.AddStop, k.EditHex, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPane, k.PrevPane, k.Up, k.Down, k.Left, k.Right, k.BigLeft, k.BigRight},
		{k.AddStop, k.RemoveStop, k.EditHex, k.Random, k.OpacityDown, k.OpacityUp},
		{k.Apply, k.Format, k.Copy, k.Theme, k.Reset, k.Help, k.Quit},
	}
}
