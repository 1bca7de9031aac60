package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level key bindings with built-in help text.
// Widget-local keys (selection movement, scrolling) live on the widgets;
// container traversal keys live on Container.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Back      key.Binding
	Palette   key.Binding

	// Tabs
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Palette: key.NewBinding(
			key.WithKeys(":", "ctrl+p"),
			key.WithHelp(":", "command palette"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev tab"),
		),
		Tab1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "scores"),
		),
		Tab2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "standings"),
		),
		Tab3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "teams"),
		),
	}
}

// selectionKeys are the shared bindings for list-style widgets.
type selectionKeys struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
}

func defaultSelectionKeys() selectionKeys {
	return selectionKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}
