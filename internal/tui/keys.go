package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Press     key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev")),
		Press:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
		Confirm:   key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter", "confirm order")),
		Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

type menuKeyMap struct{ keyMap }

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Press, k.ForceQuit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type checkoutKeyMap struct{ keyMap }

func (k checkoutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Back, k.Quit}
}

func (k checkoutKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type historyKeyMap struct{ keyMap }

func (k historyKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

func (k historyKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
