package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Focus
	Next  key.Binding
	Prev  key.Binding
	Press key.Binding

	// Greeting
	Click    key.Binding
	EditName key.Binding

	// Reducer
	SetCount   key.Binding
	SetText    key.Binding
	SetColor   key.Binding
	ToggleGood key.Binding
	Reset      key.Binding

	// Name input
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "Next button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "Previous button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Press button"),
		),

		Click: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Click Me"),
		),
		EditName: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Edit name"),
		),

		SetCount: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "count"),
		),
		SetText: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "text"),
		),
		SetColor: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "color"),
		),
		ToggleGood: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "good"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset state"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Press, k.SetCount, k.SetText, k.SetColor, k.ToggleGood, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Press},
		{k.Click, k.EditName},
		{k.SetCount, k.SetText, k.SetColor, k.ToggleGood, k.Reset},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// editKeyMap is shown while the name input has focus.
type editKeyMap struct {
	keys keyMap
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.keys.Confirm, k.keys.Cancel}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
