package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultMark = "!"

// Greeting says hello to Name and offers a "Click Me" button that reports
// the name back through OnClick.
type Greeting struct {
	Name    string
	Mark    string
	OnClick func(name string) tea.Cmd
}

// Message returns the greeting line.
func (g Greeting) Message() string {
	mark := g.Mark
	if strings.TrimSpace(mark) == "" {
		mark = defaultMark
	}
	return fmt.Sprintf("Hello, %s %s", g.Name, mark)
}

// Click invokes OnClick with the current name.
func (g Greeting) Click() tea.Cmd {
	if g.OnClick == nil {
		return nil
	}
	return g.OnClick(g.Name)
}

// greetedMsg is emitted when the greeting button is pressed.
type greetedMsg struct {
	name string
}

func greetCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return greetedMsg{name: name}
	}
}

// renderGreeting renders the greeting panel.
func (m Model) renderGreeting() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Greetings"))
	b.WriteString("\n")
	if m.editingName {
		b.WriteString(m.nameInput.View())
	} else {
		b.WriteString(styles.Text.Render(m.greeting.Message()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderButton("Click Me", focusGreeting))

	return styles.Panel.Width(m.panelWidth()).Render(b.String())
}
