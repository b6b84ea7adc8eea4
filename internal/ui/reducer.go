package ui

import (
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sampler/internal/state"
)

// Focus targets, in tab order. The reducer buttons follow the greeting
// button and line up with state.Presets().
const (
	focusGreeting = iota
	focusCount
	focusText
	focusColor
	focusGood

	focusTargets
)

var reducerButtons = []string{"count", "text", "color", "good"}

// dispatch sends a to the store. The model picks up the result through its
// store subscription, not by reading the store here.
func (m Model) dispatch(a state.Action) {
	if m.store == nil || a == nil {
		return
	}
	log.Printf("dispatch %s", a.Kind())
	m.store.Dispatch(a)
}

// dispatchPreset dispatches the preset bound to reducer button i.
func (m Model) dispatchPreset(i int) {
	presets := state.Presets()
	if i < 0 || i >= len(presets) {
		return
	}
	m.dispatch(presets[i])
}

// reset dispatches whatever brings the store back to its initial values.
// It reads the store rather than m.snapshot, which may lag behind.
func (m Model) reset() {
	if m.store == nil {
		return
	}
	for _, a := range state.ResetActions(m.store.State()) {
		m.dispatch(a)
	}
}

// renderReducer renders the reducer sample panel.
func (m Model) renderReducer() string {
	styles := m.theme.Styles()
	s := m.snapshot

	label := func(name string) string {
		return styles.MutedText.Render(name + ": ")
	}
	colorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorFor(s.Color)))
	goodStyle := styles.DangerText
	if s.IsGood {
		goodStyle = styles.SuccessText
	}

	lines := []string{
		styles.Title.Render("ReducerSample"),
		label("count") + styles.Text.Render(strconv.Itoa(s.Count)),
		label("text") + styles.Text.Render(s.Text),
		label("color") + colorStyle.Render(s.Color),
		label("good") + goodStyle.Render(strconv.FormatBool(s.IsGood)),
		"",
	}

	buttons := make([]string, 0, len(reducerButtons))
	for i, name := range reducerButtons {
		buttons = append(buttons, m.renderButton(name, focusCount+i))
	}
	lines = append(lines, strings.Join(buttons, " "))

	return styles.Panel.Width(m.panelWidth()).Render(strings.Join(lines, "\n"))
}

// renderButton renders a button label, highlighted when it holds focus.
func (m Model) renderButton(label string, target int) string {
	styles := m.theme.Styles()
	if m.focus == target && !m.editingName {
		return styles.ButtonFocused.Render(label)
	}
	return styles.Button.Render(label)
}
