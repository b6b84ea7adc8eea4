package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sampler/internal/prefs"
	"github.com/five82/sampler/internal/state"
)

func newTestModel(t *testing.T) (Model, *state.Store) {
	t.Helper()
	store := state.NewStore()
	m := New(Options{
		Store:     store,
		Name:      "react",
		ThemeName: "Nightfox",
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	t.Cleanup(m.watcher.stop)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), store
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// deliver feeds the pending store notification back into the model.
func deliver(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(m.watcher.wait()())
	if cmd == nil {
		t.Fatalf("stateMsg did not re-arm the store watcher")
	}
	return next.(Model)
}

func TestModel_ViewBeforeResizeIsLoading(t *testing.T) {
	m := New(Options{Store: state.NewStore()})
	defer m.watcher.stop()
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}

func TestModel_InitialView(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	for _, want := range []string{"Hello, react !", "Click Me", "count: 0", "text: hello", "color: red", "good: false"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestModel_HotkeysRunDemoScenario(t *testing.T) {
	m, store := newTestModel(t)

	steps := []struct {
		key  string
		want state.State
	}{
		{"1", state.State{Count: 5, Text: "hello", Color: "red", IsGood: false}},
		{"2", state.State{Count: 5, Text: "bye", Color: "red", IsGood: false}},
		{"3", state.State{Count: 5, Text: "bye", Color: "orange", IsGood: false}},
		{"4", state.State{Count: 5, Text: "bye", Color: "orange", IsGood: true}},
	}
	for _, step := range steps {
		m, _ = press(t, m, runeKey(step.key))
		if got := store.State(); got != step.want {
			t.Fatalf("after %q store = %v, want %v", step.key, got, step.want)
		}
		m = deliver(t, m)
		if m.snapshot != step.want {
			t.Fatalf("after %q model snapshot = %v, want %v", step.key, m.snapshot, step.want)
		}
	}

	view := m.View()
	for _, want := range []string{"count: 5", "text: bye", "color: orange", "good: true"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestModel_FocusAndPressDispatches(t *testing.T) {
	m, store := newTestModel(t)

	if m.focus != focusGreeting {
		t.Fatalf("initial focus = %d, want greeting", m.focus)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusCount {
		t.Fatalf("focus after tab = %d, want %d", m.focus, focusCount)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := store.State().Count; got != 5 {
		t.Fatalf("Count after pressing count button = %d, want 5", got)
	}

	// Wraps backwards from the greeting to the last button.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusGood {
		t.Fatalf("focus = %d, want %d", m.focus, focusGood)
	}
	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !store.State().IsGood {
		t.Fatalf("IsGood = false after pressing good button, want true")
	}
}

func TestModel_GreetingClickUpdatesStatus(t *testing.T) {
	m, store := newTestModel(t)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("pressing Click Me returned no command")
	}
	msg, ok := cmd().(greetedMsg)
	if !ok || msg.name != "react" {
		t.Fatalf("command produced %#v, want greetedMsg{react}", msg)
	}
	next, _ := m.Update(msg)
	m = next.(Model)

	if !strings.Contains(m.View(), "clicked: react") {
		t.Fatalf("View() missing click status:\n%s", m.View())
	}
	if store.State() != state.InitialState() {
		t.Fatalf("greeting click changed store state to %v", store.State())
	}
}

func TestModel_EditNamePersists(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runeKey("n"))
	if !m.editingName {
		t.Fatalf("editingName = false after n, want true")
	}
	// Keys that are bindings elsewhere are plain text while editing.
	m, _ = press(t, m, runeKey("q1"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.editingName {
		t.Fatalf("editingName = true after enter, want false")
	}
	if m.greeting.Name != "q1" {
		t.Fatalf("greeting name = %q, want q1", m.greeting.Name)
	}
	if got := prefs.Load(m.prefsPath).Name; got != "q1" {
		t.Fatalf("saved prefs name = %q, want q1", got)
	}
	if !strings.Contains(m.View(), "Hello, q1 !") {
		t.Fatalf("View() missing new greeting:\n%s", m.View())
	}
}

func TestModel_EditNameEmptyOrCancelledKeepsName(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runeKey("n"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.greeting.Name != "react" {
		t.Fatalf("greeting name = %q after empty confirm, want react", m.greeting.Name)
	}

	m, _ = press(t, m, runeKey("n"))
	m, _ = press(t, m, runeKey("other"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.editingName || m.greeting.Name != "react" {
		t.Fatalf("after esc editing=%t name=%q, want false/react", m.editingName, m.greeting.Name)
	}
}

func TestModel_ResetRestoresInitialState(t *testing.T) {
	m, store := newTestModel(t)

	for _, k := range []string{"1", "2", "3", "4"} {
		m, _ = press(t, m, runeKey(k))
	}
	m = deliver(t, m)

	m, _ = press(t, m, runeKey("r"))
	if got := store.State(); got != state.InitialState() {
		t.Fatalf("store after reset = %v, want %v", got, state.InitialState())
	}
	m = deliver(t, m)
	if m.snapshot != state.InitialState() {
		t.Fatalf("model snapshot after reset = %v, want %v", m.snapshot, state.InitialState())
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runeKey("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if got := prefs.Load(m.prefsPath).Theme; got != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", got)
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m, store := newTestModel(t)

	m, _ = press(t, m, runeKey("?"))
	if !m.showHelp {
		t.Fatalf("showHelp = false, want true")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help View() missing title:\n%s", m.View())
	}

	// Any key closes help without acting on it.
	m, _ = press(t, m, runeKey("1"))
	if m.showHelp {
		t.Fatalf("showHelp = true after key, want false")
	}
	if got := store.State().Count; got != 0 {
		t.Fatalf("Count = %d, want 0 (key should only close help)", got)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := press(t, m, msg)
		if cmd == nil {
			t.Fatalf("%q returned no command, want quit", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%q command did not quit", msg.String())
		}
	}
}

func TestModel_CycleThemeKeepsSavedName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := prefs.Save(path, prefs.Prefs{Theme: "Nightfox", Name: "edited"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	saved := prefs.Load(path)

	m := New(Options{
		Store:     state.NewStore(),
		Name:      saved.Name,
		ThemeName: saved.Theme,
		PrefsPath: path,
		SavedName: saved.Name,
	})
	t.Cleanup(m.watcher.stop)

	_, _ = press(t, m, runeKey("T"))

	got := prefs.Load(path)
	if got.Name != "edited" {
		t.Fatalf("saved name after theme cycle = %q, want edited", got.Name)
	}
	if got.Theme != "Kanagawa" {
		t.Fatalf("saved theme after theme cycle = %q, want Kanagawa", got.Theme)
	}
}

func TestExitError(t *testing.T) {
	live := context.Background()
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	killed := fmt.Errorf("%w: %w", tea.ErrProgramKilled, context.Canceled)
	other := errors.New("boom")

	cases := []struct {
		name string
		ctx  context.Context
		err  error
		want error
	}{
		{"clean quit", live, nil, nil},
		{"killed by cancelled context", cancelled, killed, nil},
		{"killed with live context", live, killed, killed},
		{"other error", cancelled, other, other},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitError(tc.ctx, tc.err); got != tc.want {
				t.Fatalf("exitError = %v, want %v", got, tc.want)
			}
		})
	}
}
