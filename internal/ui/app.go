package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sampler/internal/prefs"
	"github.com/five82/sampler/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Name      string // greeting name
	Mark      string // greeting punctuation
	ThemeName string
	PrefsPath string
	// SavedName is the name stored in prefs, if any. It is written back
	// whenever prefs are saved so other changes do not drop it.
	SavedName string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	watcher   *storeWatcher
	prefsPath string
	prefs     prefs.Prefs

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	focus    int
	showHelp bool
	status   string

	// Latest snapshot delivered by the store subscription
	snapshot state.State

	// Greeting state
	greeting    Greeting
	editingName bool
	nameInput   textinput.Model
}

// New creates a new Bubble Tea model subscribed to opts.Store.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Prompt = "name: "
	input.Placeholder = opts.Name
	input.CharLimit = 40
	input.Width = 24

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		prefsPath: prefsPath,
		prefs:     prefs.Prefs{Theme: themeName, Name: opts.SavedName},
		keys:      DefaultKeyMap(),
		help:      help.New(),
		greeting: Greeting{
			Name:    opts.Name,
			Mark:    opts.Mark,
			OnClick: onGreet,
		},
		nameInput: input,
	}
	m.applyTheme(GetTheme(themeName))

	if opts.Store != nil {
		m.snapshot = opts.Store.State()
		m.watcher = watchStore(opts.Store)
	} else {
		m.snapshot = state.InitialState()
	}
	return m
}

func onGreet(name string) tea.Cmd {
	log.Printf("greeting clicked: %s", name)
	return greetCmd(name)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.wait()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case stateMsg:
		m.snapshot = state.State(msg)
		if m.watcher == nil {
			return m, nil
		}
		return m, m.watcher.wait()

	case greetedMsg:
		m.status = "clicked: " + msg.name
		return m, nil
	}

	if m.editingName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.editingName {
		return m.handleNameKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
		m.savePrefs()

	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % focusTargets

	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + focusTargets - 1) % focusTargets

	case key.Matches(msg, m.keys.Press):
		if m.focus == focusGreeting {
			return m, m.greeting.Click()
		}
		m.dispatchPreset(m.focus - focusCount)

	case key.Matches(msg, m.keys.Click):
		return m, m.greeting.Click()

	case key.Matches(msg, m.keys.EditName):
		m.editingName = true
		m.nameInput.Reset()
		m.nameInput.Placeholder = m.greeting.Name
		cmd := m.nameInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.SetCount):
		m.dispatchPreset(0)
	case key.Matches(msg, m.keys.SetText):
		m.dispatchPreset(1)
	case key.Matches(msg, m.keys.SetColor):
		m.dispatchPreset(2)
	case key.Matches(msg, m.keys.ToggleGood):
		m.dispatchPreset(3)

	case key.Matches(msg, m.keys.Reset):
		m.reset()
	}

	return m, nil
}

// handleNameKey routes keys to the name input while it has focus.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if name := strings.TrimSpace(m.nameInput.Value()); name != "" {
			m.greeting.Name = name
			m.prefs.Name = name
			m.savePrefs()
			m.status = "name set to " + name
		}
		m.editingName = false
		m.nameInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.editingName = false
		m.nameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	m.prefs.Theme = t.Name

	styles := t.Styles()
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.WarningText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
	m.nameInput.PromptStyle = styles.MutedText
	m.nameInput.TextStyle = styles.Text
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderGreeting())
	b.WriteString("\n")
	b.WriteString(m.renderReducer())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	logo := styles.Logo.Render("SAMPLER")
	theme := styles.Header.Padding(0).Render("  theme " + m.theme.Name)
	return styles.Header.Width(m.width).Render(logo + theme)
}

func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	if m.status == "" {
		return styles.FaintText.Render("ready")
	}
	return styles.AccentText.Render(m.status)
}

func (m Model) renderFooter() string {
	if m.editingName {
		return m.help.View(editKeyMap{keys: m.keys})
	}
	return m.help.View(m.keys)
}

func (m Model) panelWidth() int {
	w := m.width - 4
	if w > 56 {
		w = 56
	}
	if w < 24 {
		w = 24
	}
	return w
}

// Run starts the Bubble Tea program and blocks until the user quits or
// opts.Context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	if m.watcher != nil {
		defer m.watcher.stop()
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return exitError(m.ctx, err)
}

// exitError maps the program's exit error. A program killed because ctx was
// cancelled is a normal shutdown.
func exitError(ctx context.Context, err error) error {
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
