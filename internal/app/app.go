package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sampler/internal/config"
	"github.com/five82/sampler/internal/prefs"
	"github.com/five82/sampler/internal/state"
	"github.com/five82/sampler/internal/ui"
)

// Options configure the sampler application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/sampler/prefs.toml
	LogPath    string // empty uses the config's log_file
	// Dispatch lists actions as KIND or KIND=ARG, applied before the UI starts.
	Dispatch []string
}

// Run boots the sampler TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	initial, err := parseActions(opts.Dispatch)
	if err != nil {
		return err
	}

	logPath := opts.LogPath
	if logPath == "" {
		logPath = cfg.LogFile
	}
	logFile, err := setupLogging(logPath)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer logFile.Close()

	userPrefs := prefs.Load(opts.PrefsPath)

	store := state.NewStore()
	unsubscribe := store.Subscribe(logTransition)
	defer unsubscribe()

	for _, a := range initial {
		log.Printf("dispatch %s (startup)", a.Kind())
		store.Dispatch(a)
	}

	log.Printf("starting with state %s", store.State())

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Name:      greetingName(cfg, userPrefs),
		Mark:      cfg.Mark,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		SavedName: userPrefs.Name,
	}
	if err := ui.Run(uiOpts); err != nil {
		return err
	}

	log.Printf("exiting with state %s", store.State())
	return nil
}

// setupLogging sends the standard logger to path. The terminal belongs to
// the TUI, so nothing may be written to stderr while it runs.
func setupLogging(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "sampler")
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

func logTransition(s state.State) {
	log.Printf("state %s", s)
}

// parseActions turns KIND[=ARG] strings into actions.
func parseActions(raw []string) ([]state.Action, error) {
	actions := make([]state.Action, 0, len(raw))
	for _, s := range raw {
		kind, arg, _ := strings.Cut(s, "=")
		a, err := state.ParseAction(kind, arg)
		if err != nil {
			return nil, fmt.Errorf("parse dispatch %q: %w", s, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// greetingName prefers a name the user set in the UI over the configured one.
func greetingName(cfg config.Config, p prefs.Prefs) string {
	if p.Name != "" {
		return p.Name
	}
	return cfg.Name
}
