package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/five82/sampler/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		// The flag package already printed the problem and usage.
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "sampler: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string) (app.Options, error) {
	fs := flag.NewFlagSet("sampler", flag.ContinueOnError)
	configPath := fs.String("config", "", "config path (optional, defaults to ~/.config/sampler/config.toml)")
	prefsPath := fs.String("prefs", "", "preferences path (optional, defaults to ~/.config/sampler/prefs.toml)")
	logPath := fs.String("log", "", "log file (optional, overrides log_file from config)")
	var dispatch actionList
	fs.Var(&dispatch, "dispatch", "action to apply at startup as KIND or KIND=ARG (repeatable)")

	if err := fs.Parse(args); err != nil {
		return app.Options{}, err
	}

	return app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		LogPath:    *logPath,
		Dispatch:   dispatch,
	}, nil
}

// actionList collects repeated -dispatch flags.
type actionList []string

func (l *actionList) String() string {
	return strings.Join(*l, ",")
}

func (l *actionList) Set(v string) error {
	*l = append(*l, v)
	return nil
}
