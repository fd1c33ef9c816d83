package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-suika/internal/config"
	"github.com/vovakirdan/tui-suika/internal/core"
	"github.com/vovakirdan/tui-suika/internal/platform/tui"
	"github.com/vovakirdan/tui-suika/internal/storage"
)

// newLogger returns a stderr logger at the --log-level level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "suika",
		Level:           level,
	}), nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. A failure is logged and nil is
// returned; the game then keeps its ranking in memory.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, ranking will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// setup loads config and storage for the interactive commands.
// The returned cleanup closes the store.
func setup() (tui.Deps, func(), error) {
	logger, err := newLogger()
	if err != nil {
		return tui.Deps{}, nil, err
	}

	cfg, err := config.LoadSuikaLogged(flagConfig, logger)
	if err != nil {
		return tui.Deps{}, nil, err
	}

	store := openStore(logger)
	cleanup := func() {
		if store != nil {
			store.Close()
		}
	}

	deps, err := tui.NewDeps(cfg, store, logger)
	if err != nil {
		cleanup()
		return tui.Deps{}, nil, err
	}
	return deps, cleanup, nil
}

// defaultPlayer prefills the name prompt.
func defaultPlayer() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return storage.DefaultName
}
