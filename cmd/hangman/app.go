package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/platform/console"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/platform/view"
	"github.com/vovakirdan/tui-hangman/internal/session"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// app holds everything resolved at start-up.
type app struct {
	cfg      config.Config
	settings config.Settings
	catalog  *words.Catalog
	palette  view.Palette
	logger   *log.Logger
	logFile  io.Closer
}

func newApp() (*app, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	env := config.ReadEnv()

	logger, logFile, err := newLogger(env)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		closeQuietly(logFile)
		return nil, err
	}
	settings, err := config.Resolve(cfg, env)
	if err != nil {
		closeQuietly(logFile)
		return nil, err
	}
	catalog, err := words.NewCatalog(cfg.Categories)
	if err != nil {
		closeQuietly(logFile)
		return nil, err
	}

	logger.Debug("configuration loaded",
		"difficulty", settings.Difficulty,
		"auto", settings.Auto,
		"color", settings.Color,
		"categories", len(catalog.Categories()),
	)

	return &app{
		cfg:      cfg,
		settings: settings,
		catalog:  catalog,
		palette:  view.NewPalette(settings.Color),
		logger:   logger,
		logFile:  logFile,
	}, nil
}

// newLogger builds the logger from the environment. Logs go to stderr at
// warn level unless told otherwise; the returned closer is nil without a
// log file.
func newLogger(env config.Env) (*log.Logger, io.Closer, error) {
	level := log.WarnLevel
	if env.LogLevel != "" {
		parsed, err := log.ParseLevel(env.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", config.EnvLogLevel, err)
		}
		level = parsed
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer
	)
	if env.LogFile != "" {
		f, err := os.OpenFile(env.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "hangman",
		Level:           level,
	})
	return logger, closer, nil
}

// Close releases the log file, if any.
func (a *app) Close() {
	closeQuietly(a.logFile)
}

func closeQuietly(c io.Closer) {
	if c != nil {
		//nolint:errcheck // Nothing left to report to
		c.Close()
	}
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = time.Now().UnixNano()
	return cfg
}

// play runs a session on the best front-end available: the full-screen UI
// when both ends are terminals and nobody asked for auto mode, the line
// console otherwise.
func (a *app) play(ctx context.Context, first *session.MenuChoice) error {
	if err := console.EnableVirtualTerminal(os.Stdout); err != nil {
		a.logger.Debug("virtual terminal not enabled", "error", err)
	}

	rc := runtimeConfig()
	dealer := session.NewDealer(a.catalog, a.cfg, rc.Seed)
	interactive := console.IsTerminal(os.Stdin) && console.IsTerminal(os.Stdout)

	var (
		summary session.Summary
		err     error
	)
	if interactive && !a.settings.Auto {
		a.logger.Debug("starting full-screen UI", "width", rc.ScreenW, "height", rc.ScreenH)
		// stderr shares the alternate screen, so only a log file is safe
		var uiLogger *log.Logger
		if a.logFile != nil {
			uiLogger = a.logger
		}
		summary, err = tui.Run(ctx, tui.Options{
			Dealer:     dealer,
			Palette:    a.palette,
			Config:     rc,
			Difficulty: a.settings.Difficulty,
			Logger:     uiLogger,
			First:      first,
		})
	} else {
		c := console.New(os.Stdin, os.Stdout, console.Options{
			Palette: a.palette,
			Clear:   interactive && !a.settings.Auto,
			Logger:  a.logger,
		})

		var player session.Player = console.NewPlayer(c)
		if a.settings.Auto {
			category := ""
			if first != nil {
				category = first.Category
			}
			player = console.Echo(c, session.NewAutoPlayer(a.settings.AutoRounds, category))
			first = nil
		}

		runner := &session.Runner{
			Dealer:     dealer,
			Player:     player,
			Renderer:   c,
			Logger:     a.logger,
			Difficulty: a.settings.Difficulty,
			First:      first,
		}
		summary, err = runner.Run(ctx)
	}

	if summary.Played > 0 {
		fmt.Println(view.SummaryLine(summary))
	}
	return err
}
