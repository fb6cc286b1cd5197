package main

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/deck/internal/catalog"
	"github.com/alexisbeaulieu97/deck/internal/config"
	"github.com/alexisbeaulieu97/deck/internal/logger"
	"github.com/alexisbeaulieu97/deck/internal/render"
	"github.com/alexisbeaulieu97/deck/internal/render/d2engine"
	"github.com/alexisbeaulieu97/deck/internal/validation"
)

// newEngine builds the rendering engine. Tests swap in a scripted engine.
var newEngine = func(log *logger.Logger) render.Engine {
	return d2engine.New(log)
}

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Settings  config.Settings
	Catalog   *catalog.Catalog
	Engine    render.Engine
	Log       *logger.Logger
	SessionID string

	closers []io.Closer
}

// Close releases the log file, if one was opened.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// loadApp resolves settings, logging, the catalog and the engine for one
// command. Headless commands log to stderr; the TUI owns the terminal, so
// it logs only when --log-file is given.
func loadApp(cmd *cobra.Command, flags *rootFlags, headless bool, operation string) (*AppContext, error) {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, newCommandError(operation, "loading settings from "+path, err, "Fix the settings file or pass --config with a valid path.")
	}
	applyFlagOverrides(&settings, flags)
	if err := validation.Struct(settings); err != nil {
		return nil, newCommandError(operation, "validating settings", err, "Check the --theme, --layout and --log-level values.")
	}

	app := &AppContext{Settings: settings, SessionID: uuid.NewString()}

	opts := logger.Options{Level: settings.LogLevel}
	switch {
	case flags.logFile != "":
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, newCommandError(operation, "opening log file", err, "Choose a writable --log-file path.")
		}
		app.closers = append(app.closers, file)
		opts.Writer = file
	case headless:
		opts.Writer = cmd.ErrOrStderr()
		opts.HumanReadable = true
	default:
		opts.Writer = io.Discard
	}

	log, err := logger.New(opts)
	if err != nil {
		app.Close()
		return nil, newCommandError(operation, "creating logger", err, "Use one of debug, info, warn or error for --log-level.")
	}
	app.Log = log.With("session", app.SessionID)

	cat, err := catalog.Default()
	if err != nil {
		app.Close()
		return nil, newCommandError(operation, "loading the diagram catalog", err, "Rebuild deck; the embedded catalog is invalid.")
	}
	app.Catalog = cat
	app.Engine = newEngine(app.Log)

	app.Log.WithFields(map[string]any{
		"command":  operation,
		"diagrams": cat.Len(),
		"theme":    settings.Theme,
		"layout":   settings.Layout,
	}).Debug("deck started")

	return app, nil
}

func applyFlagOverrides(settings *config.Settings, flags *rootFlags) {
	if flags.theme != "" {
		settings.Theme = flags.theme
	}
	if flags.layout != "" {
		settings.Layout = flags.layout
	}
	if flags.logLevel != "" {
		settings.LogLevel = flags.logLevel
	}
	if flags.verbose {
		settings.LogLevel = "debug"
	}
}
