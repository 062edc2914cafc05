// Package cli holds the services shared by the panekit subcommands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/panekit/internal/domain/build"
	"github.com/bnema/panekit/internal/infrastructure/config"
	"github.com/bnema/panekit/internal/logging"
	"github.com/bnema/panekit/internal/ui/theme"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *theme.Theme
	BuildInfo build.Info
	SessionID string

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and sets up the session logger.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level := cfg.Logging.Level
	if env := os.Getenv("PANEKIT_LOG_LEVEL"); env != "" {
		level = env
	}
	logDir := cfg.Logging.LogDir
	if logDir == "" {
		if logDir, err = config.GetLogDir(); err != nil {
			return nil, fmt.Errorf("resolve log dir: %w", err)
		}
	}
	sessionID := logging.GenerateSessionID()

	logger, cleanup, err := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog,
			LogDir:     logDir,
			SessionID:  sessionID,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithSessionID(ctx, sessionID)

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Bool("created", mgr.Created()).
		Msg("configuration loaded")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      theme.New(cfg.Appearance.Palette),
		SessionID:  sessionID,
		ctx:        ctx,
		logCleanup: cleanup,
	}, nil
}

// Ctx returns the context carrying the session logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close flushes and closes the log file.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return nil
}
