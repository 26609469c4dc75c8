package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/fundingdsl/internal/ctxlog"
	"github.com/specialistvlad/fundingdsl/internal/export"
	"github.com/specialistvlad/fundingdsl/internal/parser"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	parser     parser.Parser
	exports    *export.Registry
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Exported documents go
// to outW, logs go to logW. A nil registry selects the built-in formats.
func NewApp(outW, logW io.Writer, cfg *Config, exports *export.Registry) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	p, err := parser.New(cfg.Engine)
	if err != nil {
		return nil, err
	}
	if exports == nil {
		exports = export.Default()
	}
	logger.Debug("Parser and exporters ready.", "engine", cfg.Engine, "formats", exports.Names())

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		parser:  p,
		exports: exports,
	}, nil
}

// Run executes the configured mode until it completes or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	defer a.logger.Debug("App.Run method finished.")

	if a.config.HTTPPort > 0 {
		return a.Serve(ctx)
	}
	return a.exportInput(ctx)
}
