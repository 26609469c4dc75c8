package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/fundingdsl/internal/export"
	"github.com/specialistvlad/fundingdsl/internal/parser"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Input    string // DSL file or directory
	Output   string // file, or directory for directory input; stdout when empty
	Format   string
	Engine   string
	Validate bool // violations abort the run

	LogFormat string
	LogLevel  string
	HTTPPort  int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Input == "" && cfg.HTTPPort <= 0 {
		return nil, errors.New("an input path is required unless the HTTP API is enabled")
	}
	if cfg.Format == "" {
		cfg.Format = export.FormatGitHubYML
	}
	if _, err := export.Default().Lookup(cfg.Format); err != nil {
		return nil, err
	}
	if cfg.Engine == "" {
		cfg.Engine = parser.EngineScanner
	}
	if _, err := parser.New(cfg.Engine); err != nil {
		return nil, err
	}
	if cfg.HTTPPort < 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid HTTP port %d", cfg.HTTPPort)
	}

	return &cfg, nil
}
