package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/fundingdsl/internal/ctxlog"
	"github.com/specialistvlad/fundingdsl/internal/export"
	"github.com/specialistvlad/fundingdsl/internal/fsutil"
	"github.com/specialistvlad/fundingdsl/internal/validator"
)

// ValidationError reports the violations found in one source.
type ValidationError struct {
	Source     string
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d validation error(s): %s", e.Source, len(e.Violations), strings.Join(e.Violations, "; "))
}

// exportInput converts the configured input file, or every DSL file below the
// input directory, into the configured format.
func (a *App) exportInput(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	format, err := a.exports.Lookup(a.config.Format)
	if err != nil {
		return err
	}

	info, err := os.Stat(a.config.Input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if !info.IsDir() {
		return a.exportFile(ctx, format, a.config.Input, a.config.Output)
	}

	files, err := fsutil.FindFilesByExtension(a.config.Input, fsutil.DSLExtensions...)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", a.config.Input, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no DSL files (%s) found in %s", strings.Join(fsutil.DSLExtensions, ", "), a.config.Input)
	}
	logger.Info("📂 DSL files discovered.", "count", len(files), "path", a.config.Input)

	for _, file := range files {
		out := ""
		if a.config.Output != "" {
			rel, err := filepath.Rel(a.config.Input, file)
			if err != nil {
				return err
			}
			out = filepath.Join(a.config.Output, strings.TrimSuffix(rel, filepath.Ext(rel))+format.Extension)
		}
		if err := a.exportFile(ctx, format, file, out); err != nil {
			return err
		}
	}
	logger.Info("🏁 Export finished.", "files", len(files), "format", format.Name)
	return nil
}

// exportFile parses, validates and renders a single file. An empty out writes
// the document to the app's output writer.
func (a *App) exportFile(ctx context.Context, format export.Format, path, out string) error {
	logger := ctxlog.FromContext(ctx).With("file", path)

	cfg, err := a.parser.ParseFile(ctx, path)
	if err != nil {
		return err
	}
	logger.Debug("Configuration parsed.", "project", cfg.ProjectName, "sources", len(cfg.Sources))

	if violations := validator.Validate(cfg); len(violations) > 0 {
		for _, v := range violations {
			logger.Warn("Validation error.", "violation", v)
		}
		if a.config.Validate {
			return &ValidationError{Source: path, Violations: violations}
		}
	}

	data, err := a.exports.Render(ctx, format.Name, cfg)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = a.outW.Write(data)
		return err
	}
	if err := export.WriteFile(out, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	logger.Info("✅ Exported.", "project", cfg.ProjectName, "format", format.Name, "output", out)
	return nil
}
