package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/fundingdsl/internal/app"
	"github.com/specialistvlad/fundingdsl/internal/export"
	"github.com/specialistvlad/fundingdsl/internal/fsutil"
	"github.com/specialistvlad/fundingdsl/internal/parser"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that supply flag defaults,
// e.g. FUNDINGDSL_FORMAT or FUNDINGDSL_LOG_LEVEL.
const EnvPrefix = "FUNDINGDSL"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envDefaults reads the flag defaults from the environment.
func envDefaults() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("format", export.FormatGitHubYML)
	v.SetDefault("engine", parser.EngineScanner)
	v.SetDefault("log-format", "text")
	v.SetDefault("log-level", "info")
	v.SetDefault("http-port", 0)
	return v
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	env := envDefaults()
	flagSet := flag.NewFlagSet("fundingdsl", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprintf(output, `
fundingdsl - Parse, validate and export funding DSL files.

Usage:
  fundingdsl [options] INPUT

Arguments:
  INPUT
    Path to a single DSL file or a directory searched recursively for %s files.

Formats:
  %s

Defaults for format, engine, log-format, log-level and http-port can be set
with %s_<NAME> environment variables (e.g. %s_LOG_LEVEL=debug).

Options:
`, strings.Join(fsutil.DSLExtensions, "/"), strings.Join(export.Default().Names(), ", "), EnvPrefix, EnvPrefix)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", env.GetString("format"), "Export format.")
	fFlag := flagSet.String("f", "", "Export format (shorthand).")
	outputFlag := flagSet.String("output", "", "Output file, or directory for directory input. Defaults to stdout.")
	oFlag := flagSet.String("o", "", "Output file or directory (shorthand).")
	validateFlag := flagSet.Bool("validate", false, "Fail when the configuration has validation errors.")
	engineFlag := flagSet.String("engine", env.GetString("engine"), "Parser engine. Options: 'scanner' or 'grammar'.")
	httpPortFlag := flagSet.Int("http-port", env.GetInt("http-port"), "Port for the HTTP API. 0 runs a one-shot export instead.")
	logFormatFlag := flagSet.String("log-format", env.GetString("log-format"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", env.GetString("log-level"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	input := ""
	if flagSet.NArg() > 0 {
		input = flagSet.Arg(0)
	}
	format := firstNonEmpty(*fFlag, *formatFlag)
	outputPath := firstNonEmpty(*oFlag, *outputFlag)
	slog.Debug("Input path determined.", "path", input)

	if input == "" && *httpPortFlag <= 0 {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Input:     input,
		Output:    outputPath,
		Format:    strings.ToLower(format),
		Engine:    strings.ToLower(*engineFlag),
		Validate:  *validateFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
		HTTPPort:  *httpPortFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
