package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/conftreego/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("conftree", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
conftree - Resolves a declared configuration tree against option tokens.

Usage:
  conftree [options] [-- OPTION_TOKENS...]

Arguments:
  OPTION_TOKENS
    Option values in --name value or --name=value form; bool options are
    presence flags. Tokens override both static and dynamic defaults.

Options:
`)
		flagSet.PrintDefaults()
	}

	rootFlag := flagSet.String("root", "training", "Name of the registered root config to resolve.")
	overridesFlag := flagSet.String("overrides", "", "Path to an HCL attributes file applied before the option tokens.")
	oFlag := flagSet.String("o", "", "Path to an HCL attributes file (shorthand).")
	outputFlag := flagSet.String("output", "yaml", "Render format for the resolved tree. Options: 'yaml', 'flat', or 'tree'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	overrides := *overridesFlag
	if overrides == "" {
		overrides = *oFlag
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
		RootName:      *rootFlag,
		OverridesPath: overrides,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		Output:        strings.ToLower(*outputFlag),
		Args:          flagSet.Args(),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
