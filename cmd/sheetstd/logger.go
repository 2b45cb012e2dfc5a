package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/logging"
)

// newLogger creates the CLI logger.
// Log level precedence (highest to lowest):
//  1. --log-level flag
//  2. -v/--verbose (debug)
//  3. -q/--quiet (warn)
//  4. SHEETSTD_LOG_LEVEL or LOG_LEVEL
//  5. info
func newLogger(cfg *Config, flagLevel string, stderr io.Writer) zerolog.Logger {
	return logging.New(&logging.Config{
		Level:   determineLogLevel(cfg, flagLevel, stderr),
		Format:  cfg.LogFormat,
		Output:  cfg.LogOutput,
		NoColor: cfg.NoColor,
	})
}

func determineLogLevel(cfg *Config, flagLevel string, stderr io.Writer) string {
	if flagLevel != "" {
		return validateLogLevel(flagLevel, stderr)
	}

	if cfg.Verbose && cfg.Quiet {
		fmt.Fprintln(stderr, "Warning: both --verbose and --quiet specified, using --quiet")
		return "warn"
	}
	if cfg.Verbose {
		return "debug"
	}
	if cfg.Quiet {
		return "warn"
	}

	if cfg.LogLevel != "" {
		return validateLogLevel(cfg.LogLevel, stderr)
	}
	return "info"
}

func validateLogLevel(level string, stderr io.Writer) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	}
	fmt.Fprintf(stderr, "Warning: invalid log level %q, using \"info\"\n", level)
	return "info"
}
