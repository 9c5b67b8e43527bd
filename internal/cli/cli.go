package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/timegridgo/internal/app"
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
//
// An empty endpoint is not an error here: it may still arrive from the
// environment or a config file, so resolution is the app's job.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("timegridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
TimeGridGo - a terminal viewer for weekly class schedules.

Usage:
  timegridgo [options] [ENDPOINT_URL]

Arguments:
  ENDPOINT_URL
    URL of the schedule endpoint. May also come from the --endpoint flag,
    the TIMEGRID_ENDPOINT environment variable (a .env file is honored),
    or the fetch block of a config file.

Options:
`)
		flagSet.PrintDefaults()
	}

	endpointFlag := flagSet.String("endpoint", "", "URL of the schedule endpoint.")
	eFlag := flagSet.String("e", "", "URL of the schedule endpoint (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	cFlag := flagSet.String("c", "", "Path to an HCL config file (shorthand).")
	groupFlag := flagSet.String("group", "", "Render only this group. Empty renders all groups.")
	outputFlag := flagSet.String("output", "text", "Output mode. Options: 'text' or 'json'.")
	oFlag := flagSet.String("o", "", "Output mode (shorthand).")
	watchFlag := flagSet.Duration("watch", 0, "Re-fetch and re-render on this interval. 0 runs once.")
	timeoutFlag := flagSet.Duration("timeout", 0, "HTTP timeout override. 0 keeps the configured value.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Flag parsing stops at the first positional, so anything after the
	// endpoint URL would be dropped silently. Fail loudly instead.
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf(
			"unexpected arguments: %s (options must come before the endpoint URL)",
			strings.Join(flagSet.Args()[1:], " "))}
	}
	slog.Debug("Arguments parsed successfully.")

	endpoint := *endpointFlag
	if endpoint == "" {
		endpoint = *eFlag
	}
	if endpoint == "" && flagSet.NArg() > 0 {
		endpoint = flagSet.Arg(0)
	}
	slog.Debug("Endpoint candidate determined.", "endpoint", endpoint)

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}

	outputMode := strings.ToLower(*outputFlag)
	if *oFlag != "" {
		outputMode = strings.ToLower(*oFlag)
	}
	if outputMode != "text" && outputMode != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid output: must be 'text' or 'json'"}
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
		Endpoint:   endpoint,
		ConfigPath: configPath,
		Group:      *groupFlag,
		Output:     outputMode,
		Watch:      *watchFlag,
		Timeout:    *timeoutFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
