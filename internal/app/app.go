package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/timegridgo/internal/config"
	"github.com/vk/timegridgo/internal/ctxlog"
	"github.com/vk/timegridgo/internal/fetch"
	"github.com/vk/timegridgo/internal/render"
)

// endpointEnvVar names the environment fallback for the schedule endpoint.
const endpointEnvVar = "TIMEGRID_ENDPOINT"

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	runCfg   *Config
	cfg      *config.Config
	client   *fetch.Client
	renderer *render.Renderer
}

// NewApp is the constructor for the main application. It builds the app's
// isolated logger, loads the optional config file, resolves the endpoint,
// and wires the fetch client and renderer.
//
// outW receives rendered schedules and logW receives logs; keeping the two
// apart is what lets rendered output be piped cleanly.
//
// Endpoint resolution order: the CLI value, then the TIMEGRID_ENDPOINT
// environment variable, then the config file's fetch block. An endpoint must
// come from one of them.
func NewApp(outW, logW io.Writer, runCfg *Config) (*App, error) {
	logger := newLogger(runCfg.LogLevel, runCfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cfg := config.Default()
	if runCfg.ConfigPath != "" {
		loaded, err := config.Load(ctx, runCfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	endpoint := runCfg.Endpoint
	if endpoint == "" {
		endpoint = os.Getenv(endpointEnvVar)
	}
	if endpoint == "" {
		endpoint = cfg.Endpoint
	}
	if endpoint == "" {
		return nil, fmt.Errorf(
			"no schedule endpoint configured: pass one as an argument, set %s, or add a fetch block to the config file",
			endpointEnvVar,
		)
	}

	if runCfg.Timeout > 0 {
		cfg.Timeout = runCfg.Timeout
	}
	logger.Debug("Configuration resolved.", "endpoint", endpoint, "timeout", cfg.Timeout)

	return &App{
		outW:     outW,
		logger:   logger,
		runCfg:   runCfg,
		cfg:      cfg,
		client:   fetch.NewClient(endpoint, cfg.Timeout),
		renderer: render.New(cfg.Calendar, cfg.View),
	}, nil
}
