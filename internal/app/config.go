package app

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all the necessary runtime options for an App instance to run.
type Config struct {
	Endpoint   string // flag or positional value; final resolution happens in NewApp
	ConfigPath string // optional HCL file
	Group      string // render only this group when non-empty

	Output    string // "text" or "json"
	Watch     time.Duration
	Timeout   time.Duration // 0 keeps the configured value
	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Output {
	case "text", "json":
		// valid
	default:
		return nil, fmt.Errorf("output must be 'text' or 'json', got %q", cfg.Output)
	}

	if cfg.Watch < 0 {
		return nil, errors.New("watch interval cannot be negative")
	}
	if cfg.Timeout < 0 {
		return nil, errors.New("timeout cannot be negative")
	}

	return &cfg, nil
}
