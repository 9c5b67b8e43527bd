package config

import (
	"errors"
	"time"
)

// Calendar fixes the teaching week: one label per day and one per slot.
// Grid dimensions are always the label counts, so days and slots double as
// the shape and the rendering metadata.
type Calendar struct {
	Days  []string
	Slots []string
}

// View holds presentation options for the text renderer.
type View struct {
	EmptyCell    string
	ShowTeachers bool
}

// Config is the fully resolved configuration.
type Config struct {
	Endpoint string
	Timeout  time.Duration
	Calendar Calendar
	View     View
}

// Default returns the built-in configuration: the original five-day
// Sunday-to-Thursday teaching week with five 90-minute slots per day. The
// endpoint is intentionally empty; it must come from a flag, the
// environment, or a config file.
func Default() *Config {
	return &Config{
		Timeout: 15 * time.Second,
		Calendar: Calendar{
			Days: []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"},
			Slots: []string{
				"08:00 - 09:30",
				"09:45 - 11:15",
				"11:30 - 13:00",
				"13:15 - 14:45",
				"15:00 - 16:30",
			},
		},
		View: View{EmptyCell: "-", ShowTeachers: true},
	}
}

// Validate checks the invariants the rest of the app relies on.
func (c *Config) Validate() error {
	if len(c.Calendar.Days) == 0 {
		return errors.New("calendar must name at least one day")
	}
	if len(c.Calendar.Slots) == 0 {
		return errors.New("calendar must name at least one slot")
	}
	if c.Timeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}
	return nil
}
