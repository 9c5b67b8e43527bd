package app

import (
	"context"
	"time"

	"github.com/vk/timegridgo/internal/ctxlog"
	"github.com/vk/timegridgo/internal/timetable"
)

// Run executes the fetch → build → render pipeline. With a watch interval
// configured it keeps refreshing on a ticker until the context is canceled.
// The first pass is strict: its failure aborts the run. Failures on later
// ticks are logged and retried, so a flaky endpoint cannot kill the viewer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Info("🚀 Starting timegridgo.", "endpoint", a.client.Endpoint(), "output", a.runCfg.Output)
	defer a.client.Close()

	if err := a.refresh(ctx); err != nil {
		return err
	}

	if a.runCfg.Watch <= 0 {
		a.logger.Info("🏁 Done.")
		return nil
	}

	a.logger.Info("👀 Watching the schedule.", "interval", a.runCfg.Watch)
	ticker := time.NewTicker(a.runCfg.Watch)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("🏁 Watch stopped.")
			return nil
		case <-ticker.C:
			if err := a.refresh(ctx); err != nil {
				a.logger.Warn("Refresh failed, keeping the previous view.", "error", err)
			}
		}
	}
}

// refresh performs one complete fetch → build → render pass. Grid dimensions
// always come from the calendar, never from the payload.
func (a *App) refresh(ctx context.Context) error {
	payload, err := a.client.Fetch(ctx)
	if err != nil {
		return err
	}

	set := timetable.Build(payload, len(a.cfg.Calendar.Days), len(a.cfg.Calendar.Slots))

	if a.runCfg.Group != "" {
		set, err = set.Only(a.runCfg.Group)
		if err != nil {
			return err
		}
	}
	a.logger.Debug("Grids built.", "groups", set.Len())

	if a.runCfg.Output == "json" {
		return a.renderer.JSON(a.outW, set)
	}
	a.renderer.Text(a.outW, set)
	return nil
}
