package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/timegridgo/internal/app"
	"github.com/vk/timegridgo/internal/cli"
)

// ScheduleServer starts a stub endpoint serving a fixed schedule document,
// the way the real upstream would. It shuts down with the test.
func ScheduleServer(t *testing.T, document string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(document))
	}))
	t.Cleanup(server.Close)
	return server
}

// HarnessResult holds the outcomes of a full viewer run.
type HarnessResult struct {
	Stdout    string
	LogOutput string
	Err       error
}

// RunViewer drives the pipeline the way main does: parse args, build the
// app, run it once. Rendered output and logs are captured separately.
func RunViewer(t *testing.T, args []string) *HarnessResult {
	t.Helper()
	return RunViewerWithContext(context.Background(), t, args)
}

// RunViewerWithContext is RunViewer with a caller-provided context. The args
// must parse cleanly; failures past that point land in the result so tests
// can assert on them.
func RunViewerWithContext(ctx context.Context, t *testing.T, args []string) *HarnessResult {
	t.Helper()

	var stdout, logs SafeBuffer
	appConfig, shouldExit, err := cli.Parse(args, &stdout)
	require.NoError(t, err)
	require.False(t, shouldExit, "args unexpectedly asked for help")

	viewer, err := app.NewApp(&stdout, &logs, appConfig)
	if err != nil {
		return &HarnessResult{Stdout: stdout.String(), LogOutput: logs.String(), Err: err}
	}

	runErr := viewer.Run(ctx)
	return &HarnessResult{Stdout: stdout.String(), LogOutput: logs.String(), Err: runErr}
}
