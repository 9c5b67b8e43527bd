// Package fetch retrieves the schedule document from the upstream endpoint.
// One Client lives for the whole run; watch mode reuses its connections
// across refreshes.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vk/timegridgo/internal/ctxlog"
	"github.com/vk/timegridgo/internal/timetable"
)

// Client issues schedule requests against a single endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient builds a Client for the given endpoint. The timeout bounds each
// whole request, connection setup included.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Endpoint returns the URL this client fetches from.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch performs one GET against the endpoint and decodes the body into a
// SchedulePayload. Transport failures, non-2xx statuses, and structurally
// invalid documents all surface as errors; nothing is retried here.
func (c *Client) Fetch(ctx context.Context) (*timetable.SchedulePayload, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Fetching schedule.", "endpoint", c.endpoint)
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", c.endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule from %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("schedule endpoint %s returned %s", c.endpoint, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from %s: %w", c.endpoint, err)
	}

	var payload timetable.SchedulePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode schedule document from %s: %w", c.endpoint, err)
	}

	logger.Info("Schedule fetched.",
		"groups", payload.Len(),
		"bytes", len(body),
		"duration", time.Since(started).Round(time.Millisecond),
	)
	return &payload, nil
}

// Close releases idle connections held by the transport.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
