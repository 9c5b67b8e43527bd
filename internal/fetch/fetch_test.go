package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
	"2": {"Algebra": [{"course_type": "Algebra_lecture", "day": 2, "slot": 1, "teacher_id": 4}]},
	"1": {"Security": [{"course_type": "Security_lecture", "day": 1, "slot": 1, "teacher_id": 1}]}
}`

func TestFetch_DecodesDocument(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleDocument))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 5*time.Second)
	t.Cleanup(client.Close)

	payload, err := client.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, []string{"2", "1"}, payload.Groups(), "group order must follow the document")

	group, ok := payload.Group("1")
	require.True(t, ok)
	assert.Equal(t, []string{"Security"}, group.Courses())
}

func TestFetch_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "not found status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "body is not a schedule document",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`["not", "a", "schedule"]`))
			},
		},
		{
			name: "body is not JSON at all",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>schedule</html>`))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			t.Cleanup(server.Close)

			client := NewClient(server.URL, 5*time.Second)
			t.Cleanup(client.Close)

			_, err := client.Fetch(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), server.URL, "errors must name the endpoint")
		})
	}
}

func TestFetch_UnreachableEndpoint(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	client := NewClient(endpoint, time.Second)
	_, err := client.Fetch(context.Background())
	require.Error(t, err)
}

func TestFetch_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, time.Second)
	_, err := client.Fetch(ctx)
	require.Error(t, err)
}
