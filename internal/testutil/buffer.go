// Package testutil carries the shared pieces of the test suite: a
// race-safe output buffer plus a harness that stands up a stub schedule
// endpoint and drives the whole viewer pipeline the way main does.
package testutil

import (
	"bytes"
	"sync"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests. The
// watch loop writes from its own goroutine, so tests must not read a plain
// bytes.Buffer concurrently with it.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}
