package logger

import (
	"context"
	"sync"
)

// DeferredLogger holds everything logged while the index is built. The
// prompt flushes it once the greeting is on screen, so those lines show up
// below the greeting instead of above it. After Flush, output writes through.
type DeferredLogger struct {
	Logger

	mu      sync.Mutex
	held    []heldWrite
	target  Logger
	flushed bool
}

type heldWrite struct {
	level Level
	b     []byte
}

func NewDeferredLogger(ctx context.Context) *DeferredLogger {
	target := Get(ctx)
	dl := &DeferredLogger{target: target}
	dl.Logger = NewFuncLogger(target.SupportsColor(), target.Level(), dl.write)
	return dl
}

func (dl *DeferredLogger) write(level Level, b []byte) error {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.flushed {
		dl.target.Write(level, b)
		return nil
	}

	// Callers may reuse b after we return.
	dl.held = append(dl.held, heldWrite{level: level, b: append([]byte(nil), b...)})
	return nil
}

// Flush replays the held output, in order, to the logger that was on the
// context at construction. Later calls are no-ops.
func (dl *DeferredLogger) Flush() {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.flushed {
		return
	}
	for _, w := range dl.held {
		dl.target.Write(w.level, w.b)
	}
	dl.held = nil
	dl.flushed = true
}

// Held is the number of writes waiting for Flush.
func (dl *DeferredLogger) Held() int {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	return len(dl.held)
}
