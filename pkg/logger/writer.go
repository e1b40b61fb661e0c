package logger

import (
	"io"
	"sync"
)

// SharedWriter lets the prompt's render loop and the logger write to the same
// terminal. Each Write lands whole, so a log line never splits a menu frame.
type SharedWriter struct {
	out io.Writer
	mu  *sync.Mutex
}

func NewSharedWriter(out io.Writer) SharedWriter {
	return SharedWriter{out: out, mu: &sync.Mutex{}}
}

func (w SharedWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	n, err := w.out.Write(b)
	w.mu.Unlock()
	return n, err
}

// Underlying is the wrapped writer, for terminal detection.
func (w SharedWriter) Underlying() io.Writer {
	return w.out
}

var _ io.Writer = SharedWriter{}
