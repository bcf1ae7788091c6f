package logger

import (
	"bytes"
	"io"
	"sync"
)

// Deferred buffers log output while a full-screen UI owns the terminal.
type Deferred struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends to the buffer under a mutex guard.
func (d *Deferred) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Flush copies buffered output to w and resets the buffer.
func (d *Deferred) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.buf.Len() == 0 {
		return nil
	}
	_, err := d.buf.WriteTo(w)
	return err
}
