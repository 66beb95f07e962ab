// Package logging keeps a bounded in-memory ring of recent log records so
// the operational API can serve them without touching disk.
package logging

import (
	"sync"
	"time"
)

// Record is one captured log entry.
type Record struct {
	Time    time.Time         `json:"time"`
	Level   string            `json:"level"`
	Message string            `json:"message"`
	Attrs   map[string]string `json:"attrs,omitempty"`
}

// Buffer is a thread-safe circular buffer of recent log records, overwriting
// the oldest entry when full.
type Buffer struct {
	mu    sync.RWMutex
	buf   []Record
	size  int
	head  int // next write position
	count int
}

// NewBuffer creates a buffer holding up to size records.
func NewBuffer(size int) *Buffer {
	if size < 1 {
		size = 256
	}
	return &Buffer{
		buf:  make([]Record, size),
		size: size,
	}
}

// Add appends a record, overwriting the oldest if the buffer is full.
func (b *Buffer) Add(rec Record) {
	b.mu.Lock()
	b.buf[b.head] = rec
	b.head = (b.head + 1) % b.size
	if b.count < b.size {
		b.count++
	}
	b.mu.Unlock()
}

// Latest returns the most recent n records, newest first.
func (b *Buffer) Latest(n int) []Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n > b.count {
		n = b.count
	}
	if n <= 0 {
		return nil
	}

	result := make([]Record, n)
	for i := 0; i < n; i++ {
		// Walk backwards from the most recent entry
		idx := (b.head - 1 - i + b.size) % b.size
		result[i] = b.buf[idx]
	}
	return result
}

// Len returns the number of records currently stored.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}
