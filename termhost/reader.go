package termhost

import (
	"errors"
	"time"
)

// ErrClosed is returned by a Reader after Close.
var ErrClosed = errors.New("termhost: reader closed")

// Reader delivers raw terminal input bytes.
// It is designed for polling-based event loops.
type Reader interface {
	// ReadInput waits up to timeout for input and returns what is available.
	// It returns (nil, nil) on timeout. A negative timeout blocks indefinitely.
	ReadInput(timeout time.Duration) ([]byte, error)

	// Close releases resources. Must be called when done.
	Close() error
}

// MockReader is a Reader for testing.
type MockReader struct {
	chunks [][]byte
	index  int
	closed bool
}

// Ensure MockReader implements Reader.
var _ Reader = (*MockReader)(nil)

// NewMockReader creates a MockReader with the given input chunks.
// Chunks are returned in order by successive calls to ReadInput.
func NewMockReader(chunks ...string) *MockReader {
	m := &MockReader{}
	m.Add(chunks...)
	return m
}

// ReadInput returns the next queued chunk, ignoring the timeout.
// Returns (nil, nil) when all chunks have been consumed.
func (m *MockReader) ReadInput(timeout time.Duration) ([]byte, error) {
	if m.closed {
		return nil, ErrClosed
	}
	if m.index >= len(m.chunks) {
		return nil, nil
	}
	c := m.chunks[m.index]
	m.index++
	return c, nil
}

// Add queues more chunks.
func (m *MockReader) Add(chunks ...string) {
	for _, c := range chunks {
		m.chunks = append(m.chunks, []byte(c))
	}
}

// Remaining returns the number of chunks yet to be returned.
func (m *MockReader) Remaining() int {
	return len(m.chunks) - m.index
}

// Close marks the reader closed.
func (m *MockReader) Close() error {
	m.closed = true
	return nil
}
