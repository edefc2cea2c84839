package rw

import (
	"io"

	"github.com/bytewrap/bytewrap/common/buf"
)

// MemorySource reads from a fixed byte slice.
type MemorySource struct {
	buffer *buf.Buffer
}

func NewMemorySource(data []byte) *MemorySource {
	return &MemorySource{buf.As(data)}
}

func (s *MemorySource) Read(p []byte) (int, error) {
	return s.buffer.Read(p)
}

func (s *MemorySource) EOF() bool {
	return s.buffer.IsEmpty()
}

// MemorySink accumulates everything written to it.
type MemorySink struct {
	data []byte
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Write(p []byte) error {
	s.data = append(s.data, p...)
	return nil
}

func (s *MemorySink) Flush() error {
	return nil
}

func (s *MemorySink) Bytes() []byte {
	return s.data
}

// Null is always at end-of-stream and discards everything written to it,
// with /dev/null semantics.
type Null struct{}

func (Null) Read(p []byte) (int, error) {
	return 0, io.EOF
}

func (Null) EOF() bool {
	return true
}

func (Null) Write(p []byte) error {
	return nil
}

func (Null) Flush() error {
	return nil
}
