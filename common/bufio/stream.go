package bufio

import (
	"github.com/bytewrap/bytewrap/common/buf"
	"github.com/bytewrap/bytewrap/common/rw"
)

// streamSource presents the write-buffering half of a Stream as a source,
// forwarding reads straight to the wrapped duplex so inbound bytes never
// touch the write buffer.
type streamSource[S rw.Duplex] struct {
	writer *Writer[S]
}

func (s *streamSource[S]) Read(p []byte) (int, error) {
	return s.writer.inner.Read(p)
}

func (s *streamSource[S]) EOF() bool {
	return s.writer.inner.EOF()
}

// Stream wraps a duplex stream and buffers input and output independently:
// a Reader over a source adapter over a Writer over the duplex. Input and
// output buffering compose orthogonally, at the cost of one indirection.
//
// Stream does NOT flush its output buffer when discarded.
type Stream[S rw.Duplex] struct {
	inner *Reader[*streamSource[S]]
}

// NewStream creates a Stream with default capacities on both sides.
func NewStream[S rw.Duplex](inner S) *Stream[S] {
	return NewStreamSize(inner, buf.DefaultCapacity, buf.DefaultCapacity)
}

// NewStreamSize creates a Stream with separate read and write capacities.
func NewStreamSize[S rw.Duplex](inner S, readCapacity int, writeCapacity int) *Stream[S] {
	writer := NewWriterSize(inner, writeCapacity)
	return &Stream[S]{NewReaderSize(&streamSource[S]{writer}, readCapacity)}
}

func (s *Stream[S]) Fill() ([]byte, error) {
	return s.inner.Fill()
}

func (s *Stream[S]) Consume(n int) {
	s.inner.Consume(n)
}

func (s *Stream[S]) Read(p []byte) (int, error) {
	return s.inner.Read(p)
}

func (s *Stream[S]) EOF() bool {
	return s.inner.EOF()
}

func (s *Stream[S]) ReadUntil(delim byte) ([]byte, error) {
	return s.inner.ReadUntil(delim)
}

func (s *Stream[S]) Write(p []byte) error {
	return s.inner.inner.writer.Write(p)
}

func (s *Stream[S]) Flush() error {
	return s.inner.inner.writer.Flush()
}

// Inner flushes pending output and returns the wrapped duplex stream.
func (s *Stream[S]) Inner() (S, error) {
	return s.inner.inner.writer.Inner()
}

func (s *Stream[S]) Upstream() any {
	return s.inner.inner.writer.inner
}
