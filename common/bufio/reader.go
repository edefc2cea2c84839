// Package bufio implements buffering decorators for the rw capability
// contracts: a Reader that batches source reads, a Writer that batches sink
// writes, a LineWriter that flushes on newlines, and a Stream that buffers
// both directions of a duplex stream independently.
//
// The write-side decorators do NOT flush when discarded: data still sitting
// in the buffer is silently dropped unless Flush or Inner is called first.
package bufio

import (
	"bytes"
	"io"

	"github.com/bytewrap/bytewrap/common/buf"
	"github.com/bytewrap/bytewrap/common/rw"
)

// Reader wraps a source and buffers input from it.
type Reader[S rw.Source] struct {
	inner  S
	buffer *buf.Buffer
}

// NewReader creates a Reader with the default buffer capacity.
func NewReader[S rw.Source](inner S) *Reader[S] {
	return NewReaderSize(inner, buf.DefaultCapacity)
}

// NewReaderSize creates a Reader with the specified buffer capacity.
func NewReaderSize[S rw.Source](inner S, capacity int) *Reader[S] {
	return &Reader[S]{
		inner:  inner,
		buffer: buf.NewSize(capacity),
	}
}

// Fill returns the currently buffered unread bytes, refilling from the
// source only when the buffer is drained. A refill consumes exactly one
// source read; when the source produces nothing the returned slice is
// empty. The slice is valid until the next Fill, Read or ReadUntil call.
func (r *Reader[S]) Fill() ([]byte, error) {
	if r.buffer.IsEmpty() {
		r.buffer.Reset()
		n, err := r.inner.Read(r.buffer.FreeBytes())
		if err != nil && err != io.EOF {
			return nil, err
		}
		r.buffer.Extend(n)
	}
	return r.buffer.Bytes(), nil
}

// Consume marks n bytes returned by Fill as read. Consuming more than Fill
// returned panics. No I/O is performed.
func (r *Reader[S]) Consume(n int) {
	r.buffer.Advance(n)
}

// Read copies buffered bytes into p, refilling at most once. It never
// spans multiple refills: like the wrapped source, it is a short-read
// operation. At end-of-stream it returns (0, io.EOF).
func (r *Reader[S]) Read(p []byte) (int, error) {
	available, err := r.Fill()
	if err != nil {
		return 0, err
	}
	if len(available) == 0 {
		return 0, io.EOF
	}
	n := copy(p, available)
	r.buffer.Advance(n)
	return n, nil
}

// EOF reports whether the buffer is drained and the source is exhausted.
// A non-empty buffer never reports EOF.
func (r *Reader[S]) EOF() bool {
	return r.buffer.IsEmpty() && r.inner.EOF()
}

// ReadUntil reads until the first occurrence of delim, returning the
// accumulated bytes including the delimiter. At end-of-stream it returns
// whatever was accumulated, or (nil, io.EOF) if that is nothing. The
// record's length need not be known in advance; at most one extra copy is
// made per call.
func (r *Reader[S]) ReadUntil(delim byte) ([]byte, error) {
	var result []byte
	for {
		available, err := r.Fill()
		if err != nil {
			return nil, err
		}
		if len(available) == 0 {
			if len(result) == 0 {
				return nil, io.EOF
			}
			return result, nil
		}
		if index := bytes.IndexByte(available, delim); index >= 0 {
			result = append(result, available[:index+1]...)
			r.buffer.Advance(index + 1)
			return result, nil
		}
		result = append(result, available...)
		r.buffer.Advance(len(available))
	}
}

// Inner returns the wrapped source. Bytes already pulled into the buffer
// stay with the Reader.
func (r *Reader[S]) Inner() S {
	return r.inner
}

func (r *Reader[S]) Upstream() any {
	return r.inner
}
