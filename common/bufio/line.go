package bufio

import (
	"bytes"

	"github.com/bytewrap/bytewrap/common/rw"
)

// Lines typically aren't that long, don't use a giant buffer.
const lineBufferCapacity = 1024

// LineWriter wraps a sink and buffers output to it, flushing whenever a
// newline (0xa, '\n') is written. Like Writer, it does NOT flush when
// discarded.
type LineWriter[W rw.Sink] struct {
	inner *Writer[W]
}

// NewLineWriter creates a LineWriter around inner.
func NewLineWriter[W rw.Sink](inner W) *LineWriter[W] {
	return &LineWriter[W]{NewWriterSize(inner, lineBufferCapacity)}
}

// Write buffers p, flushing through the last newline it contains. Bytes
// after the last newline stay buffered until a future newline or an
// explicit Flush.
func (w *LineWriter[W]) Write(p []byte) error {
	index := bytes.LastIndexByte(p, '\n')
	if index < 0 {
		return w.inner.Write(p)
	}
	err := w.inner.Write(p[:index+1])
	if err != nil {
		return err
	}
	err = w.inner.Flush()
	if err != nil {
		return err
	}
	return w.inner.Write(p[index+1:])
}

// Flush flushes the inner Writer.
func (w *LineWriter[W]) Flush() error {
	return w.inner.Flush()
}

// Inner flushes pending buffered bytes and returns the wrapped sink.
func (w *LineWriter[W]) Inner() (W, error) {
	return w.inner.Inner()
}

func (w *LineWriter[W]) Upstream() any {
	return w.inner.inner
}
