package bufio

import (
	"github.com/bytewrap/bytewrap/common"
	"github.com/bytewrap/bytewrap/common/buf"
	"github.com/bytewrap/bytewrap/common/rw"
)

// Writer wraps a sink and buffers output to it.
//
// Writer does NOT flush its buffer when discarded: call Flush, or tear down
// through Inner, or the buffered bytes are lost.
type Writer[W rw.Sink] struct {
	inner  W
	buffer *buf.Buffer
}

// NewWriter creates a Writer with the default buffer capacity.
func NewWriter[W rw.Sink](inner W) *Writer[W] {
	return NewWriterSize(inner, buf.DefaultCapacity)
}

// NewWriterSize creates a Writer with the specified buffer capacity.
func NewWriterSize[W rw.Sink](inner W, capacity int) *Writer[W] {
	return &Writer[W]{
		inner:  inner,
		buffer: buf.NewSize(capacity),
	}
}

// Write buffers p, flushing current contents first if p does not fit in the
// free space. A p larger than the whole buffer is passed straight to the
// sink after that flush, skipping the pointless double copy.
func (w *Writer[W]) Write(p []byte) error {
	if len(p) > w.buffer.FreeLen() {
		err := w.flushBuffer()
		if err != nil {
			return err
		}
	}
	if len(p) > w.buffer.Cap() {
		return w.inner.Write(p)
	}
	common.Must1(w.buffer.Write(p))
	return nil
}

func (w *Writer[W]) flushBuffer() error {
	if w.buffer.IsEmpty() {
		return nil
	}
	err := w.inner.Write(w.buffer.Bytes())
	if err != nil {
		return err
	}
	w.buffer.Reset()
	return nil
}

// Flush writes pending buffered bytes to the sink in a single call, then
// propagates the flush to the sink itself. Cost-free when nothing is
// pending.
func (w *Writer[W]) Flush() error {
	err := w.flushBuffer()
	if err != nil {
		return err
	}
	return w.inner.Flush()
}

// Inner flushes pending buffered bytes and returns the wrapped sink. This
// is the only path that flushes automatically, and the one safe way to tear
// a Writer down without an explicit Flush.
func (w *Writer[W]) Inner() (W, error) {
	err := w.flushBuffer()
	return w.inner, err
}

func (w *Writer[W]) Upstream() any {
	return w.inner
}
