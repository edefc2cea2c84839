package buf

import (
	"io"

	F "github.com/bytewrap/bytewrap/common/format"
)

// DefaultCapacity follows the libuv recommendation of 64k buffers to
// maximize throughput.
const DefaultCapacity = 64 * 1024

// Buffer is a fixed-capacity byte cursor: data[start:end] holds valid
// unconsumed bytes, data[end:capacity] is free space. start never exceeds
// end, end never exceeds capacity; breaking that is a programming error and
// panics.
type Buffer struct {
	data     []byte
	start    int
	end      int
	capacity int
}

func New() *Buffer {
	return NewSize(DefaultCapacity)
}

func NewSize(size int) *Buffer {
	return &Buffer{
		data:     make([]byte, size),
		capacity: size,
	}
}

// As wraps data as an already-filled buffer.
func As(data []byte) *Buffer {
	return &Buffer{
		data:     data,
		end:      len(data),
		capacity: len(data),
	}
}

// With wraps data as an empty buffer backed by it.
func With(data []byte) *Buffer {
	return &Buffer{
		data:     data,
		capacity: len(data),
	}
}

// Extend grows the valid window by n and returns the newly valid bytes.
func (b *Buffer) Extend(n int) []byte {
	end := b.end + n
	if end > b.capacity {
		panic(F.ToString("buffer overflow: capacity ", b.capacity, ", end ", b.end, ", need ", n))
	}
	ext := b.data[b.end:end]
	b.end = end
	return ext
}

// Advance consumes n valid bytes. Consuming past the watermark panics.
func (b *Buffer) Advance(n int) {
	start := b.start + n
	if start > b.end {
		panic(F.ToString("buffer underflow: start ", b.start, ", end ", b.end, ", consume ", n))
	}
	b.start = start
}

// Truncate resets the valid window to the first n bytes past start.
func (b *Buffer) Truncate(n int) {
	b.end = b.start + n
}

func (b *Buffer) Write(data []byte) (n int, err error) {
	if len(data) == 0 {
		return
	}
	if b.IsFull() {
		return 0, io.ErrShortBuffer
	}
	n = copy(b.data[b.end:b.capacity], data)
	b.end += n
	return
}

func (b *Buffer) WriteByte(d byte) error {
	if b.IsFull() {
		return io.ErrShortBuffer
	}
	b.data[b.end] = d
	b.end++
	return nil
}

func (b *Buffer) Read(data []byte) (n int, err error) {
	if b.IsEmpty() {
		return 0, io.EOF
	}
	n = copy(data, b.data[b.start:b.end])
	b.start += n
	return
}

func (b *Buffer) ReadByte() (byte, error) {
	if b.IsEmpty() {
		return 0, io.EOF
	}
	nb := b.data[b.start]
	b.start++
	return nb, nil
}

func (b *Buffer) Reset() {
	b.start = 0
	b.end = 0
}

func (b *Buffer) Len() int {
	return b.end - b.start
}

func (b *Buffer) Cap() int {
	return b.capacity
}

func (b *Buffer) Bytes() []byte {
	return b.data[b.start:b.end]
}

func (b *Buffer) FreeLen() int {
	return b.capacity - b.end
}

func (b *Buffer) FreeBytes() []byte {
	return b.data[b.end:b.capacity]
}

func (b *Buffer) IsEmpty() bool {
	return b.end-b.start == 0
}

func (b *Buffer) IsFull() bool {
	return b.end == b.capacity
}
