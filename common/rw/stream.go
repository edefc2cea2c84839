// Package rw defines the capability contracts consumed by the buffering
// decorators: a Source of bytes, a Sink for bytes, and a Duplex stream that
// is both. It also provides in-memory streams and adapters bridging the
// standard io interfaces into these contracts.
package rw

// Source is an object from which bytes can be read.
//
// Read copies up to len(p) bytes into p and returns the count. Short reads
// are legal. A read that produces no bytes returns (0, io.EOF); whether the
// stream is permanently exhausted is a separate question, answered by EOF.
// Any other error is an I/O fault and is propagated untouched by the
// buffering layer.
type Source interface {
	Read(p []byte) (int, error)
	EOF() bool
}

// Sink is an object to which bytes can be written. Write either fully
// consumes p or fails; there is no partial-write contract. Flush forces
// delivery of anything the sink itself may be buffering.
type Sink interface {
	Write(p []byte) error
	Flush() error
}

// Duplex is an object that is simultaneously a Source and a Sink.
type Duplex interface {
	Source
	Sink
}

type duplex struct {
	Source
	Sink
}

// Join combines a source half and a sink half into one Duplex.
func Join(source Source, sink Sink) Duplex {
	return &duplex{source, sink}
}
