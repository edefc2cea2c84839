// Package bytewrap provides buffering decorators for abstract byte streams.
//
// Working directly with a raw stream can be excessively inefficient: every
// read or write may be a system call. The common/bufio package wraps sources,
// sinks and duplex streams with internal buffers that batch those calls.
package bytewrap

const VersionStr = "0.1.0"
