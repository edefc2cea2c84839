package common

import "io"

type Flusher interface {
	Flush() error
}

type WriterWithUpstream interface {
	UpstreamWriter() io.Writer
}

// Flush flushes writer and every upstream writer behind it.
func Flush(writer io.Writer) error {
	for {
		if f, ok := writer.(Flusher); ok {
			err := f.Flush()
			if err != nil {
				return err
			}
		}
		if u, ok := writer.(WriterWithUpstream); ok {
			writer = u.UpstreamWriter()
		} else {
			break
		}
	}
	return nil
}
