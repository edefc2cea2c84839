package rw

import (
	"io"

	"github.com/bytewrap/bytewrap/common"
)

type readerSource struct {
	reader io.Reader
	eof    bool
}

// SourceFromReader adapts an io.Reader into a Source, recording io.EOF into
// the separate EOF query.
func SourceFromReader(reader io.Reader) Source {
	return &readerSource{reader: reader}
}

func (s *readerSource) Read(p []byte) (int, error) {
	n, err := s.reader.Read(p)
	if err == io.EOF {
		s.eof = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
	return n, err
}

func (s *readerSource) EOF() bool {
	return s.eof
}

type writerSink struct {
	writer io.Writer
}

// SinkFromWriter adapts an io.Writer into a Sink. Flush walks the writer
// chain through common.Flush, so wrapped writers with their own buffering
// (compressors, bufio) are flushed too.
func SinkFromWriter(writer io.Writer) Sink {
	return &writerSink{writer}
}

func (s *writerSink) Write(p []byte) error {
	return common.Error(s.writer.Write(p))
}

func (s *writerSink) Flush() error {
	return common.Flush(s.writer)
}

func (s *writerSink) UpstreamWriter() io.Writer {
	return s.writer
}
