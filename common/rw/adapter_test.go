package rw_test

import (
	"bufio"
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/bytewrap/bytewrap/common/rw"

	"github.com/stretchr/testify/require"
)

func TestSourceFromReader(t *testing.T) {
	t.Parallel()
	source := rw.SourceFromReader(bytes.NewReader([]byte{0, 1, 2}))
	require.False(t, source.EOF())

	p := make([]byte, 4)
	n, err := source.Read(p)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2}, p[:n])

	n, err = source.Read(p)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, 0, n)
	require.True(t, source.EOF())
}

func TestSourceFromReaderDataWithEOF(t *testing.T) {
	t.Parallel()
	source := rw.SourceFromReader(iotest.DataErrReader(bytes.NewReader([]byte{0, 1})))

	p := make([]byte, 4)
	n, err := source.Read(p)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1}, p[:n])
	require.True(t, source.EOF())

	_, err = source.Read(p)
	require.ErrorIs(t, err, io.EOF)
}

func TestSinkFromWriterFlush(t *testing.T) {
	t.Parallel()
	var result bytes.Buffer
	buffered := bufio.NewWriterSize(&result, 16)
	sink := rw.SinkFromWriter(buffered)

	require.NoError(t, sink.Write([]byte{0, 1}))
	require.Empty(t, result.Bytes())

	require.NoError(t, sink.Flush())
	require.Equal(t, []byte{0, 1}, result.Bytes())
}

func TestJoin(t *testing.T) {
	t.Parallel()
	sink := rw.NewMemorySink()
	duplex := rw.Join(rw.NewMemorySource([]byte{7}), sink)

	p := make([]byte, 1)
	n, err := duplex.Read(p)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.True(t, duplex.EOF())

	require.NoError(t, duplex.Write([]byte{8}))
	require.NoError(t, duplex.Flush())
	require.Equal(t, []byte{8}, sink.Bytes())
}
