package bufio_test

import (
	"io"
	"testing"

	"github.com/bytewrap/bytewrap/common/bufio"
	"github.com/bytewrap/bytewrap/common/rw"

	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	t.Parallel()
	reader := bufio.NewReaderSize(rw.NewMemorySource([]byte{0, 1, 2, 3, 4}), 2)

	p := make([]byte, 3)
	n, err := reader.Read(p)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{0, 1}, p[:n])
	require.False(t, reader.EOF())

	p = make([]byte, 1)
	n, err = reader.Read(p)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []byte{2}, p[:n])
	require.False(t, reader.EOF())

	p = make([]byte, 3)
	n, err = reader.Read(p)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []byte{3}, p[:n])
	require.False(t, reader.EOF())

	n, err = reader.Read(p)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []byte{4}, p[:n])
	require.True(t, reader.EOF())

	_, err = reader.Read(p)
	require.ErrorIs(t, err, io.EOF)
}

func TestReaderFillConsume(t *testing.T) {
	t.Parallel()
	reader := bufio.NewReaderSize(rw.NewMemorySource([]byte{0, 1, 2}), 2)

	available, err := reader.Fill()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1}, available)

	// No refill while bytes remain buffered.
	available, err = reader.Fill()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1}, available)

	reader.Consume(1)
	available, err = reader.Fill()
	require.NoError(t, err)
	require.Equal(t, []byte{1}, available)

	reader.Consume(1)
	available, err = reader.Fill()
	require.NoError(t, err)
	require.Equal(t, []byte{2}, available)
	reader.Consume(1)

	available, err = reader.Fill()
	require.NoError(t, err)
	require.Empty(t, available)
	require.True(t, reader.EOF())
}

func TestReaderConsumePanics(t *testing.T) {
	t.Parallel()
	reader := bufio.NewReaderSize(rw.NewMemorySource([]byte{0}), 2)
	available, err := reader.Fill()
	require.NoError(t, err)
	require.Equal(t, 1, len(available))
	require.Panics(t, func() {
		reader.Consume(2)
	})
}

func TestReaderReproducesSource(t *testing.T) {
	t.Parallel()
	source := make([]byte, 1027)
	for i := range source {
		source[i] = byte(i)
	}
	for _, capacity := range []int{1, 2, 7, 64, 1024, 4096} {
		reader := bufio.NewReaderSize(rw.NewMemorySource(source), capacity)
		var result []byte
		p := make([]byte, 3)
		for {
			n, err := reader.Read(p)
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			result = append(result, p[:n]...)
			require.Equal(t, len(result) == len(source), reader.EOF())
		}
		require.Equal(t, source, result)
		require.True(t, reader.EOF())
	}
}

func TestReadUntil(t *testing.T) {
	t.Parallel()
	reader := bufio.NewReaderSize(rw.NewMemorySource([]byte{0, 1, 2, 1, 0}), 2)

	line, err := reader.ReadUntil(0)
	require.NoError(t, err)
	require.Equal(t, []byte{0}, line)

	line, err = reader.ReadUntil(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, line)

	line, err = reader.ReadUntil(1)
	require.NoError(t, err)
	require.Equal(t, []byte{1}, line)

	line, err = reader.ReadUntil(8)
	require.NoError(t, err)
	require.Equal(t, []byte{0}, line)

	_, err = reader.ReadUntil(9)
	require.ErrorIs(t, err, io.EOF)
}

func TestReaderInner(t *testing.T) {
	t.Parallel()
	source := rw.NewMemorySource([]byte{0, 1})
	reader := bufio.NewReader(source)
	require.Same(t, source, reader.Inner())
}

func TestReaderNull(t *testing.T) {
	t.Parallel()
	reader := bufio.NewReader(rw.Null{})
	require.True(t, reader.EOF())
	_, err := reader.Read(make([]byte, 1))
	require.ErrorIs(t, err, io.EOF)
}
