package initrd

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
	"testing/fstest"

	"github.com/nw-github/initrd/inode"
	"github.com/stretchr/testify/require"
)

func TestWriteTo(t *testing.T) {
	img, err := Build(fstest.MapFS{
		"a.txt": &fstest.MapFile{Data: []byte("abcd")},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := img.WriteTo(&buf)
	require.NoError(t, err)
	require.EqualValues(t, buf.Len(), n)
	require.EqualValues(t, HeaderLen+len(img.Inodes)*inode.RecordLen+len(img.Data), n)

	raw := buf.Bytes()
	require.Equal(t, []byte{0xfe, 0xde, 0x3f, 0xce}, raw[:4])
	require.Equal(t, []byte{0, 0, 0, 0}, raw[4:8])
	require.EqualValues(t, len(img.Inodes), binary.LittleEndian.Uint64(raw[8:]))
}

// capWriter accepts limit bytes and then starts failing.
type capWriter struct {
	limit int
}

func (c *capWriter) Write(p []byte) (int, error) {
	if len(p) > c.limit {
		return 0, io.ErrShortWrite
	}
	c.limit -= len(p)
	return len(p), nil
}

func TestWriteToFailure(t *testing.T) {
	img, err := Build(fstest.MapFS{
		"a.txt": &fstest.MapFile{Data: []byte("abcd")},
	})
	require.NoError(t, err)
	for _, limit := range []int{0, HeaderLen, HeaderLen + len(img.Inodes)*inode.RecordLen} {
		_, err = img.WriteTo(&capWriter{limit: limit})
		require.Error(t, err)
	}
}
