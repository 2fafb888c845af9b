package initrd

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/nw-github/initrd/inode"
)

const (
	// Magic is the first header field of every image.
	Magic uint32 = 0xce3fdefe
	// HeaderLen is the encoded header width: magic, version and inode
	// count.
	HeaderLen = 4 + 4 + 8
)

// version is the image revision written to the header. There has only ever
// been one.
const version uint32 = 0

// header sits at the very front of an image, immediately followed by the
// inode table and then the data region.
type header struct {
	Magic      uint32
	Version    uint32
	InodeCount uint64
}

// Image is a fully laid out image, ready to serialize.
type Image struct {
	Inodes inode.Table
	Data   []byte
}

// WriteTo serializes the image: header, inode table, data region, all
// little-endian. Returns the total number of bytes written.
func (i *Image) WriteTo(w io.Writer) (n int64, err error) {
	err = binary.Write(w, binary.LittleEndian, header{
		Magic:      Magic,
		Version:    version,
		InodeCount: uint64(len(i.Inodes)),
	})
	if err != nil {
		return 0, errors.Join(errors.New("failed to write header"), err)
	}
	n = HeaderLen
	tn, err := i.Inodes.WriteTo(w)
	n += tn
	if err != nil {
		return n, errors.Join(errors.New("failed to write inode table"), err)
	}
	dn, err := w.Write(i.Data)
	n += int64(dn)
	if err != nil {
		return n, errors.Join(errors.New("failed to write data region"), err)
	}
	return
}
