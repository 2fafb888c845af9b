package inode

import (
	"errors"
	"fmt"
)

// The types of inode the image format knows about. Anything else on the
// host (symlinks, devices, sockets) has no representation.
const (
	File = uint16(iota)
	Dir
)

const (
	// NameLen is the width of the fixed name field in an encoded record.
	// Names are at most this many bytes and are never truncated to fit.
	NameLen = 32
	// RecordLen is the width of one encoded record: the name field
	// followed by name length, type, size and address.
	RecordLen = NameLen + 2 + 2 + 4 + 8
)

var ErrNameTooLong = errors.New("inode name is longer than 32 bytes")

// Inode is a single record in the image's inode table. For a file, Size and
// Addr locate its content in the data region. For a directory, Addr locates
// its child index array and Size is the number of entries in it, the "."
// and ".." entries included.
type Inode struct {
	Name string
	Type uint16
	Size uint32
	Addr uint64

	// ref holds the index of the record whose finalized Size/Addr this
	// record mirrors, plus one. Zero means the record stands on its own.
	ref int
}

// NewFile creates a file record from its content's length and data region
// offset.
func NewFile(name string, size uint32, addr uint64) (Inode, error) {
	if len(name) > NameLen {
		return Inode{}, fmt.Errorf("name %q: %w", name, ErrNameTooLong)
	}
	return Inode{Name: name, Type: File, Size: size, Addr: addr}, nil
}

// NewDir creates a directory record with zero size and address. The real
// values aren't known until the directory's whole subtree has been laid
// out; they are filled in once with Table.Finalize.
func NewDir(name string) (Inode, error) {
	if len(name) > NameLen {
		return Inode{}, fmt.Errorf("name %q: %w", name, ErrNameTooLong)
	}
	return Inode{Name: name, Type: Dir}, nil
}

// NewRef creates a directory record that encodes with the finalized size
// and address of the record at index target, whenever that happens. Used
// for the "." and ".." entries, which are created before their target's
// geometry is settled.
func NewRef(name string, target int) Inode {
	return Inode{Name: name, Type: Dir, ref: target + 1}
}

func (i Inode) IsDir() bool {
	return i.Type == Dir
}
