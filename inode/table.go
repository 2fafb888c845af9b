package inode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Table is an image's inode table: an append-only arena of records
// addressed by index. Index 0 is always the root directory. Indices never
// move once handed out; directory child arrays and "."/".." references
// store them.
type Table []Inode

// Add appends a record and returns its index.
func (t *Table) Add(i Inode) int {
	*t = append(*t, i)
	return len(*t) - 1
}

// Finalize sets a directory record's size and address. Directories are
// added with placeholders and finalized exactly once, after everything
// beneath them has been laid out.
func (t Table) Finalize(i int, size uint32, addr uint64) {
	t[i].Size = size
	t[i].Addr = addr
}

// Resolve returns the record's effective size and address: its own, or the
// target's for a "."/".." reference. Targets are always concrete directory
// records, so a single hop settles it.
func (t Table) Resolve(i int) (size uint32, addr uint64) {
	n := t[i]
	if n.ref > 0 {
		n = t[n.ref-1]
	}
	return n.Size, n.Addr
}

// raw is the encoded form of a record.
type raw struct {
	Name    [NameLen]byte
	NameLen uint16
	Type    uint16
	Size    uint32
	Addr    uint64
}

// WriteTo encodes every record in index order, RecordLen bytes each,
// little-endian. References come out carrying their target's final
// geometry.
func (t Table) WriteTo(w io.Writer) (n int64, err error) {
	var r raw
	for i := range t {
		r = raw{NameLen: uint16(len(t[i].Name)), Type: t[i].Type}
		copy(r.Name[:], t[i].Name)
		r.Size, r.Addr = t.Resolve(i)
		err = binary.Write(w, binary.LittleEndian, &r)
		if err != nil {
			return n, errors.Join(fmt.Errorf("failed to write inode %d", i), err)
		}
		n += RecordLen
	}
	return
}
