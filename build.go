package initrd

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path"

	"github.com/nw-github/initrd/inode"
)

var ErrNotDirectory = errors.New("source is not a directory")

// Build lays out the tree rooted at fsys as an image: every directory and
// regular file gets an inode, file content and directory child arrays land
// in the data region. Entries of any other kind are skipped. Entries are
// taken in the order fs.ReadDir yields them, so the same tree always
// builds the same image.
//
// Errors with ErrNotDirectory when the root of fsys is not a directory.
// Any failure aborts the build; there is no partial image.
func Build(fsys fs.FS) (*Image, error) {
	st, err := fs.Stat(fsys, ".")
	if err != nil {
		return nil, errors.Join(ErrNotDirectory, err)
	}
	if !st.IsDir() {
		return nil, ErrNotDirectory
	}
	b := builder{fsys: fsys}
	// The root is allocated before anything else, so its index is 0. It
	// acts as its own parent, making its ".." resolve to itself.
	if _, err = b.addDir(".", 0); err != nil {
		return nil, err
	}
	return &Image{Inodes: b.table, Data: b.data.byts}, nil
}

type builder struct {
	fsys  fs.FS
	table inode.Table
	data  dataBuffer
}

// addDir lays out the directory at dir and everything beneath it,
// depth-first, and returns the index of the directory's own inode. parent
// is the inode index of dir's parent directory.
func (b *builder) addDir(dir string, parent int) (int, error) {
	name := ""
	if len(b.table) > 0 {
		name = path.Base(dir)
	}
	n, err := inode.NewDir(name)
	if err != nil {
		return 0, err
	}
	self := b.table.Add(n)
	entries, err := fs.ReadDir(b.fsys, dir)
	if err != nil {
		return 0, errors.Join(fmt.Errorf("failed to read directory %s", dir), err)
	}
	// Slots 0 and 1 are reserved for "." and "..", which don't exist yet.
	children := make([]int, 2, len(entries)+2)
	var idx int
	for _, ent := range entries {
		sub := path.Join(dir, ent.Name())
		switch {
		case ent.IsDir():
			idx, err = b.addDir(sub, self)
		case ent.Type().IsRegular():
			idx, err = b.addFile(sub, ent)
		default:
			continue
		}
		if err != nil {
			return 0, err
		}
		children = append(children, idx)
	}
	// Size and address only settle once the whole subtree is in place.
	// "." and ".." read their target's geometry through the table at
	// encode time; the parent may be finalized later.
	b.table.Finalize(self, uint32(len(children)), b.data.end())
	children[0] = b.table.Add(inode.NewRef(".", self))
	children[1] = b.table.Add(inode.NewRef("..", parent))
	b.data.appendIndex(children)
	return self, nil
}

// addFile reads the file at sub and lays it out: content at the end of the
// data region, record in the table.
func (b *builder) addFile(sub string, ent fs.DirEntry) (int, error) {
	st, err := ent.Info()
	if err != nil {
		return 0, errors.Join(fmt.Errorf("failed to read %s", sub), err)
	}
	if st.Size() > math.MaxUint32 {
		return 0, fmt.Errorf("file %s is too large (size field is 32 bits)", sub)
	}
	buf, err := fs.ReadFile(b.fsys, sub)
	if err != nil {
		return 0, errors.Join(fmt.Errorf("failed to read %s", sub), err)
	}
	// The stat size is only a gate; what gets encoded is what was read.
	if uint64(len(buf)) > math.MaxUint32 {
		return 0, fmt.Errorf("file %s is too large (size field is 32 bits)", sub)
	}
	n, err := inode.NewFile(ent.Name(), uint32(len(buf)), b.data.end())
	if err != nil {
		return 0, err
	}
	idx := b.table.Add(n)
	b.data.append(buf)
	return idx, nil
}
