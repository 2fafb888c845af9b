package initrd

import "encoding/binary"

// dataBuffer accumulates the image's data region. It only ever grows, so
// offsets handed out by end are final.
type dataBuffer struct {
	byts []byte
}

// end is the offset one past the last byte written. Content appended next
// lands here.
func (d *dataBuffer) end() uint64 {
	return uint64(len(d.byts))
}

// append adds raw file content.
func (d *dataBuffer) append(p []byte) {
	d.byts = append(d.byts, p...)
}

// appendIndex adds a directory's child index array, each entry 8 bytes
// little-endian.
func (d *dataBuffer) appendIndex(indices []int) {
	for _, i := range indices {
		d.byts = binary.LittleEndian.AppendUint64(d.byts, uint64(i))
	}
}
