package codec

import (
	"encoding/binary"
	"math"
)

// Row is a zero-copy cursor over one record inside a RowBuffer region.
// Layout: [null bitset][8-byte slot per field][variable-length data]
//
// Fixed-width values live directly in their slot. Variable-length values
// store (offset<<32)|size in the slot, where offset is relative to the
// start of the region, and the payload bytes live in the variable region.
//
// A Row holds a non-owning reference to the buffer's region plus a cached
// length, both refreshed by Repoint on every reallocation. It never
// reaches back into the RowBuffer.
type Row struct {
	numFields   int
	bitsetWidth int
	buf         []byte
	sizeInBytes int
}

// NewRow creates a row view for records with numFields fields. The view
// is unusable until a RowBuffer (or a caller holding an encoded record)
// points it at a region.
func NewRow(numFields int) *Row {
	return &Row{
		numFields:   numFields,
		bitsetWidth: BitsetWidth(numFields),
	}
}

// NumFields returns the number of field slots in the row.
func (r *Row) NumFields() int {
	return r.numFields
}

// Repoint updates the row to read and write through buf. It may be called
// any number of times; the previous region is forgotten entirely.
func (r *Row) Repoint(buf []byte) {
	r.buf = buf
}

// SetTotalSize records the finalized byte size of the row, fixed header
// plus variable data. Callers pass RowBuffer.TotalSize here after writing
// the last field.
func (r *Row) SetTotalSize(n int) {
	r.sizeInBytes = n
}

// Size returns the finalized byte size of the row.
func (r *Row) Size() int {
	return r.sizeInBytes
}

// Payload returns the finalized record bytes. Valid only after
// SetTotalSize and until the next Grow or Reset of the backing buffer.
func (r *Row) Payload() []byte {
	return r.buf[:r.sizeInBytes]
}

// BufferLen returns the cached length of the region the row currently
// points at.
func (r *Row) BufferLen() int {
	return len(r.buf)
}

func (r *Row) slotOffset(i int) int {
	return r.bitsetWidth + 8*i
}

// SetNullAt marks field i null and zeroes its slot so stale offsets from
// a previous record cannot leak through.
func (r *Row) SetNullAt(i int) {
	idx := i / 64 * 8
	w := binary.LittleEndian.Uint64(r.buf[idx:])
	w |= 1 << (uint(i) % 64)
	binary.LittleEndian.PutUint64(r.buf[idx:], w)
	binary.LittleEndian.PutUint64(r.buf[r.slotOffset(i):], 0)
}

// IsNullAt reports whether field i is null.
func (r *Row) IsNullAt(i int) bool {
	idx := i / 64 * 8
	w := binary.LittleEndian.Uint64(r.buf[idx:])
	return w&(1<<(uint(i)%64)) != 0
}

func (r *Row) clearNullAt(i int) {
	idx := i / 64 * 8
	w := binary.LittleEndian.Uint64(r.buf[idx:])
	w &^= 1 << (uint(i) % 64)
	binary.LittleEndian.PutUint64(r.buf[idx:], w)
}

// SetInt64 writes v into field i's fixed slot.
func (r *Row) SetInt64(i int, v int64) {
	r.clearNullAt(i)
	binary.LittleEndian.PutUint64(r.buf[r.slotOffset(i):], uint64(v))
}

// Int64 reads field i as an int64.
func (r *Row) Int64(i int) int64 {
	return int64(binary.LittleEndian.Uint64(r.buf[r.slotOffset(i):]))
}

// SetFloat64 writes v into field i's fixed slot.
func (r *Row) SetFloat64(i int, v float64) {
	r.clearNullAt(i)
	binary.LittleEndian.PutUint64(r.buf[r.slotOffset(i):], math.Float64bits(v))
}

// Float64 reads field i as a float64.
func (r *Row) Float64(i int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(r.buf[r.slotOffset(i):]))
}

// SetOffsetAndSize records where field i's variable-length payload lives
// within the region. The writer calls this after copying the payload at
// the buffer's cursor.
func (r *Row) SetOffsetAndSize(i, offset, size int) {
	r.clearNullAt(i)
	binary.LittleEndian.PutUint64(r.buf[r.slotOffset(i):], uint64(offset)<<32|uint64(uint32(size)))
}

// RawBytes returns field i's variable-length payload. The slice aliases
// the backing region and is invalidated by the next reallocation.
func (r *Row) RawBytes(i int) []byte {
	v := binary.LittleEndian.Uint64(r.buf[r.slotOffset(i):])
	offset := int(v >> 32)
	size := int(uint32(v))
	return r.buf[offset : offset+size]
}
