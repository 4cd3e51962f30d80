package codec

import "fmt"

// DefaultInitialExtra is the variable-region capacity reserved beyond the
// fixed row header when a RowBuffer is constructed without an explicit size.
const DefaultInitialExtra = 64

// Repointer is the contract between a RowBuffer and its dependent row
// view. The buffer calls Repoint every time the backing region is
// reallocated; the slice carries both the new base and the new length.
// Implementations must not retain a reference to any previously supplied
// region. Offsets within the fixed header keep the same meaning across
// repoints because the header layout never changes after construction.
type Repointer interface {
	Repoint(buf []byte)
}

// RowBuffer manages the growable data buffer backing a single row view.
// The buffer can grow on demand and automatically re-points the bound
// view at the new region, so row data is written in one pass with no
// extra copies.
//
// There should be one RowBuffer per writing pipeline, reused across
// records via Reset, so the backing region stabilizes at the working-set
// size and steady-state writing allocates nothing. Exactly one goroutine
// may use a RowBuffer at a time.
//
// After writing a record, callers finalize it by passing TotalSize to the
// view's size field. That step can be skipped when every field is
// fixed-length, since the row size is then constant.
type RowBuffer struct {
	buf       []byte
	cursor    int // end of written data; TotalSize == cursor
	fixedSize int
	view      Repointer
	allocs    int // backing region allocations, observable in tests
}

// NewRowBuffer constructs a RowBuffer bound to view with the default
// initial variable-region capacity.
func NewRowBuffer(view Repointer, numFields int) (*RowBuffer, error) {
	return NewRowBufferSize(view, numFields, DefaultInitialExtra)
}

// NewRowBufferSize constructs a RowBuffer bound to view, reserving the
// full fixed header for numFields fields plus initialExtra bytes of
// variable-region capacity. The view is left pointing at zeroed
// fixed-header space.
func NewRowBufferSize(view Repointer, numFields, initialExtra int) (*RowBuffer, error) {
	fixedSize, err := FixedRowSize(numFields, initialExtra)
	if err != nil {
		return nil, err
	}
	b := &RowBuffer{
		buf:       make([]byte, fixedSize+initialExtra),
		cursor:    fixedSize,
		fixedSize: fixedSize,
		view:      view,
	}
	b.allocs++
	b.view.Repoint(b.buf)
	return b, nil
}

// Grow ensures the buffer can hold neededExtra more bytes beyond the
// current total size, reallocating and re-pointing the view if required.
// On failure the buffer and cursor are unchanged. Writers call Grow
// before writing each variable-length field, sized to that field's exact
// byte requirement; fixed-length fields never need it because the initial
// allocation always reserves the full fixed header.
func (b *RowBuffer) Grow(neededExtra int) error {
	if neededExtra < 0 {
		return fmt.Errorf("%w: negative grow size %d", ErrInvalidArgument, neededExtra)
	}
	target, err := GrowthTarget(b.cursor, neededExtra)
	if err != nil {
		return err
	}
	if len(b.buf) >= b.cursor+neededExtra {
		// Common case once the buffer is warm: capacity is already there.
		return nil
	}
	tmp := make([]byte, target)
	b.allocs++
	copy(tmp, b.buf[:b.cursor])
	b.buf = tmp
	b.view.Repoint(b.buf)
	return nil
}

// Reset rewinds the cursor to the end of the fixed header so the buffer
// can take the next record. The region contents are left untouched: bytes
// beyond the cursor keep stale data from the previous record, and callers
// must not read anything they have not rewritten.
func (b *RowBuffer) Reset() {
	b.cursor = b.fixedSize
}

// TotalSize returns the number of bytes currently written: the fixed
// header plus all variable-length data of the record in progress.
func (b *RowBuffer) TotalSize() int {
	return b.cursor
}

// Cursor returns the offset of the end of written data. Variable-length
// payloads are written starting here.
func (b *RowBuffer) Cursor() int {
	return b.cursor
}

// AdvanceCursor moves the cursor forward by n bytes. Advancing is the
// writer's job, not the buffer's, because only the writer knows how many
// bytes it produced at the cursor.
func (b *RowBuffer) AdvanceCursor(n int) {
	b.cursor += n
}

// Bytes returns the current backing region. The slice is invalidated by
// the next Grow that reallocates; writers must not hold it across calls.
func (b *RowBuffer) Bytes() []byte {
	return b.buf
}

// FixedSize returns the byte width of the fixed header.
func (b *RowBuffer) FixedSize() int {
	return b.fixedSize
}

// Allocations returns how many backing regions have been allocated over
// the buffer's lifetime, including the initial one.
func (b *RowBuffer) Allocations() int {
	return b.allocs
}
