// Package codec implements MimirDB's fixed-layout row format and the
// growable buffer that backs it.
//
// # Row Format
//
// Rows are laid out as a fixed header followed by a variable region:
//
//	[null bitset][8-byte slot x numFields][variable-length payloads]
//
// The bitset holds one null bit per field, rounded up to whole 64-bit
// words. Fixed-width values occupy their slot directly; variable-length
// values store (offset<<32)|size in the slot and their bytes in the
// variable region. All integers are little-endian. The fixed header's
// size depends only on the field count and never changes after
// construction.
//
// # Buffer Management
//
// RowBuffer owns the backing region and is the only component that
// allocates it. Growth at least doubles the required length (capped at
// MaxBufferSize), so a pipeline that writes many records through one
// reused buffer amortizes to zero allocations once the region reaches the
// working-set size. Every reallocation synchronously re-points the bound
// Row via the Repointer contract, so the view never observes a stale
// region.
//
// # Usage
//
// One-pass row writing:
//
//	w, err := codec.NewRowWriter(3, 64)
//	if err != nil {
//	    return err
//	}
//	for _, rec := range records {
//	    w.Reset()
//	    w.WriteInt64(0, rec.ID)
//	    if err := w.WriteBytes(1, rec.Name); err != nil {
//	        return err // row too large, skip this record
//	    }
//	    w.WriteFloat64(2, rec.Score)
//	    payload := w.Finish()
//	    // hand payload to a sink before the next Reset
//	}
//
// # Error Handling
//
// Failures are synchronous and non-retriable for the record in progress:
// ErrBufferLimit when a field count or grow request would push the region
// past MaxBufferSize (or overflow the size arithmetic), ErrInvalidArgument
// for structurally bad inputs such as negative sizes. The buffer itself
// stays usable for the next Reset.
//
// # Thread Safety
//
// A RowBuffer, its Row, and its RowWriter belong to exactly one goroutine
// at a time. Pipelines needing parallelism use one writer per goroutine.
package codec
