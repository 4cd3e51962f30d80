package codec

import (
	"fmt"
	"math"
)

// MaxBufferSize is the hard upper bound on the backing buffer length.
// It mirrors the largest array size that is safe to request from the
// runtime on every supported platform, leaving headroom for allocator
// rounding.
const MaxBufferSize = math.MaxInt32 - 15

// Errors
var (
	ErrBufferLimit     = &BufferError{"buffer size limit exceeded"}
	ErrInvalidArgument = &BufferError{"invalid argument"}
)

// BufferError represents a row buffer error
type BufferError struct {
	Message string
}

func (e *BufferError) Error() string {
	return e.Message
}

// BitsetWidth returns the number of bytes reserved for the null-tracking
// bitmap of a row with numFields fields, rounded up to whole 64-bit words.
func BitsetWidth(numFields int) int {
	return ((numFields + 63) / 64) * 8
}

// FixedRowSize returns the size in bytes of the fixed-layout portion of a
// row: the null bitmap plus one 8-byte slot per field. It fails when
// numFields or initialExtra is negative, or when the minimum buffer
// (fixed portion plus initialExtra) would exceed MaxBufferSize. The bound
// is checked by division so the arithmetic itself cannot overflow.
func FixedRowSize(numFields, initialExtra int) (int, error) {
	if numFields < 0 {
		return 0, fmt.Errorf("%w: negative field count %d", ErrInvalidArgument, numFields)
	}
	if initialExtra < 0 {
		return 0, fmt.Errorf("%w: negative initial capacity %d", ErrInvalidArgument, initialExtra)
	}
	bitsetWidth := BitsetWidth(numFields)
	if numFields > (MaxBufferSize-initialExtra-bitsetWidth)/8 {
		return 0, fmt.Errorf("%w: too many fields (%d)", ErrBufferLimit, numFields)
	}
	return bitsetWidth + 8*numFields, nil
}

// GrowthTarget returns the buffer length to allocate so that a buffer
// currently holding totalSize used bytes can absorb neededExtra more.
// The target at least doubles the required length so repeated small
// appends amortize to O(1) reallocations, capped at MaxBufferSize.
func GrowthTarget(totalSize, neededExtra int) (int, error) {
	if neededExtra > MaxBufferSize-totalSize {
		return 0, fmt.Errorf("%w: cannot grow by %d bytes, size after growing exceeds %d",
			ErrBufferLimit, neededExtra, MaxBufferSize)
	}
	required := totalSize + neededExtra
	if required >= MaxBufferSize/2 {
		return MaxBufferSize, nil
	}
	return required * 2, nil
}
