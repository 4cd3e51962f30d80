package codec

import (
	"bytes"
	"testing"
)

func TestRow_FixedSlots(t *testing.T) {
	row := NewRow(3)
	if _, err := NewRowBuffer(row, 3); err != nil {
		t.Fatalf("NewRowBuffer failed: %v", err)
	}

	row.SetInt64(0, -42)
	row.SetFloat64(1, 3.5)
	row.SetNullAt(2)

	if got := row.Int64(0); got != -42 {
		t.Errorf("Int64(0) = %d, want -42", got)
	}
	if got := row.Float64(1); got != 3.5 {
		t.Errorf("Float64(1) = %v, want 3.5", got)
	}
	if !row.IsNullAt(2) {
		t.Error("IsNullAt(2) = false, want true")
	}
	if row.IsNullAt(0) || row.IsNullAt(1) {
		t.Error("written fields reported as null")
	}

	// Writing a value clears a previously set null bit.
	row.SetInt64(2, 7)
	if row.IsNullAt(2) {
		t.Error("IsNullAt(2) = true after SetInt64")
	}
	if got := row.Int64(2); got != 7 {
		t.Errorf("Int64(2) = %d, want 7", got)
	}
}

func TestRow_NullBitsAcrossWords(t *testing.T) {
	// 70 fields spans two bitset words.
	row := NewRow(70)
	if _, err := NewRowBuffer(row, 70); err != nil {
		t.Fatalf("NewRowBuffer failed: %v", err)
	}

	for _, i := range []int{0, 63, 64, 69} {
		row.SetNullAt(i)
		if !row.IsNullAt(i) {
			t.Errorf("IsNullAt(%d) = false after SetNullAt", i)
		}
	}
	for _, i := range []int{1, 62, 65, 68} {
		if row.IsNullAt(i) {
			t.Errorf("IsNullAt(%d) = true, never set", i)
		}
	}
}

func TestRow_RepointPreservesFixedSlotReads(t *testing.T) {
	row := NewRow(2)
	buf, err := NewRowBufferSize(row, 2, 4)
	if err != nil {
		t.Fatalf("NewRowBufferSize failed: %v", err)
	}

	row.SetInt64(0, 1234567890123)
	row.SetInt64(1, -9)

	oldLen := row.BufferLen()
	if err := buf.Grow(4096); err != nil {
		t.Fatalf("Grow failed: %v", err)
	}

	if row.BufferLen() == oldLen {
		t.Fatal("view length unchanged after reallocation")
	}
	if row.BufferLen() != len(buf.Bytes()) {
		t.Errorf("view length = %d, want %d", row.BufferLen(), len(buf.Bytes()))
	}

	// Fixed-slot offsets keep their meaning across repoints.
	if got := row.Int64(0); got != 1234567890123 {
		t.Errorf("Int64(0) = %d after repoint, want 1234567890123", got)
	}
	if got := row.Int64(1); got != -9 {
		t.Errorf("Int64(1) = %d after repoint, want -9", got)
	}
}

func TestRow_VariableLengthRoundTrip(t *testing.T) {
	row := NewRow(2)
	buf, err := NewRowBufferSize(row, 2, 4)
	if err != nil {
		t.Fatalf("NewRowBufferSize failed: %v", err)
	}

	payload := []byte("variable-length payload that forces a grow")
	if err := buf.Grow(len(payload)); err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	offset := buf.Cursor()
	copy(buf.Bytes()[offset:], payload)
	row.SetOffsetAndSize(1, offset, len(payload))
	buf.AdvanceCursor(len(payload))

	if !bytes.Equal(row.RawBytes(1), payload) {
		t.Errorf("RawBytes(1) = %q, want %q", row.RawBytes(1), payload)
	}

	row.SetTotalSize(buf.TotalSize())
	if row.Size() != buf.TotalSize() {
		t.Errorf("Size = %d, want %d", row.Size(), buf.TotalSize())
	}
	if len(row.Payload()) != buf.TotalSize() {
		t.Errorf("Payload length = %d, want %d", len(row.Payload()), buf.TotalSize())
	}
}
