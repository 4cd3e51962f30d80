package codec

// RowWriter builds rows one pass at a time: fixed-width values go
// straight into their slots, variable-length values are appended at the
// buffer cursor after growing for exactly the bytes needed. One RowWriter
// serves one writing pipeline; call Reset before each record.
type RowWriter struct {
	row *Row
	buf *RowBuffer
}

// NewRowWriter creates a writer for rows with numFields fields, backed by
// a fresh RowBuffer with initialExtra bytes of variable-region capacity.
func NewRowWriter(numFields, initialExtra int) (*RowWriter, error) {
	row := NewRow(numFields)
	buf, err := NewRowBufferSize(row, numFields, initialExtra)
	if err != nil {
		return nil, err
	}
	return &RowWriter{row: row, buf: buf}, nil
}

// Row returns the view bound to this writer.
func (w *RowWriter) Row() *Row {
	return w.row
}

// Buffer returns the backing RowBuffer.
func (w *RowWriter) Buffer() *RowBuffer {
	return w.buf
}

// Reset prepares the writer for the next record. Field slots keep stale
// values from the previous record until rewritten.
func (w *RowWriter) Reset() {
	w.buf.Reset()
}

// WriteInt64 writes v into field i. Never grows the buffer.
func (w *RowWriter) WriteInt64(i int, v int64) {
	w.row.SetInt64(i, v)
}

// WriteFloat64 writes v into field i. Never grows the buffer.
func (w *RowWriter) WriteFloat64(i int, v float64) {
	w.row.SetFloat64(i, v)
}

// WriteNull marks field i null.
func (w *RowWriter) WriteNull(i int) {
	w.row.SetNullAt(i)
}

// WriteBytes appends b to the variable region and records its location in
// field i's slot. A failed grow aborts the current record; the writer is
// reusable after Reset.
func (w *RowWriter) WriteBytes(i int, b []byte) error {
	if err := w.buf.Grow(len(b)); err != nil {
		return err
	}
	offset := w.buf.Cursor()
	copy(w.buf.Bytes()[offset:], b)
	w.row.SetOffsetAndSize(i, offset, len(b))
	w.buf.AdvanceCursor(len(b))
	return nil
}

// Finish finalizes the record, stamps its total size into the view, and
// returns the encoded payload. The slice aliases the backing region and
// is valid until the next Reset or growing write.
func (w *RowWriter) Finish() []byte {
	w.row.SetTotalSize(w.buf.TotalSize())
	return w.row.Payload()
}
