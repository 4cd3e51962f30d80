package rowlog

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// FrameHeaderSize is the fixed framing overhead per row:
// CRC32(4) + RowSize(4) + TableID(8).
const FrameHeaderSize = 16

// Frame wraps one finalized row payload for the log.
// Format: [CRC32(4)][RowSize(4)][TableID(8)][Payload], little-endian.
type Frame struct {
	CRC32   uint32 // checksum over RowSize + TableID + Payload
	RowSize uint32 // payload length in bytes
	TableID int64  // table the row belongs to
	Payload []byte // finalized row bytes
}

// EncodeFrame serializes a row payload into the log frame format.
func EncodeFrame(tableID int64, payload []byte) ([]byte, error) {
	if len(payload) > int(^uint32(0)) {
		return nil, fmt.Errorf("row payload too large: %d bytes", len(payload))
	}

	f := Frame{
		RowSize: uint32(len(payload)),
		TableID: tableID,
		Payload: payload,
	}
	f.CRC32 = f.checksum()

	buf := make([]byte, FrameHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(buf[0:], f.CRC32)
	binary.LittleEndian.PutUint32(buf[4:], f.RowSize)
	binary.LittleEndian.PutUint64(buf[8:], uint64(f.TableID))
	copy(buf[FrameHeaderSize:], payload)
	return buf, nil
}

// DecodeFrame deserializes a frame from data. The payload aliases data.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) < FrameHeaderSize {
		return nil, fmt.Errorf("data too short for frame header: %d bytes", len(data))
	}

	f := &Frame{
		CRC32:   binary.LittleEndian.Uint32(data[0:4]),
		RowSize: binary.LittleEndian.Uint32(data[4:8]),
		TableID: int64(binary.LittleEndian.Uint64(data[8:16])),
	}
	if len(data) < FrameHeaderSize+int(f.RowSize) {
		return nil, fmt.Errorf("data too short for row size: %d < %d", len(data), FrameHeaderSize+int(f.RowSize))
	}
	f.Payload = data[FrameHeaderSize : FrameHeaderSize+int(f.RowSize)]
	return f, nil
}

// Validate checks frame integrity against the stored CRC32.
func (f *Frame) Validate() error {
	if f.CRC32 != f.checksum() {
		return ErrCorruption
	}
	return nil
}

// Size returns the encoded frame size in bytes.
func (f *Frame) Size() int {
	return FrameHeaderSize + len(f.Payload)
}

// checksum computes the CRC32 over everything but the CRC field itself.
func (f *Frame) checksum() uint32 {
	crc := crc32.NewIEEE()

	var header [12]byte
	binary.LittleEndian.PutUint32(header[0:], f.RowSize)
	binary.LittleEndian.PutUint64(header[4:], uint64(f.TableID))
	crc.Write(header[:])
	crc.Write(f.Payload)

	return crc.Sum32()
}
