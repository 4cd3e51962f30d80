package rowlog

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
)

// Reader provides sequential and offset access to frames in a segment.
type Reader struct {
	file   *os.File
	reader *bufio.Reader
	offset int64
	config ReaderConfig
}

// NewReader opens the segment at config.FilePath for reading, starting at
// config.StartOffset.
func NewReader(config ReaderConfig) (*Reader, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, err
	}

	if config.StartOffset > 0 {
		if _, err := file.Seek(config.StartOffset, 0); err != nil {
			file.Close()
			return nil, err
		}
	}

	return &Reader{
		file:   file,
		reader: bufio.NewReader(file),
		offset: config.StartOffset,
		config: config,
	}, nil
}

// ReadNext reads and validates the frame at the current offset. io.EOF
// marks a clean end of segment; a frame cut off mid-write surfaces as
// ErrCorruption.
func (r *Reader) ReadNext() (*Frame, error) {
	header := make([]byte, FrameHeaderSize)
	n, err := io.ReadFull(r.reader, header)
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return nil, ErrCorruption
		}
		return nil, err
	}
	r.offset += int64(n)

	rowSize := int(binary.LittleEndian.Uint32(header[4:8]))

	full := make([]byte, FrameHeaderSize+rowSize)
	copy(full, header)
	if rowSize > 0 {
		n, err = io.ReadFull(r.reader, full[FrameHeaderSize:])
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrCorruption
			}
			return nil, err
		}
		r.offset += int64(n)
	}

	frame, err := DecodeFrame(full)
	if err != nil {
		return nil, err
	}
	if err := frame.Validate(); err != nil {
		return nil, err
	}
	return frame, nil
}

// ReadAt reads and validates the frame starting at offset. The read is
// independent of the sequential cursor.
func (r *Reader) ReadAt(offset int64) (*Frame, error) {
	header := make([]byte, FrameHeaderSize)
	if _, err := r.file.ReadAt(header, offset); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrCorruption
		}
		return nil, err
	}

	rowSize := int(binary.LittleEndian.Uint32(header[4:8]))

	full := make([]byte, FrameHeaderSize+rowSize)
	copy(full, header)
	if rowSize > 0 {
		if _, err := r.file.ReadAt(full[FrameHeaderSize:], offset+FrameHeaderSize); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrCorruption
			}
			return nil, err
		}
	}

	frame, err := DecodeFrame(full)
	if err != nil {
		return nil, err
	}
	if err := frame.Validate(); err != nil {
		return nil, err
	}
	return frame, nil
}

// Seek sets the sequential read offset.
func (r *Reader) Seek(offset int64) error {
	if _, err := r.file.Seek(offset, 0); err != nil {
		return err
	}

	r.reader = bufio.NewReader(r.file) // Recreate reader to clear buffer
	r.offset = offset
	return nil
}

// Offset returns the current sequential read offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Iterator returns a streaming iterator over the remaining frames.
func (r *Reader) Iterator() FrameIterator {
	return &frameIterator{reader: r}
}

// Close closes the reader.
func (r *Reader) Close() error {
	return r.file.Close()
}

type frameIterator struct {
	reader *Reader
	frame  *Frame
	err    error
}

func (it *frameIterator) Next() bool {
	it.frame, it.err = it.reader.ReadNext()
	return it.err == nil
}

func (it *frameIterator) Frame() *Frame {
	return it.frame
}

func (it *frameIterator) Close() error {
	// The underlying reader is owned by the caller.
	return nil
}
