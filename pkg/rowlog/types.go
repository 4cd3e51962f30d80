package rowlog

import "time"

// WriterConfig holds configuration for the row log writer
type WriterConfig struct {
	Dir           string        // Directory for log segments
	FsyncInterval time.Duration // How often to fsync (0 = every append)
	BufferSize    int           // Write buffer size
}

// ReaderConfig holds configuration for the row log reader
type ReaderConfig struct {
	FilePath    string // Path to the segment file
	StartOffset int64  // Offset to start reading from
}

// FrameIterator provides streaming access to frames
type FrameIterator interface {
	Next() bool
	Frame() *Frame
	Close() error
}

// Errors
var (
	ErrCorruption = &LogError{"row log corruption detected"}
	ErrClosed     = &LogError{"row log is closed"}
)

// LogError represents a row log error
type LogError struct {
	Message string
}

func (e *LogError) Error() string {
	return e.Message
}
