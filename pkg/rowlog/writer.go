package rowlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/segmentio/ksuid"
)

// ActiveSegment is the name of the segment currently taking appends.
const ActiveSegment = "active.rows"

// Writer appends framed rows to the active segment of a row log
// directory. Appends are buffered; durability follows the configured
// fsync interval (zero means sync on every append).
type Writer struct {
	file       *os.File
	writer     *bufio.Writer
	fsyncTimer *time.Timer
	config     WriterConfig
	metrics    *Metrics
	mutex      sync.Mutex
	offset     int64
	closed     bool
}

// NewWriter opens (or creates) the active segment in config.Dir for
// appending. metrics may be nil.
func NewWriter(config WriterConfig, metrics *Metrics) (*Writer, error) {
	if err := os.MkdirAll(config.Dir, 0750); err != nil {
		return nil, err
	}

	file, err := openSegment(filepath.Join(config.Dir, ActiveSegment))
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	if config.BufferSize <= 0 {
		config.BufferSize = 64 * 1024
	}

	w := &Writer{
		file:    file,
		writer:  bufio.NewWriterSize(file, config.BufferSize),
		config:  config,
		metrics: metrics,
		offset:  stat.Size(),
	}

	if config.FsyncInterval > 0 {
		w.fsyncTimer = time.AfterFunc(config.FsyncInterval, func() {
			w.mutex.Lock()
			defer w.mutex.Unlock()
			w.sync() // Ignore error in timer callback
		})
	}

	return w, nil
}

func openSegment(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	if _, err := file.Seek(0, 2); err != nil {
		file.Close()
		return nil, err
	}
	return file, nil
}

// Append frames payload for tableID and writes it to the active segment,
// returning the offset the frame starts at.
func (w *Writer) Append(tableID int64, payload []byte) (int64, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.closed {
		return 0, ErrClosed
	}

	data, err := EncodeFrame(tableID, payload)
	if err != nil {
		return 0, err
	}

	n, err := w.writer.Write(data)
	if err != nil {
		return 0, err
	}

	frameOffset := w.offset
	w.offset += int64(n)

	if w.config.FsyncInterval == 0 {
		if err := w.sync(); err != nil {
			return 0, err
		}
	} else if w.fsyncTimer != nil {
		w.fsyncTimer.Reset(w.config.FsyncInterval)
	}

	if w.metrics != nil {
		w.metrics.RecordAppend(len(data))
	}

	return frameOffset, nil
}

// Rotate seals the active segment under a fresh ksuid name and starts a
// new empty active segment. It returns the sealed segment's path.
func (w *Writer) Rotate() (string, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.closed {
		return "", ErrClosed
	}

	if err := w.sync(); err != nil {
		return "", err
	}
	if err := w.file.Close(); err != nil {
		return "", err
	}

	active := filepath.Join(w.config.Dir, ActiveSegment)
	sealed := filepath.Join(w.config.Dir, ksuid.New().String()+".rows")
	if err := os.Rename(active, sealed); err != nil {
		return "", fmt.Errorf("failed to seal segment: %w", err)
	}

	file, err := openSegment(active)
	if err != nil {
		return "", err
	}
	w.file = file
	w.writer = bufio.NewWriterSize(file, w.config.BufferSize)
	w.offset = 0

	if w.metrics != nil {
		w.metrics.RecordRotation()
	}

	return sealed, nil
}

// Sync forces buffered frames to disk.
func (w *Writer) Sync() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.closed {
		return ErrClosed
	}
	return w.sync()
}

func (w *Writer) sync() error {
	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.file.Sync()
}

// Close flushes and closes the writer.
func (w *Writer) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.fsyncTimer != nil {
		w.fsyncTimer.Stop()
	}

	if err := w.sync(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// Size returns the byte size of the active segment.
func (w *Writer) Size() int64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.offset
}

// Path returns the active segment path.
func (w *Writer) Path() string {
	return filepath.Join(w.config.Dir, ActiveSegment)
}
