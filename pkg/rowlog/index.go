package rowlog

import (
	"io"
	"sort"
	"sync"
)

// Index maps table identifiers to the offsets of their frames within a
// segment, so a table's rows can be fetched with ReadAt instead of a full
// scan.
type Index struct {
	offsets map[int64][]int64
	frames  int
	mutex   sync.RWMutex
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		offsets: make(map[int64][]int64),
	}
}

// BuildFromLog populates the index by scanning every frame the reader has
// left. A clean EOF ends the scan; corruption is surfaced to the caller.
func (ix *Index) BuildFromLog(r *Reader) error {
	for {
		offset := r.Offset()
		frame, err := r.ReadNext()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		ix.Add(frame.TableID, offset)
	}
}

// Add records that a frame for tableID starts at offset.
func (ix *Index) Add(tableID, offset int64) {
	ix.mutex.Lock()
	defer ix.mutex.Unlock()

	ix.offsets[tableID] = append(ix.offsets[tableID], offset)
	ix.frames++
}

// Offsets returns the frame offsets recorded for tableID, in append
// order.
func (ix *Index) Offsets(tableID int64) []int64 {
	ix.mutex.RLock()
	defer ix.mutex.RUnlock()

	offsets := make([]int64, len(ix.offsets[tableID]))
	copy(offsets, ix.offsets[tableID])
	return offsets
}

// Tables returns the indexed table identifiers, sorted.
func (ix *Index) Tables() []int64 {
	ix.mutex.RLock()
	defer ix.mutex.RUnlock()

	tables := make([]int64, 0, len(ix.offsets))
	for id := range ix.offsets {
		tables = append(tables, id)
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i] < tables[j] })
	return tables
}

// Size returns the total number of indexed frames.
func (ix *Index) Size() int {
	ix.mutex.RLock()
	defer ix.mutex.RUnlock()

	return ix.frames
}

// Clear removes all entries from the index.
func (ix *Index) Clear() {
	ix.mutex.Lock()
	defer ix.mutex.Unlock()

	ix.offsets = make(map[int64][]int64)
	ix.frames = 0
}
