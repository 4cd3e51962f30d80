package rowlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_BuildFromLog(t *testing.T) {
	w, _ := newTestWriter(t)

	wantOffsets := map[int64][]int64{}
	for i := 0; i < 9; i++ {
		tableID := int64(i % 3)
		off, err := w.Append(tableID, []byte{byte(i), byte(i), byte(i)})
		require.NoError(t, err)
		wantOffsets[tableID] = append(wantOffsets[tableID], off)
	}

	r, err := NewReader(ReaderConfig{FilePath: w.Path()})
	require.NoError(t, err)
	defer r.Close()

	idx := NewIndex()
	require.NoError(t, idx.BuildFromLog(r))

	assert.Equal(t, 9, idx.Size())
	assert.Equal(t, []int64{0, 1, 2}, idx.Tables())
	for tableID, want := range wantOffsets {
		assert.Equal(t, want, idx.Offsets(tableID))
	}

	// Offsets resolve back to the right frames.
	for _, off := range idx.Offsets(1) {
		frame, err := r.ReadAt(off)
		require.NoError(t, err)
		assert.Equal(t, int64(1), frame.TableID)
	}

	idx.Clear()
	assert.Equal(t, 0, idx.Size())
	assert.Empty(t, idx.Tables())
}

func TestIndex_UnknownTable(t *testing.T) {
	idx := NewIndex()
	assert.Empty(t, idx.Offsets(42))
}
