package avro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayReader_SingleChunk(t *testing.T) {
	d := &fakeDecoder{
		longs:       []int64{1, 2, 3},
		arrayStarts: []int64{3},
		arrayNexts:  []int64{0},
	}
	r := NewArrayReader(d, NewLongReader(d))

	got, err := r.Read(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, got)
}

func TestArrayReader_MultipleChunks(t *testing.T) {
	d := &fakeDecoder{
		longs:       []int64{1, 2, 3},
		arrayStarts: []int64{2},
		arrayNexts:  []int64{1, 0},
	}
	r := NewArrayReader(d, NewLongReader(d))

	got, err := r.Read(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, got)
}

func TestArrayReader_Empty(t *testing.T) {
	d := &fakeDecoder{arrayStarts: []int64{0}}
	r := NewArrayReader(d, NewLongReader(d))

	got, err := r.Read(nil)
	require.NoError(t, err)
	assert.Len(t, got, 0)
}

func TestArrayReader_ReusesBackingArray(t *testing.T) {
	d := &fakeDecoder{
		longs:       []int64{10, 20},
		arrayStarts: []int64{2},
		arrayNexts:  []int64{0},
	}
	prior := []any{int64(1), int64(2), int64(3), int64(4)}
	r := NewArrayReader(d, NewLongReader(d))

	got, err := r.Read(prior)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(10), int64(20)}, got)

	// The returned slice shares backing storage with prior: growing it back
	// out within capacity must reveal the untouched tail values, proving no
	// fresh allocation happened for indices within the old length.
	grown := got[:4]
	assert.Equal(t, int64(3), grown[2])
	assert.Equal(t, int64(4), grown[3])
}

func TestArrayReader_Skip_SingleChunk(t *testing.T) {
	d := &fakeDecoder{
		longs:      []int64{1, 2, 3},
		skipArrays: [][2]int64{{3, 0}, {0, 0}},
	}
	r := NewArrayReader(d, NewLongReader(d))
	require.NoError(t, r.Skip())
	assert.Equal(t, 3, d.pos.l)
}

func TestArrayReader_Skip_ZeroChunk(t *testing.T) {
	d := &fakeDecoder{skipArrays: [][2]int64{{0, 0}}}
	r := NewArrayReader(d, NewLongReader(d))
	require.NoError(t, r.Skip())
	assert.Equal(t, 0, d.pos.l)
}
