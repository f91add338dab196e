package avro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlannedStructReader_ProjectsSubset(t *testing.T) {
	d := &fakeDecoder{longs: []int64{1}, strings: []string{"ignored"}}
	schema := &StructType{Fields: []ExpectedField{{FieldID: 1, Name: "a"}}}
	projected := 0
	plan := &ReadPlan{Entries: []PlanEntry{
		{ProjectionPos: &projected, Reader: NewLongReader(d)},
		{ProjectionPos: nil, Reader: NewStringReader(d)},
	}}
	r := NewPlannedStructReader(NewGenericRecordFactory(schema), plan)

	got, err := r.Read(nil)
	require.NoError(t, err)
	rec := got.(*Record)
	assert.Equal(t, int64(1), rec.Values[0])
	assert.Equal(t, 1, d.pos.s)
}

func TestPlannedStructReader_Skip(t *testing.T) {
	d := &fakeDecoder{longs: []int64{1}, strings: []string{"x"}}
	projected := 0
	plan := &ReadPlan{Entries: []PlanEntry{
		{ProjectionPos: &projected, Reader: NewLongReader(d)},
		{ProjectionPos: nil, Reader: NewStringReader(d)},
	}}
	r := NewPlannedStructReader(NewGenericRecordFactory(&StructType{Fields: []ExpectedField{{FieldID: 1}}}), plan)

	require.NoError(t, r.Skip())
	assert.Equal(t, 1, d.pos.l)
	assert.Equal(t, 1, d.pos.s)
}

func TestPlannedStructReader_PropagatesRowPositionSupplier(t *testing.T) {
	pr := NewPositionReader()
	projected := 0
	plan := &ReadPlan{Entries: []PlanEntry{{ProjectionPos: &projected, Reader: pr}}}
	r := NewPlannedStructReader(NewGenericRecordFactory(&StructType{Fields: []ExpectedField{{FieldID: 1}}}), plan)

	r.SetRowPositionSupplier(func() int64 { return 42 })

	got, err := r.Read(nil)
	require.NoError(t, err)
	rec := got.(*Record)
	assert.Equal(t, int64(42), rec.Values[0])
}
