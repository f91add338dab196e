package avro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructReader_PhysicalOrder(t *testing.T) {
	d := &fakeDecoder{longs: []int64{1}, strings: []string{"a"}}
	schema := &StructType{Fields: []ExpectedField{
		{FieldID: 1, Name: "a"},
		{FieldID: 2, Name: "b"},
	}}
	fields := []structField{
		{ExpectedPos: 0, Reader: NewLongReader(d)},
		{ExpectedPos: 1, Reader: NewStringReader(d)},
	}
	r := NewStructReader(d, NewGenericRecordFactory(schema), fields, nil, -1)

	got, err := r.Read(nil)
	require.NoError(t, err)
	rec := got.(*Record)
	assert.Equal(t, int64(1), rec.Values[0])
	assert.Equal(t, "a", rec.Values[1])
}

func TestStructReader_SkipsUnprojectedField(t *testing.T) {
	d := &fakeDecoder{longs: []int64{1, 2}, strings: []string{"keep"}}
	schema := &StructType{Fields: []ExpectedField{{FieldID: 2, Name: "b"}}}
	fields := []structField{
		{ExpectedPos: -1, Reader: NewLongReader(d)}, // not projected
		{ExpectedPos: -1, Reader: NewLongReader(d)}, // not projected
		{ExpectedPos: 0, Reader: NewStringReader(d)},
	}
	r := NewStructReader(d, NewGenericRecordFactory(schema), fields, nil, -1)

	got, err := r.Read(nil)
	require.NoError(t, err)
	rec := got.(*Record)
	assert.Equal(t, "keep", rec.Values[0])
	assert.Equal(t, 2, d.pos.l)
}

func TestStructReader_ConstantWinsOverPhysicalValue(t *testing.T) {
	d := &fakeDecoder{longs: []int64{1}}
	schema := &StructType{Fields: []ExpectedField{{FieldID: 1, Name: "a"}}}
	fields := []structField{{ExpectedPos: 0, Reader: NewLongReader(d)}}
	r := NewStructReader(d, NewGenericRecordFactory(schema), fields, map[int]any{0: int64(999)}, -1)

	got, err := r.Read(nil)
	require.NoError(t, err)
	rec := got.(*Record)
	assert.Equal(t, int64(999), rec.Values[0])
}

func TestStructReader_Skip(t *testing.T) {
	d := &fakeDecoder{longs: []int64{1, 2}, strings: []string{"x"}}
	schema := &StructType{Fields: []ExpectedField{{FieldID: 1, Name: "a"}}}
	fields := []structField{
		{ExpectedPos: 0, Reader: NewLongReader(d)},
		{ExpectedPos: -1, Reader: NewLongReader(d)},
		{ExpectedPos: -1, Reader: NewStringReader(d)},
	}
	r := NewStructReader(d, NewGenericRecordFactory(schema), fields, nil, -1)

	require.NoError(t, r.Skip())
	assert.Equal(t, 2, d.pos.l)
	assert.Equal(t, 1, d.pos.s)
}

func TestSkipStructReader(t *testing.T) {
	d := &fakeDecoder{longs: []int64{1}, strings: []string{"a"}}
	r := NewSkipStructReader([]ValueReader{NewLongReader(d), NewStringReader(d)})

	got, err := r.Read(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, d.pos.l)
	assert.Equal(t, 1, d.pos.s)
}
