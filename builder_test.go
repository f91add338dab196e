package avro

import (
	"bytes"
	"testing"

	jtavro "github.com/justtrackio/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildValueReader_Primitives(t *testing.T) {
	schema := jtavro.MustParse(`{
		"type": "record", "name": "r",
		"fields": [
			{"name": "a", "type": "long"},
			{"name": "b", "type": "string"}
		]
	}`)

	var buf bytes.Buffer
	enc := jtavro.NewEncoderForSchema(schema, &buf)
	require.NoError(t, enc.Encode(map[string]any{"a": int64(7), "b": "hi"}))

	d := NewReaderDecoderFromIO(&buf, 256)
	reader, err := BuildValueReader(d, schema)
	require.NoError(t, err)

	got, err := reader.Read(nil)
	require.NoError(t, err)
	rec := got.(*Record)
	assert.Equal(t, int64(7), rec.Values[0])
	assert.Equal(t, "hi", rec.Values[1])
}

func TestBuildValueReader_BytesDecimal(t *testing.T) {
	schema := jtavro.MustParse(`{
		"type": "bytes",
		"logicalType": "decimal",
		"precision": 4,
		"scale": 2
	}`)

	// Unscaled value 1234 (0x04D2, two's complement, big-endian), preceded
	// by its zigzag-varint byte length (2, encoded as 0x04).
	data := []byte{0x04, 0x04, 0xD2}

	d := NewReaderDecoderFromIO(bytes.NewReader(data), 64)
	reader, err := BuildValueReader(d, schema)
	require.NoError(t, err)

	got, err := reader.Read(nil)
	require.NoError(t, err)
	dec := got.(Decimal)
	assert.Equal(t, 2, dec.Scale)
	assert.Equal(t, "1234", dec.Unscaled.String())
}

func TestBuildValueReader_DecimalOnWrongPhysicalTypeFails(t *testing.T) {
	schema := jtavro.MustParse(`{
		"type": "long",
		"logicalType": "decimal",
		"precision": 4,
		"scale": 2
	}`)

	d := NewReaderDecoderFromIO(bytes.NewReader(nil), 64)
	_, err := BuildValueReader(d, schema)
	require.Error(t, err)

	var target *InvalidDecimalEncodingError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "long", target.SchemaType)
}

func TestBuildProjectedStructReader_NestedNullableUnionRecord(t *testing.T) {
	schema := jtavro.MustParse(`{
		"type": "record", "name": "r",
		"fields": [
			{"name": "id", "type": "long", "field-id": 1},
			{"name": "addr", "field-id": 2, "type": ["null", {
				"type": "record", "name": "addr",
				"fields": [
					{"name": "city", "type": "string", "field-id": 3}
				]
			}]}
		]
	}`)
	writer, ok := schema.(*jtavro.RecordSchema)
	require.True(t, ok)

	expected := &StructType{Fields: []ExpectedField{
		{FieldID: 1, Name: "id"},
		{FieldID: 2, Name: "addr", Nested: &StructType{
			Fields: []ExpectedField{{FieldID: 3, Name: "city"}},
		}},
	}}

	t.Run("present", func(t *testing.T) {
		var buf bytes.Buffer
		enc := jtavro.NewEncoderForSchema(schema, &buf)
		require.NoError(t, enc.Encode(map[string]any{
			"id":   int64(1),
			"addr": map[string]any{"addr": map[string]any{"city": "York"}},
		}))

		d := NewReaderDecoderFromIO(&buf, 256)
		reader, err := BuildProjectedStructReader(d, expected, writer, nil, nil)
		require.NoError(t, err)

		got, err := reader.Read(nil)
		require.NoError(t, err)
		rec := got.(*Record)
		assert.Equal(t, int64(1), rec.Values[0])
		nested := rec.Values[1].(*Record)
		assert.Equal(t, "York", nested.Values[0])
	})

	t.Run("null", func(t *testing.T) {
		var buf bytes.Buffer
		enc := jtavro.NewEncoderForSchema(schema, &buf)
		require.NoError(t, enc.Encode(map[string]any{
			"id":   int64(2),
			"addr": nil,
		}))

		d := NewReaderDecoderFromIO(&buf, 256)
		reader, err := BuildProjectedStructReader(d, expected, writer, nil, nil)
		require.NoError(t, err)

		got, err := reader.Read(nil)
		require.NoError(t, err)
		rec := got.(*Record)
		assert.Equal(t, int64(2), rec.Values[0])
		assert.Nil(t, rec.Values[1])
	})
}

func TestBuildProjectedStructReader_DropsField(t *testing.T) {
	schema := jtavro.MustParse(`{
		"type": "record", "name": "r",
		"fields": [
			{"name": "a", "type": "long", "field-id": 1},
			{"name": "b", "type": "string", "field-id": 2}
		]
	}`)
	writer, ok := schema.(*jtavro.RecordSchema)
	require.True(t, ok)

	var buf bytes.Buffer
	enc := jtavro.NewEncoderForSchema(schema, &buf)
	require.NoError(t, enc.Encode(map[string]any{"a": int64(9), "b": "dropped"}))

	d := NewReaderDecoderFromIO(&buf, 256)
	expected := &StructType{Fields: []ExpectedField{{FieldID: 1, Name: "a"}}}
	reader, err := BuildProjectedStructReader(d, expected, writer, nil, nil)
	require.NoError(t, err)

	got, err := reader.Read(nil)
	require.NoError(t, err)
	rec := got.(*Record)
	assert.Equal(t, int64(9), rec.Values[0])
}
