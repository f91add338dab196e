package avro

import jtavro "github.com/justtrackio/avro/v2"

// Reserved metadata field ids: well-known integers that are never assigned
// to a user column. They identify Iceberg's synthesized metadata columns
// across the expected schema and the constant map.
const (
	FieldIDRowPosition               = 2147483645
	FieldIDIsDeleted                 = 2147483644
	FieldIDRowID                     = 2147483540
	FieldIDLastUpdatedSequenceNumber = 2147483539
)

// ExpectedField is one field of an expected (reader-side) StructType: a
// stable field id, a logical type (reusing the underlying Avro library's
// schema representation, since resolution-time promotions are themselves
// Avro-shaped), an optional flag, and a nullable initial default.
type ExpectedField struct {
	FieldID        int
	Name           string
	Type           jtavro.Schema
	Optional       bool
	InitialDefault any // nil if there is no default

	// Nested is set when this field is itself a (possibly-wrapped, e.g.
	// via a nullable union) record, letting the struct-reader builder
	// recurse into a sub-projection instead of decoding the nested record
	// verbatim.
	Nested *StructType
}

// StructType is an ordered list of expected fields — the projection the
// caller wants materialized, independent of what the writer schema
// contains.
type StructType struct {
	Fields []ExpectedField
}

// Pos returns the positional index of the field carrying id within the
// struct, or (-1, false) if no such field is projected.
func (s *StructType) Pos(id int) (int, bool) {
	for i, f := range s.Fields {
		if f.FieldID == id {
			return i, true
		}
	}
	return -1, false
}

// WriterStructField is one field of the writer (physical, on-disk) record
// schema: its Avro schema type plus the field-id property the plan builder
// uses as the sole identity for matching it against an expected field.
type WriterStructField struct {
	avroField jtavro.Field
}

// NewWriterStructField wraps a *justtrackio/avro/v2* record field.
func NewWriterStructField(f jtavro.Field) WriterStructField {
	return WriterStructField{avroField: f}
}

// FieldID reads the field-id Avro field property the plan builder matches
// on, reporting whether the writer field carries one at all (a writer
// field with no field-id property cannot be matched to an expected field
// by id and is only ever reachable as an unprojected physical field).
func (f WriterStructField) FieldID() (int, bool) {
	raw, ok := f.avroField.Prop("field-id")
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func (f WriterStructField) Name() string { return f.avroField.Name() }

// WriterRecordSchema is the ordered list of a writer record's fields,
// paired one-to-one with the per-physical-field readers the plan builder
// consumes as input.
type WriterRecordSchema struct {
	Fields []WriterStructField
}

// NewWriterRecordSchema builds a WriterRecordSchema from a real Avro record
// schema's fields.
func NewWriterRecordSchema(rec *jtavro.RecordSchema) WriterRecordSchema {
	fields := rec.Fields()
	out := make([]WriterStructField, len(fields))
	for i, f := range fields {
		out[i] = NewWriterStructField(f)
	}
	return WriterRecordSchema{Fields: out}
}
