package avro

import (
	"fmt"

	jtavro "github.com/justtrackio/avro/v2"
)

// BuildValueReader compiles a context-free ValueReader for schema: no
// expected-schema projection is applied, so a Record schema compiles to a
// reader that decodes every one of its fields into a *Record built by a
// GenericRecordFactory. This is
// the building block BuildProjectedStructReader uses for every writer
// field whose type does not need (or does not have) a more specific,
// expected-schema-aware nested reader, and is also useful standalone for
// "just decode everything verbatim" use.
func BuildValueReader(d Decoder, schema jtavro.Schema) (ValueReader, error) {
	var logical jtavro.LogicalSchema
	if lts, ok := schema.(jtavro.LogicalTypeSchema); ok {
		logical = lts.Logical()
	}
	if logical != nil && logical.Type() == jtavro.Decimal && schema.Type() != jtavro.Bytes && schema.Type() != jtavro.Fixed {
		return nil, &InvalidDecimalEncodingError{SchemaType: string(schema.Type())}
	}

	switch schema.Type() {
	case jtavro.Boolean:
		return NewBooleanReader(d), nil
	case jtavro.Int:
		return NewIntReader(d), nil
	case jtavro.Long:
		return NewLongReader(d), nil
	case jtavro.Float:
		return NewFloatReader(d), nil
	case jtavro.Double:
		return NewDoubleReader(d), nil
	case jtavro.String:
		return NewStringReader(d), nil
	case jtavro.Bytes:
		if logical != nil && logical.Type() == jtavro.Decimal {
			dec := logical.(*jtavro.DecimalLogicalSchema)
			return NewDecimalReader(d, dec.Scale()), nil
		}
		return NewBytesReader(d), nil
	case jtavro.Fixed:
		fs := schema.(*jtavro.FixedSchema)
		if logical != nil {
			switch logical.Type() {
			case jtavro.Decimal:
				dec := logical.(*jtavro.DecimalLogicalSchema)
				return NewFixedDecimalReader(d, dec.Scale(), fs.Size()), nil
			case jtavro.UUID:
				return NewUUIDReader(d), nil
			}
		}
		return NewFixedReader(d, fs.Size()), nil
	case jtavro.Enum:
		es := schema.(*jtavro.EnumSchema)
		return NewEnumReader(d, es.Symbols()), nil
	case jtavro.Null:
		return NewNullReader(d), nil
	case jtavro.Ref:
		return BuildValueReader(d, schema.(*jtavro.RefSchema).Schema())
	case jtavro.Array:
		as := schema.(*jtavro.ArraySchema)
		elem, err := BuildValueReader(d, as.Items())
		if err != nil {
			return nil, err
		}
		return NewArrayReader(d, elem), nil
	case jtavro.Map:
		ms := schema.(*jtavro.MapSchema)
		val, err := BuildValueReader(d, ms.Values())
		if err != nil {
			return nil, err
		}
		return NewMapReader(d, val), nil
	case jtavro.Union:
		us := schema.(*jtavro.UnionSchema)
		types := us.Types()
		readers := make([]ValueReader, len(types))
		for i, t := range types {
			r, err := BuildValueReader(d, t)
			if err != nil {
				return nil, err
			}
			readers[i] = r
		}
		return NewUnionReader(d, readers), nil
	case jtavro.Record:
		rs := schema.(*jtavro.RecordSchema)
		fields := rs.Fields()
		readers := make([]ValueReader, len(fields))
		structType := &StructType{Fields: make([]ExpectedField, len(fields))}
		for i, f := range fields {
			r, err := BuildValueReader(d, f.Type())
			if err != nil {
				return nil, err
			}
			readers[i] = r
			id, _ := NewWriterStructField(f).FieldID()
			structType.Fields[i] = ExpectedField{FieldID: id, Name: f.Name(), Type: f.Type()}
		}
		return NewPlannedStructReader(NewGenericRecordFactory(structType), identityPlan(readers)), nil
	default:
		return nil, fmt.Errorf("avro: unsupported schema type %v", schema.Type())
	}
}

// identityPlan builds a ReadPlan that projects every reader into its own
// position, in order — used when compiling a fully-verbatim record reader
// with no expected-schema trimming.
func identityPlan(readers []ValueReader) *ReadPlan {
	entries := make([]PlanEntry, len(readers))
	for i, r := range readers {
		pos := i
		entries[i] = PlanEntry{ProjectionPos: &pos, Reader: r}
	}
	return &ReadPlan{Entries: entries}
}

// BuildProjectedStructReader is the main recursive entry point: given an
// expected StructType and the writer's real Avro record schema, it builds
// one reader per writer field (recursing into nested records when the
// corresponding expected field carries a Nested StructType), runs the read
// plan builder, and returns the resulting PlannedStructReader.
func BuildProjectedStructReader(d Decoder, expected *StructType, writer *jtavro.RecordSchema, constants map[int]any, convert DefaultConverter) (*PlannedStructReader, error) {
	wfields := writer.Fields()
	readers := make([]ValueReader, len(wfields))

	idToExpected := make(map[int]*ExpectedField, len(expected.Fields))
	for i := range expected.Fields {
		idToExpected[expected.Fields[i].FieldID] = &expected.Fields[i]
	}

	for i, f := range wfields {
		id, hasID := NewWriterStructField(f).FieldID()
		if hasID {
			if ef, ok := idToExpected[id]; ok && ef.Nested != nil {
				if r, handled, err := buildNestedFieldReader(d, ef.Nested, f.Type(), constants, convert); handled {
					if err != nil {
						return nil, err
					}
					readers[i] = r
					continue
				}
			}
		}
		r, err := BuildValueReader(d, f.Type())
		if err != nil {
			return nil, err
		}
		readers[i] = r
	}

	plan, err := BuildPlan(expected, NewWriterRecordSchema(writer), readers, constants, convert)
	if err != nil {
		return nil, err
	}
	return NewPlannedStructReader(NewGenericRecordFactory(expected), plan), nil
}

// recordSchemaOf unwraps Ref and Union[null, record] shapes down to the
// underlying *RecordSchema, if any.
func recordSchemaOf(schema jtavro.Schema) (*jtavro.RecordSchema, bool) {
	switch s := schema.(type) {
	case *jtavro.RecordSchema:
		return s, true
	case *jtavro.RefSchema:
		return recordSchemaOf(s.Schema())
	case *jtavro.UnionSchema:
		for _, t := range s.Types() {
			if rs, ok := recordSchemaOf(t); ok {
				return rs, true
			}
		}
	}
	return nil, false
}

// buildNestedFieldReader builds the reader for a writer field whose
// expected counterpart projects into a nested StructType. handled is false
// when schema (once Ref-unwrapped) isn't a record and isn't a union
// wrapping one, signaling the caller to fall back to BuildValueReader for
// an ordinary, non-nested field.
//
// A union branch is never skipped past implicitly: each branch gets its
// own reader — the nested struct reader for the record branch, an
// ordinary value reader for every other branch — wired through a
// UnionReader so the branch index byte is read before either is reached.
func buildNestedFieldReader(d Decoder, nested *StructType, schema jtavro.Schema, constants map[int]any, convert DefaultConverter) (ValueReader, bool, error) {
	switch s := schema.(type) {
	case *jtavro.RecordSchema:
		r, err := BuildProjectedStructReader(d, nested, s, constants, convert)
		return r, true, err
	case *jtavro.RefSchema:
		return buildNestedFieldReader(d, nested, s.Schema(), constants, convert)
	case *jtavro.UnionSchema:
		if _, ok := recordSchemaOf(s); !ok {
			return nil, false, nil
		}
		types := s.Types()
		readers := make([]ValueReader, len(types))
		for i, t := range types {
			r, handled, err := buildNestedFieldReader(d, nested, t, constants, convert)
			if err != nil {
				return nil, true, err
			}
			if !handled {
				r, err = BuildValueReader(d, t)
				if err != nil {
					return nil, true, err
				}
			}
			readers[i] = r
		}
		return NewUnionReader(d, readers), true, nil
	default:
		return nil, false, nil
	}
}
