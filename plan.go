package avro

import (
	"fmt"

	jtavro "github.com/justtrackio/avro/v2"
)

// DefaultConverter materializes a raw Avro default value (as decoded from
// JSON schema text by the schema parser) into the runtime value a
// ConstantReader should return. BuildPlan accepts nil to mean "use the raw
// default value verbatim"; most callers who only ever default primitives
// (strings, numbers, booleans, null) can pass nil.
type DefaultConverter func(t jtavro.Schema, rawDefault any) (any, error)

// BuildPlan is the read-plan builder: given an expected
// StructType, the writer record's field list, one reader per writer
// field (parallel to writer.Fields), and a constant map, it produces the
// ordered list of (projection position, reader) pairs the planned struct
// reader walks to decode one row.
//
// convert may be nil, in which case an expected field's InitialDefault is
// used as the constant verbatim.
func BuildPlan(expected *StructType, writer WriterRecordSchema, readers []ValueReader, constants map[int]any, convert DefaultConverter) (*ReadPlan, error) {
	if len(readers) != len(writer.Fields) {
		return nil, fmt.Errorf("avro: plan builder: got %d readers for %d writer fields", len(readers), len(writer.Fields))
	}

	idToPos := make(map[int]int, len(expected.Fields))
	for i, f := range expected.Fields {
		idToPos[f.FieldID] = i
	}
	handled := make(map[int]bool, len(writer.Fields))

	var entries []PlanEntry

	// Step 2: every physical writer field must be consumed exactly once,
	// whether or not it ends up projected.
	for i, wf := range writer.Fields {
		reader := readers[i]

		id, hasID := wf.FieldID()
		if !hasID {
			entries = append(entries, PlanEntry{ProjectionPos: nil, Reader: reader})
			continue
		}
		handled[id] = true

		pos, projected := idToPos[id]
		var projPos *int
		if projected {
			p := pos
			projPos = &p
		}

		switch id {
		case FieldIDRowID:
			if baseRowID, ok := asInt64(constants[FieldIDRowID]); ok {
				entries = append(entries, PlanEntry{ProjectionPos: projPos, Reader: NewRowIdReader(reader, baseRowID)})
			} else if projected {
				entries = append(entries, PlanEntry{ProjectionPos: projPos, Reader: NewReplaceWithConstantReader(reader, nil)})
			} else {
				entries = append(entries, PlanEntry{ProjectionPos: nil, Reader: reader})
			}

		case FieldIDLastUpdatedSequenceNumber:
			baseRowID, hasBase := asInt64(constants[FieldIDRowID])
			fileSeq, hasSeq := asInt64(constants[FieldIDLastUpdatedSequenceNumber])
			if hasBase && hasSeq {
				entries = append(entries, PlanEntry{ProjectionPos: projPos, Reader: NewLastUpdatedSeqReader(reader, baseRowID, fileSeq)})
			} else if projected {
				entries = append(entries, PlanEntry{ProjectionPos: projPos, Reader: NewReplaceWithConstantReader(reader, nil)})
			} else {
				entries = append(entries, PlanEntry{ProjectionPos: nil, Reader: reader})
			}

		default:
			if projected {
				if c, ok := constants[id]; ok {
					entries = append(entries, PlanEntry{ProjectionPos: projPos, Reader: NewReplaceWithConstantReader(reader, c)})
					continue
				}
			}
			entries = append(entries, PlanEntry{ProjectionPos: projPos, Reader: reader})
		}
	}

	// Step 3: expected fields with no writer-schema counterpart.
	for i, f := range expected.Fields {
		if handled[f.FieldID] {
			continue
		}
		pos := i

		if c, ok := constants[f.FieldID]; ok {
			entries = append(entries, PlanEntry{ProjectionPos: &pos, Reader: NewConstantReader(c)})
			continue
		}

		if f.InitialDefault != nil {
			val := f.InitialDefault
			if convert != nil {
				v, err := convert(f.Type, f.InitialDefault)
				if err != nil {
					return nil, err
				}
				val = v
			}
			entries = append(entries, PlanEntry{ProjectionPos: &pos, Reader: NewConstantReader(val)})
			continue
		}

		switch f.FieldID {
		case FieldIDIsDeleted:
			entries = append(entries, PlanEntry{ProjectionPos: &pos, Reader: NewConstantReader(false)})
			continue
		case FieldIDRowPosition:
			entries = append(entries, PlanEntry{ProjectionPos: &pos, Reader: NewPositionReader()})
			continue
		}

		if f.Optional {
			entries = append(entries, PlanEntry{ProjectionPos: &pos, Reader: NewConstantReader(nil)})
			continue
		}

		return nil, &MissingRequiredFieldError{FieldName: f.Name, FieldID: f.FieldID}
	}

	return &ReadPlan{Entries: entries}, nil
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
