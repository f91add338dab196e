package avro

import (
	"github.com/ettle/strcase"
	"github.com/mitchellh/mapstructure"
)

// RecordFactory is the reuse-or-create hook both struct reader flavors
// share: a factory paired with positional get/set accessors. The core
// does not prescribe a single record representation — GenericRecordFactory
// and IndexedRecordFactory are the two concrete specializations it ships.
type RecordFactory interface {
	// Create returns a record instance, reusing reuse when its runtime
	// shape matches (falling back to a fresh allocation otherwise).
	Create(reuse any) any
	Get(rec any, pos int) any
	Set(rec any, pos int, val any)
}

// Record is a generic, schema-shaped record: a fixed-length slot array
// keyed purely by position, with the StructType retained for introspection
// (field names, DecodeInto).
type Record struct {
	Schema *StructType
	Values []any
}

// GenericRecordFactory produces *Record instances sized to schema.
type GenericRecordFactory struct {
	Schema *StructType
}

func NewGenericRecordFactory(schema *StructType) *GenericRecordFactory {
	return &GenericRecordFactory{Schema: schema}
}

func (f *GenericRecordFactory) Create(reuse any) any {
	if r, ok := reuse.(*Record); ok && r != nil && len(r.Values) == len(f.Schema.Fields) {
		return r
	}
	return &Record{Schema: f.Schema, Values: make([]any, len(f.Schema.Fields))}
}

func (f *GenericRecordFactory) Get(rec any, pos int) any { return rec.(*Record).Values[pos] }

func (f *GenericRecordFactory) Set(rec any, pos int, val any) { rec.(*Record).Values[pos] = val }

var _ RecordFactory = (*GenericRecordFactory)(nil)

// AsMap renders a *Record as a map[string]any keyed by field name, the
// shape DecodeInto and mapstructure expect.
func (r *Record) AsMap() map[string]any {
	out := make(map[string]any, len(r.Values))
	for i, f := range r.Schema.Fields {
		out[f.Name] = r.Values[i]
	}
	return out
}

// IndexedRecordFactory is a non-reflective replacement for a reflective
// "new instance from schema, or no-arg constructor" indexed-record reader:
// an explicit factory function supplied at construction time, with no
// runtime reflection anywhere in this package. NewFunc builds a fresh
// instance; MatchFunc (optional) reports whether a reuse candidate's runtime
// shape is compatible — when MatchFunc is nil, any non-nil reuse is accepted.
type IndexedRecordFactory struct {
	NewFunc   func() any
	GetFunc   func(rec any, pos int) any
	SetFunc   func(rec any, pos int, val any)
	MatchFunc func(reuse any) bool
}

func (f *IndexedRecordFactory) Create(reuse any) any {
	if reuse != nil && (f.MatchFunc == nil || f.MatchFunc(reuse)) {
		return reuse
	}
	return f.NewFunc()
}

func (f *IndexedRecordFactory) Get(rec any, pos int) any    { return f.GetFunc(rec, pos) }
func (f *IndexedRecordFactory) Set(rec any, pos int, v any) { f.SetFunc(rec, pos, v) }

var _ RecordFactory = (*IndexedRecordFactory)(nil)

// DecodeInto is the library-backed fallback indexed-record strategy for
// callers who do not supply an explicit IndexedRecordFactory: it turns a
// decoded *Record into an arbitrary Go struct via mapstructure, matching
// Avro's snake_case field names against the target's exported PascalCase
// fields the same way the decoding engine's own reflection-based struct
// codec normalizes field names.
func DecodeInto(rec *Record, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		MatchName: func(mapKey, fieldName string) bool {
			return strcase.ToGoPascal(mapKey) == fieldName || mapKey == fieldName
		},
	})
	if err != nil {
		return err
	}
	return dec.Decode(rec.AsMap())
}
