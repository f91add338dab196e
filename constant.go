package avro

// ConstantReader always returns a fixed value. Read never touches the
// decoder; Skip is a no-op. Used for logical-only fields that have no
// physical counterpart in the writer schema (an initial default, a
// synthesized IS_DELETED=false, or an externally supplied constant).
type ConstantReader struct{ value any }

func NewConstantReader(value any) *ConstantReader { return &ConstantReader{value: value} }

func (r *ConstantReader) Read(_ any) (any, error) { return r.value, nil }
func (r *ConstantReader) Skip() error             { return nil }

// ReplaceWithConstantReader is used when the file physically contains a
// field the caller wants to override with an external value: the wrapped
// reader still consumes the bytes (keeping the stream aligned), but its
// result is discarded in favor of the constant.
type ReplaceWithConstantReader struct {
	inner ValueReader
	value any
}

func NewReplaceWithConstantReader(inner ValueReader, value any) *ReplaceWithConstantReader {
	return &ReplaceWithConstantReader{inner: inner, value: value}
}

func (r *ReplaceWithConstantReader) Read(reuse any) (any, error) {
	if _, err := r.inner.Read(reuse); err != nil {
		return nil, err
	}
	return r.value, nil
}

func (r *ReplaceWithConstantReader) Skip() error { return r.inner.Skip() }
