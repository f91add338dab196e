package avro

// structField is one physical field of the writer record, as seen by the
// unplanned StructReader: its reader, and the slot it should be written to
// in the output record (-1 meaning "present in the file, not projected —
// decode to keep the stream aligned, then discard").
type structField struct {
	ExpectedPos int
	Reader      ValueReader
}

// StructReader decodes a record field-by-field in either physical order or
// — when the decoder is a ResolvingDecoder — the order it reports via
// ReadFieldOrder, then overwrites any constant-bearing slots. This is the
// legacy flavor kept for resolving decoders: new code should prefer
// PlannedStructReader, which needs no resolving decoder.
type StructReader struct {
	decoder    Decoder
	factory    RecordFactory
	fields     []structField // indexed by physical (writer) position
	constants  map[int]any   // ExpectedPos -> value, applied after every field is read
	rowPosSlot int           // physical index into fields whose field carries ROW_POSITION, or -1
}

func NewStructReader(decoder Decoder, factory RecordFactory, fields []structField, constants map[int]any, rowPosSlot int) *StructReader {
	return &StructReader{decoder: decoder, factory: factory, fields: fields, constants: constants, rowPosSlot: rowPosSlot}
}

func (r *StructReader) fieldOrder() ([]int, error) {
	if rd, ok := r.decoder.(ResolvingDecoder); ok {
		order, err := rd.ReadFieldOrder()
		if err != nil {
			return nil, err
		}
		if order != nil {
			out := make([]int, len(order))
			for i, wf := range order {
				out[i] = wf.Pos
			}
			return out, nil
		}
	}
	out := make([]int, len(r.fields))
	for i := range out {
		out[i] = i
	}
	return out, nil
}

func (r *StructReader) Read(reuse any) (any, error) {
	rec := r.factory.Create(reuse)

	order, err := r.fieldOrder()
	if err != nil {
		return nil, err
	}
	for _, physPos := range order {
		f := r.fields[physPos]
		if f.ExpectedPos < 0 {
			if err := f.Reader.Skip(); err != nil {
				return nil, err
			}
			continue
		}
		reuseVal := r.factory.Get(rec, f.ExpectedPos)
		v, err := f.Reader.Read(reuseVal)
		if err != nil {
			return nil, err
		}
		r.factory.Set(rec, f.ExpectedPos, v)
	}

	// Constants are applied only after every decoded field has been
	// materialized, so a constant always wins over a physical value.
	for pos, val := range r.constants {
		r.factory.Set(rec, pos, val)
	}

	return rec, nil
}

func (r *StructReader) Skip() error {
	for _, f := range r.fields {
		if err := f.Reader.Skip(); err != nil {
			return err
		}
	}
	return nil
}

// SetRowPositionSupplier hot-swaps the ROW_POSITION field's reader (if the
// writer schema carries one physically) to a fresh PositionReader, and
// propagates the supplier to every other field reader that understands row
// position (nested structs, RowIdReader).
func (r *StructReader) SetRowPositionSupplier(s RowPositionSupplier) {
	if r.rowPosSlot >= 0 {
		pr := NewPositionReader()
		pr.SetRowPositionSupplier(s)
		r.fields[r.rowPosSlot].Reader = pr
	}
	for i, f := range r.fields {
		if i == r.rowPosSlot {
			continue
		}
		if sp, ok := f.Reader.(SupportsRowPosition); ok {
			sp.SetRowPositionSupplier(s)
		}
	}
}

var (
	_ ValueReader         = (*StructReader)(nil)
	_ SupportsRowPosition = (*StructReader)(nil)
)

// SkipStructReader is a sink reader for an entire nested struct that is
// unprojected but must still be consumed to keep the byte stream aligned:
// Read and Skip both just skip every sub-reader in order.
type SkipStructReader struct {
	readers []ValueReader
}

func NewSkipStructReader(readers []ValueReader) *SkipStructReader {
	return &SkipStructReader{readers: readers}
}

func (r *SkipStructReader) Read(_ any) (any, error) {
	if err := r.Skip(); err != nil {
		return nil, err
	}
	return nil, nil
}

func (r *SkipStructReader) Skip() error {
	for _, rr := range r.readers {
		if err := rr.Skip(); err != nil {
			return err
		}
	}
	return nil
}
