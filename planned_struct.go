package avro

// PlanEntry is one entry of a ReadPlan: a reader paired with the slot it
// should be written to. ProjectionPos is nil when the field is present in
// the file but not projected — the reader still runs (to keep the byte
// stream aligned) but its result is discarded.
type PlanEntry struct {
	ProjectionPos *int
	Reader        ValueReader
}

// ReadPlan is the fully resolved list of (projection position, reader)
// pairs for one expected struct, produced by BuildPlan.
type ReadPlan struct {
	Entries []PlanEntry
}

// PlannedStructReader decodes a record purely by walking a pre-built
// ReadPlan: it never consults field ids at decode time, and needs no
// resolving decoder. This is the reader new code should use; the
// unplanned StructReader exists only for decoders that are not planned
// ahead of time.
type PlannedStructReader struct {
	factory RecordFactory
	plan    *ReadPlan
}

func NewPlannedStructReader(factory RecordFactory, plan *ReadPlan) *PlannedStructReader {
	return &PlannedStructReader{factory: factory, plan: plan}
}

func (r *PlannedStructReader) Read(reuse any) (any, error) {
	rec := r.factory.Create(reuse)
	for _, e := range r.plan.Entries {
		if e.ProjectionPos == nil {
			if err := e.Reader.Skip(); err != nil {
				return nil, err
			}
			continue
		}
		reuseVal := r.factory.Get(rec, *e.ProjectionPos)
		v, err := e.Reader.Read(reuseVal)
		if err != nil {
			return nil, err
		}
		r.factory.Set(rec, *e.ProjectionPos, v)
	}
	return rec, nil
}

func (r *PlannedStructReader) Skip() error {
	for _, e := range r.plan.Entries {
		if err := e.Reader.Skip(); err != nil {
			return err
		}
	}
	return nil
}

// SetRowPositionSupplier propagates the supplier to every plan entry whose
// reader understands row position.
func (r *PlannedStructReader) SetRowPositionSupplier(s RowPositionSupplier) {
	for _, e := range r.plan.Entries {
		if sp, ok := e.Reader.(SupportsRowPosition); ok {
			sp.SetRowPositionSupplier(s)
		}
	}
}

var (
	_ ValueReader         = (*PlannedStructReader)(nil)
	_ SupportsRowPosition = (*PlannedStructReader)(nil)
)
