package avro

// PositionReader synthesizes a row's position within its file: it holds an
// internal counter and returns the next one on every Read, or is
// hot-swapped into place once a RowPositionSupplier is known.
type PositionReader struct {
	counter int64
}

// NewPositionReader builds a PositionReader whose first Read returns 0.
func NewPositionReader() *PositionReader { return &PositionReader{counter: -1} }

func (r *PositionReader) Read(_ any) (any, error) {
	r.counter++
	return r.counter, nil
}

func (r *PositionReader) Skip() error {
	r.counter++
	return nil
}

// SetRowPositionSupplier resets the internal counter so the next Read
// returns exactly s(), and subsequent reads increment from there.
func (r *PositionReader) SetRowPositionSupplier(s RowPositionSupplier) {
	r.counter = s() - 1
}

// RowIdReader composes a nullable per-row id read from the file with a
// PositionReader: when the file-provided id is non-null it wins, otherwise
// the value is synthesized as firstRowID + position.
type RowIdReader struct {
	inner      ValueReader // reads an int64 (nil on a null file value)
	pos        *PositionReader
	firstRowID int64
}

// NewRowIdReader builds a RowIdReader. inner must read a value assignable
// to int64 or nil (typically a union of null|long).
func NewRowIdReader(inner ValueReader, firstRowID int64) *RowIdReader {
	return &RowIdReader{inner: inner, pos: NewPositionReader(), firstRowID: firstRowID}
}

func (r *RowIdReader) Read(reuse any) (any, error) {
	fileVal, err := r.inner.Read(reuse)
	if err != nil {
		return nil, err
	}
	posVal, err := r.pos.Read(nil)
	if err != nil {
		return nil, err
	}
	if fileVal != nil {
		return fileVal, nil
	}
	return r.firstRowID + posVal.(int64), nil
}

func (r *RowIdReader) Skip() error {
	if err := r.inner.Skip(); err != nil {
		return err
	}
	return r.pos.Skip()
}

func (r *RowIdReader) SetRowPositionSupplier(s RowPositionSupplier) {
	r.pos.SetRowPositionSupplier(s)
}

// LastUpdatedSeqReader returns the per-row sequence number read from the
// file when non-null, falling back to a file-level sequence number fixed
// at construction.
//
// NewLastUpdatedSeqReader's baseRowID parameter gates construction only —
// by construction, both a base row id and a file sequence number must be known
// before a LastUpdatedSeqReader is built at all (see the plan builder),
// but the base row id itself is never consulted once built.
type LastUpdatedSeqReader struct {
	inner         ValueReader // reads an int64 (nil on a null file value)
	fileSeqNumber int64
}

func NewLastUpdatedSeqReader(inner ValueReader, baseRowID, fileSeqNumber int64) *LastUpdatedSeqReader {
	_ = baseRowID // gating-only, see doc comment
	return &LastUpdatedSeqReader{inner: inner, fileSeqNumber: fileSeqNumber}
}

func (r *LastUpdatedSeqReader) Read(reuse any) (any, error) {
	v, err := r.inner.Read(reuse)
	if err != nil {
		return nil, err
	}
	if v != nil {
		return v, nil
	}
	return r.fileSeqNumber, nil
}

func (r *LastUpdatedSeqReader) Skip() error { return r.inner.Skip() }
