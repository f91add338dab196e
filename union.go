package avro

import "fmt"

// UnionReader reads an Avro union's branch index and dispatches to the
// reader at that index. Per Avro's wire format, a union does not encode
// its own length, so Skip must also read the index before skipping the
// chosen branch.
type UnionReader struct {
	d       Decoder
	readers []ValueReader
}

func NewUnionReader(d Decoder, readers []ValueReader) *UnionReader {
	return &UnionReader{d: d, readers: readers}
}

func (r *UnionReader) branch() (ValueReader, error) {
	idx, err := r.d.ReadIndex()
	if err != nil {
		return nil, err
	}
	if idx < 0 || int(idx) >= len(r.readers) {
		return nil, fmt.Errorf("avro: union branch index %d out of range [0,%d)", idx, len(r.readers))
	}
	return r.readers[idx], nil
}

func (r *UnionReader) Read(reuse any) (any, error) {
	reader, err := r.branch()
	if err != nil {
		return nil, err
	}
	return reader.Read(reuse)
}

func (r *UnionReader) Skip() error {
	reader, err := r.branch()
	if err != nil {
		return err
	}
	return reader.Skip()
}
