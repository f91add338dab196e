package avro

// ArrayReader decodes an Avro array as a chunked sequence terminated by a
// zero-length chunk. A caller-supplied []any reuse container is retained
// and cleared when its concrete kind matches; each element is read with
// the container's prior value at that position passed through as a reuse
// hint, captured before the slot is overwritten.
type ArrayReader struct {
	d    Decoder
	elem ValueReader
}

func NewArrayReader(d Decoder, elem ValueReader) *ArrayReader {
	return &ArrayReader{d: d, elem: elem}
}

func (r *ArrayReader) Read(reuse any) (any, error) {
	result, _ := reuse.([]any)
	priorLen := len(result)
	result = result[:0]

	idx := 0
	length, err := r.d.ReadArrayStart()
	if err != nil {
		return nil, err
	}
	for length > 0 {
		for i := int64(0); i < length; i++ {
			var elemReuse any
			if idx < priorLen {
				elemReuse = result[:priorLen][idx]
			}
			v, err := r.elem.Read(elemReuse)
			if err != nil {
				return nil, err
			}
			if idx < cap(result) {
				result = result[:idx+1]
			} else {
				result = append(result, nil)
			}
			result[idx] = v
			idx++
		}
		length, err = r.d.ArrayNext()
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *ArrayReader) Skip() error {
	length, err := r.d.SkipArray()
	if err != nil {
		return err
	}
	for length != 0 {
		if length > 0 {
			for i := int64(0); i < length; i++ {
				if err := r.elem.Skip(); err != nil {
					return err
				}
			}
		}
		length, err = r.d.SkipArray()
		if err != nil {
			return err
		}
	}
	return nil
}
