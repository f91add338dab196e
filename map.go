package avro

// MapReader decodes an Avro map (chunked string-keyed sequence, terminated
// by a zero-length chunk). A caller-supplied map[string]any reuse
// container is retained and cleared when present; values captured from the
// cleared container (in the order Go's map iteration happens to produce —
// arbitrary, but stable reuse bookkeeping does not require a particular
// order) are threaded through to the value reader as reuse hints.
type MapReader struct {
	d     Decoder
	value ValueReader
}

func NewMapReader(d Decoder, value ValueReader) *MapReader {
	return &MapReader{d: d, value: value}
}

func (r *MapReader) Read(reuse any) (any, error) {
	m, ok := reuse.(map[string]any)
	var prior []any
	if ok && m != nil {
		prior = make([]any, 0, len(m))
		for _, v := range m {
			prior = append(prior, v)
		}
		for k := range m {
			delete(m, k)
		}
	} else {
		m = make(map[string]any)
	}

	idx := 0
	length, err := r.d.ReadMapStart()
	if err != nil {
		return nil, err
	}
	for length > 0 {
		for i := int64(0); i < length; i++ {
			key, err := r.d.ReadString(nil)
			if err != nil {
				return nil, err
			}
			var elemReuse any
			if idx < len(prior) {
				elemReuse = prior[idx]
			}
			v, err := r.value.Read(elemReuse)
			if err != nil {
				return nil, err
			}
			m[key] = v
			idx++
		}
		length, err = r.d.MapNext()
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (r *MapReader) Skip() error {
	length, err := r.d.SkipMap()
	if err != nil {
		return err
	}
	for length != 0 {
		if length > 0 {
			for i := int64(0); i < length; i++ {
				if err := r.d.SkipString(); err != nil {
					return err
				}
				if err := r.value.Skip(); err != nil {
					return err
				}
			}
		}
		length, err = r.d.SkipMap()
		if err != nil {
			return err
		}
	}
	return nil
}

// ArrayMapReader decodes a logical map that was encoded as an array of
// [key, value] pairs — Avro's option for maps with non-string keys. It
// uses the array chunk framing (ReadArrayStart/ArrayNext) but produces a
// map[any]any.
type ArrayMapReader struct {
	d     Decoder
	key   ValueReader
	value ValueReader
}

func NewArrayMapReader(d Decoder, key, value ValueReader) *ArrayMapReader {
	return &ArrayMapReader{d: d, key: key, value: value}
}

func (r *ArrayMapReader) Read(reuse any) (any, error) {
	m, ok := reuse.(map[any]any)
	if !ok || m == nil {
		m = make(map[any]any)
	} else {
		for k := range m {
			delete(m, k)
		}
	}

	length, err := r.d.ReadArrayStart()
	if err != nil {
		return nil, err
	}
	for length > 0 {
		for i := int64(0); i < length; i++ {
			k, err := r.key.Read(nil)
			if err != nil {
				return nil, err
			}
			v, err := r.value.Read(nil)
			if err != nil {
				return nil, err
			}
			m[k] = v
		}
		length, err = r.d.ArrayNext()
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (r *ArrayMapReader) Skip() error {
	length, err := r.d.SkipArray()
	if err != nil {
		return err
	}
	for length != 0 {
		if length > 0 {
			for i := int64(0); i < length; i++ {
				if err := r.key.Skip(); err != nil {
					return err
				}
				if err := r.value.Skip(); err != nil {
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
