package avro

import "fmt"

// BooleanReader decodes Avro boolean values.
type BooleanReader struct{ d Decoder }

func NewBooleanReader(d Decoder) *BooleanReader { return &BooleanReader{d: d} }

func (r *BooleanReader) Read(_ any) (any, error) { return r.d.ReadBoolean() }
func (r *BooleanReader) Skip() error             { _, err := r.d.ReadBoolean(); return err }

// IntReader decodes Avro int values as int32.
type IntReader struct{ d Decoder }

func NewIntReader(d Decoder) *IntReader { return &IntReader{d: d} }

func (r *IntReader) Read(_ any) (any, error) { return r.d.ReadInt() }
func (r *IntReader) Skip() error             { _, err := r.d.ReadInt(); return err }

// LongReader decodes Avro long values as int64.
type LongReader struct{ d Decoder }

func NewLongReader(d Decoder) *LongReader { return &LongReader{d: d} }

func (r *LongReader) Read(_ any) (any, error) { return r.d.ReadLong() }
func (r *LongReader) Skip() error             { _, err := r.d.ReadLong(); return err }

// FloatReader decodes Avro float values as float32.
type FloatReader struct{ d Decoder }

func NewFloatReader(d Decoder) *FloatReader { return &FloatReader{d: d} }

func (r *FloatReader) Read(_ any) (any, error) { return r.d.ReadFloat() }
func (r *FloatReader) Skip() error             { _, err := r.d.ReadFloat(); return err }

// DoubleReader decodes Avro double values as float64.
type DoubleReader struct{ d Decoder }

func NewDoubleReader(d Decoder) *DoubleReader { return &DoubleReader{d: d} }

func (r *DoubleReader) Read(_ any) (any, error) { return r.d.ReadDouble() }
func (r *DoubleReader) Skip() error             { _, err := r.d.ReadDouble(); return err }

// IntToLongReader implements Avro's int->long promotion.
type IntToLongReader struct{ d Decoder }

func NewIntToLongReader(d Decoder) *IntToLongReader { return &IntToLongReader{d: d} }

func (r *IntToLongReader) Read(_ any) (any, error) {
	v, err := r.d.ReadInt()
	if err != nil {
		return nil, err
	}
	return int64(v), nil
}
func (r *IntToLongReader) Skip() error { _, err := r.d.ReadInt(); return err }

// FloatToDoubleReader implements Avro's float->double promotion.
type FloatToDoubleReader struct{ d Decoder }

func NewFloatToDoubleReader(d Decoder) *FloatToDoubleReader { return &FloatToDoubleReader{d: d} }

func (r *FloatToDoubleReader) Read(_ any) (any, error) {
	v, err := r.d.ReadFloat()
	if err != nil {
		return nil, err
	}
	return float64(v), nil
}
func (r *FloatToDoubleReader) Skip() error { _, err := r.d.ReadFloat(); return err }

// StringReader decodes Avro string values, routing through the decoder's
// readString entry point so a resolving decoder can coerce a physical
// bytes type into a string logical type. Buffer reuse, if any, is handled
// internally by the decoder; the returned string is always fresh.
type StringReader struct {
	d   Decoder
	buf []byte
}

func NewStringReader(d Decoder) *StringReader { return &StringReader{d: d} }

func (r *StringReader) Read(_ any) (any, error) {
	s, err := r.d.ReadString(r.buf)
	return s, err
}
func (r *StringReader) Skip() error { return r.d.SkipString() }

// BytesReader decodes Avro bytes values. It always allocates a fresh byte
// slice: reusing a caller buffer would require a length agreement not
// discoverable until after the length prefix is read, and the caller may
// retain the slice past the call, so reuse buys nothing here.
type BytesReader struct{ d Decoder }

func NewBytesReader(d Decoder) *BytesReader { return &BytesReader{d: d} }

func (r *BytesReader) Read(_ any) (any, error) { return r.d.ReadBytes(nil) }
func (r *BytesReader) Skip() error             { return r.d.SkipBytes() }

// FixedReader decodes an Avro fixed value of a known byte width. A
// caller-supplied []byte is reused iff its length matches size.
type FixedReader struct {
	d    Decoder
	size int
}

func NewFixedReader(d Decoder, size int) *FixedReader { return &FixedReader{d: d, size: size} }

func (r *FixedReader) Read(reuse any) (any, error) {
	buf, ok := reuse.([]byte)
	if !ok || len(buf) != r.size {
		buf = make([]byte, r.size)
	}
	if err := r.d.ReadFixed(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
func (r *FixedReader) Skip() error { return r.d.SkipFixed(r.size) }

// EnumReader decodes an Avro enum value into its symbol string.
type EnumReader struct {
	d       Decoder
	symbols []string
}

func NewEnumReader(d Decoder, symbols []string) *EnumReader {
	return &EnumReader{d: d, symbols: symbols}
}

func (r *EnumReader) Read(_ any) (any, error) {
	idx, err := r.d.ReadEnum()
	if err != nil {
		return nil, err
	}
	if idx < 0 || int(idx) >= len(r.symbols) {
		return nil, fmt.Errorf("avro: enum symbol index %d out of range [0,%d)", idx, len(r.symbols))
	}
	return r.symbols[idx], nil
}
func (r *EnumReader) Skip() error { _, err := r.d.ReadEnum(); return err }

// NullReader decodes an explicit Avro null value, returning nil.
type NullReader struct{ d Decoder }

func NewNullReader(d Decoder) *NullReader { return &NullReader{d: d} }

func (r *NullReader) Read(_ any) (any, error) { return nil, r.d.ReadNull() }
func (r *NullReader) Skip() error             { return r.d.ReadNull() }
