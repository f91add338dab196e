package avro

// fakeDecoder is a scripted Decoder used by whitebox tests that need exact
// control over chunk counts and byte-size hints (the multi-chunk skip
// optimization in particular is awkward to provoke through a real encoder,
// which always emits a single chunk followed by a zero terminator).
type fakeDecoder struct {
	bools   []bool
	ints    []int32
	longs   []int64
	floats  []float32
	doubles []float64
	strings []string
	bytes   [][]byte
	fixed   [][]byte
	enums   []int32
	indexes []int32

	arrayStarts []int64
	arrayNexts  []int64
	mapStarts   []int64
	mapNexts    []int64

	skipArrays [][2]int64 // [count, _] pairs consumed in order by SkipArray
	skipMaps   [][2]int64

	pos struct {
		b, i, l, f, d, s, by, fx, e, ix int
		as, an, ms, mn                 int
		sa, sm                         int
	}
}

func (f *fakeDecoder) ReadBoolean() (bool, error) {
	v := f.bools[f.pos.b]
	f.pos.b++
	return v, nil
}

func (f *fakeDecoder) ReadInt() (int32, error) {
	v := f.ints[f.pos.i]
	f.pos.i++
	return v, nil
}

func (f *fakeDecoder) ReadLong() (int64, error) {
	v := f.longs[f.pos.l]
	f.pos.l++
	return v, nil
}

func (f *fakeDecoder) ReadFloat() (float32, error) {
	v := f.floats[f.pos.f]
	f.pos.f++
	return v, nil
}

func (f *fakeDecoder) ReadDouble() (float64, error) {
	v := f.doubles[f.pos.d]
	f.pos.d++
	return v, nil
}

func (f *fakeDecoder) ReadString(_ []byte) (string, error) {
	v := f.strings[f.pos.s]
	f.pos.s++
	return v, nil
}

func (f *fakeDecoder) ReadBytes(_ []byte) ([]byte, error) {
	v := f.bytes[f.pos.by]
	f.pos.by++
	return v, nil
}

func (f *fakeDecoder) ReadFixed(dst []byte) error {
	v := f.fixed[f.pos.fx]
	f.pos.fx++
	copy(dst, v)
	return nil
}

func (f *fakeDecoder) ReadEnum() (int32, error) {
	v := f.enums[f.pos.e]
	f.pos.e++
	return v, nil
}

func (f *fakeDecoder) ReadIndex() (int32, error) {
	v := f.indexes[f.pos.ix]
	f.pos.ix++
	return v, nil
}

func (f *fakeDecoder) ReadNull() error { return nil }

func (f *fakeDecoder) ReadArrayStart() (int64, error) {
	v := f.arrayStarts[f.pos.as]
	f.pos.as++
	return v, nil
}

func (f *fakeDecoder) ArrayNext() (int64, error) {
	v := f.arrayNexts[f.pos.an]
	f.pos.an++
	return v, nil
}

func (f *fakeDecoder) ReadMapStart() (int64, error) {
	v := f.mapStarts[f.pos.ms]
	f.pos.ms++
	return v, nil
}

func (f *fakeDecoder) MapNext() (int64, error) {
	v := f.mapNexts[f.pos.mn]
	f.pos.mn++
	return v, nil
}

func (f *fakeDecoder) SkipString() error { f.pos.s++; return nil }
func (f *fakeDecoder) SkipBytes() error  { f.pos.by++; return nil }
func (f *fakeDecoder) SkipFixed(int) error { return nil }

func (f *fakeDecoder) SkipArray() (int64, error) {
	v := f.skipArrays[f.pos.sa]
	f.pos.sa++
	return v[0], nil
}

func (f *fakeDecoder) SkipMap() (int64, error) {
	v := f.skipMaps[f.pos.sm]
	f.pos.sm++
	return v[0], nil
}

var _ Decoder = (*fakeDecoder)(nil)
