package avro

import (
	"encoding/binary"
	"math/big"
)

// UUIDReader decodes a 16-byte fixed value as a UUID, reading the two
// 64-bit halves big-endian (most-significant word first).
type UUIDReader struct{ d Decoder }

func NewUUIDReader(d Decoder) *UUIDReader { return &UUIDReader{d: d} }

// UUID is the two 64-bit halves of a 128-bit UUID, most-significant first.
type UUID struct {
	MostSigBits  uint64
	LeastSigBits uint64
}

func (r *UUIDReader) Read(_ any) (any, error) {
	var buf [16]byte
	if err := r.d.ReadFixed(buf[:]); err != nil {
		return nil, err
	}
	return UUID{
		MostSigBits:  binary.BigEndian.Uint64(buf[0:8]),
		LeastSigBits: binary.BigEndian.Uint64(buf[8:16]),
	}, nil
}
func (r *UUIDReader) Skip() error { return r.d.SkipFixed(16) }

// DecimalReader decodes a variable-length, two's-complement, big-endian
// unscaled integer (from either an Avro bytes or fixed physical type) into
// a *big.Int paired with a scale fixed at construction. No precision
// validation is performed; overflow against a target precision is the
// caller's concern. The materialized value is immutable, so there is no
// backing memory to reuse across calls.
type DecimalReader struct {
	d     Decoder
	scale int
	fixed int // >0 for a fixed-width physical encoding, 0 for bytes
}

// Decimal is an unscaled big-integer value paired with its scale.
type Decimal struct {
	Unscaled *big.Int
	Scale    int
}

// NewDecimalReader builds a decimal reader over an Avro bytes physical
// type. NewFixedDecimalReader builds one over a fixed physical type.
func NewDecimalReader(d Decoder, scale int) *DecimalReader {
	return &DecimalReader{d: d, scale: scale}
}

func NewFixedDecimalReader(d Decoder, scale, size int) *DecimalReader {
	return &DecimalReader{d: d, scale: scale, fixed: size}
}

func (r *DecimalReader) Read(_ any) (any, error) {
	raw, err := r.rawBytes()
	if err != nil {
		return nil, err
	}
	return Decimal{Unscaled: bigIntFromTwosComplement(raw), Scale: r.scale}, nil
}

func (r *DecimalReader) Skip() error {
	if r.fixed > 0 {
		return r.d.SkipFixed(r.fixed)
	}
	return r.d.SkipBytes()
}

func (r *DecimalReader) rawBytes() ([]byte, error) {
	if r.fixed > 0 {
		buf := make([]byte, r.fixed)
		if err := r.d.ReadFixed(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}
	return r.d.ReadBytes(nil)
}

// bigIntFromTwosComplement interprets a big-endian two's-complement byte
// slice as a signed integer.
func bigIntFromTwosComplement(b []byte) *big.Int {
	if len(b) == 0 {
		return new(big.Int)
	}
	neg := b[0]&0x80 != 0
	if !neg {
		return new(big.Int).SetBytes(b)
	}
	inv := make([]byte, len(b))
	for i, c := range b {
		inv[i] = ^c
	}
	v := new(big.Int).SetBytes(inv)
	v.Add(v, big.NewInt(1))
	v.Neg(v)
	return v
}

// VariantReader decodes a self-describing variant value: a metadata byte
// buffer followed by a value byte buffer. Both buffers are returned
// opaque; note: if a caller subsequently decodes multi-byte integers
// out of either buffer, those integers are little-endian, even though the
// surrounding Avro length-prefix framing that delivered the buffers
// themselves is big-endian.
type VariantReader struct{ d Decoder }

func NewVariantReader(d Decoder) *VariantReader { return &VariantReader{d: d} }

// Variant holds a variant value's raw metadata and value buffers.
// Multi-byte integers packed inside either buffer are little-endian.
type Variant struct {
	Metadata []byte
	Value    []byte
}

func (r *VariantReader) Read(reuse any) (any, error) {
	var prevMeta, prevVal []byte
	if v, ok := reuse.(Variant); ok {
		prevMeta, prevVal = v.Metadata, v.Value
	}
	meta, err := r.d.ReadBytes(prevMeta)
	if err != nil {
		return nil, err
	}
	val, err := r.d.ReadBytes(prevVal)
	if err != nil {
		return nil, err
	}
	return Variant{Metadata: meta, Value: val}, nil
}

func (r *VariantReader) Skip() error {
	if err := r.d.SkipBytes(); err != nil {
		return err
	}
	return r.d.SkipBytes()
}
