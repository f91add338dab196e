package avro

import (
	"io"

	jtavro "github.com/justtrackio/avro/v2"
)

// ReaderDecoder adapts a *justtrackio/avro/v2* *avro.Reader* — a buffered,
// accumulate-the-error-on-the-struct style binary cursor, the same shape
// avro.NewReader builds for container-file block decoding — to this
// package's (value, error)-returning Decoder contract.
type ReaderDecoder struct {
	r *jtavro.Reader
}

// NewReaderDecoder wraps an existing *avro.Reader.
func NewReaderDecoder(r *jtavro.Reader) *ReaderDecoder { return &ReaderDecoder{r: r} }

// NewReaderDecoderFromIO builds a Decoder reading from r, buffering bufSize
// bytes at a time, mirroring avro.NewReader(r, bufSize).
func NewReaderDecoderFromIO(r io.Reader, bufSize int) *ReaderDecoder {
	return &ReaderDecoder{r: jtavro.NewReader(r, bufSize)}
}

func (d *ReaderDecoder) err() error { return d.r.Error }

func (d *ReaderDecoder) ReadBoolean() (bool, error) {
	v := d.r.ReadBool()
	return v, d.err()
}

func (d *ReaderDecoder) ReadInt() (int32, error) {
	v := d.r.ReadInt()
	return v, d.err()
}

func (d *ReaderDecoder) ReadLong() (int64, error) {
	v := d.r.ReadLong()
	return v, d.err()
}

func (d *ReaderDecoder) ReadFloat() (float32, error) {
	v := d.r.ReadFloat()
	return v, d.err()
}

func (d *ReaderDecoder) ReadDouble() (float64, error) {
	v := d.r.ReadDouble()
	return v, d.err()
}

func (d *ReaderDecoder) ReadString(_ []byte) (string, error) {
	v := d.r.ReadString()
	return v, d.err()
}

func (d *ReaderDecoder) ReadBytes(_ []byte) ([]byte, error) {
	v := d.r.ReadBytes()
	return v, d.err()
}

func (d *ReaderDecoder) ReadFixed(dst []byte) error {
	d.r.Read(dst)
	return d.err()
}

// ReadEnum reads an enum symbol index. Avro encodes an enum index with the
// same variable-length encoding as int, so this delegates to ReadInt.
func (d *ReaderDecoder) ReadEnum() (int32, error) {
	v := d.r.ReadInt()
	return v, d.err()
}

// ReadIndex reads a union branch index, encoded the same way as long.
func (d *ReaderDecoder) ReadIndex() (int32, error) {
	v := d.r.ReadLong()
	return int32(v), d.err()
}

// ReadNull reads an Avro null value, which has a zero-byte encoding.
func (d *ReaderDecoder) ReadNull() error { return nil }

func (d *ReaderDecoder) ReadArrayStart() (int64, error) {
	count, _ := d.r.ReadBlockHeader()
	return count, d.err()
}

func (d *ReaderDecoder) ArrayNext() (int64, error) {
	count, _ := d.r.ReadBlockHeader()
	return count, d.err()
}

func (d *ReaderDecoder) ReadMapStart() (int64, error) {
	count, _ := d.r.ReadBlockHeader()
	return count, d.err()
}

func (d *ReaderDecoder) MapNext() (int64, error) {
	count, _ := d.r.ReadBlockHeader()
	return count, d.err()
}

func (d *ReaderDecoder) SkipString() error {
	d.r.SkipString()
	return d.err()
}

func (d *ReaderDecoder) SkipBytes() error {
	d.r.SkipBytes()
	return d.err()
}

func (d *ReaderDecoder) SkipFixed(n int) error {
	d.r.SkipNBytes(n)
	return d.err()
}

// SkipArray and SkipMap mirror the underlying library's own block-skip
// loop: a block with a known byte size is skipped in one shot and the loop
// continues transparently; a block with no byte-size hint reports its
// element count back to the caller, who must skip that many child values
// individually before asking for the next block.
func (d *ReaderDecoder) SkipArray() (int64, error) {
	for {
		count, size := d.r.ReadBlockHeader()
		if err := d.err(); err != nil {
			return 0, err
		}
		if count == 0 {
			return 0, nil
		}
		if size > 0 {
			d.r.SkipNBytes(int(size))
			if err := d.err(); err != nil {
				return 0, err
			}
			continue
		}
		return count, nil
	}
}

func (d *ReaderDecoder) SkipMap() (int64, error) {
	for {
		count, size := d.r.ReadBlockHeader()
		if err := d.err(); err != nil {
			return 0, err
		}
		if count == 0 {
			return 0, nil
		}
		if size > 0 {
			d.r.SkipNBytes(int(size))
			if err := d.err(); err != nil {
				return 0, err
			}
			continue
		}
		return count, nil
	}
}

var _ Decoder = (*ReaderDecoder)(nil)
