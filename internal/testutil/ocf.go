// Package testutil generates real Avro-encoded test fixtures for the
// value-reader core's own test suite: a minimal Avro Object Container File
// reader/writer, deliberately not exposed as public API since the core
// itself has no opinion on file framing or compression. This package
// exists only so tests can produce genuine on-the-wire bytes — including,
// for one end-to-end test, a real OCF file — via the real
// justtrackio/avro/v2 encoder/decoder rather than hand-rolled byte
// literals.
package testutil

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	avro "github.com/justtrackio/avro/v2"
)

const (
	schemaKey = "avro.schema"
)

var magicBytes = [4]byte{'O', 'b', 'j', 1}

// ocfHeaderSchema is the standard Avro Object Container File header schema.
var ocfHeaderSchema = avro.MustParse(`{
	"type": "record",
	"name": "org.apache.avro.file.Header",
	"fields": [
		{"name": "magic", "type": {"type": "fixed", "name": "Magic", "size": 4}},
		{"name": "meta", "type": {"type": "map", "values": "bytes"}},
		{"name": "sync", "type": {"type": "fixed", "name": "Sync", "size": 16}}
	]
}`)

type ocfHeader struct {
	Magic [4]byte           `avro:"magic"`
	Meta  map[string][]byte `avro:"meta"`
	Sync  [16]byte          `avro:"sync"`
}

// OCFWriter writes an uncompressed Avro Object Container File to an
// io.Writer, one block per Close call — enough fixture generation for
// tests, not a general-purpose encoder.
type OCFWriter struct {
	writer  *avro.Writer
	buf     *bytes.Buffer
	encoder *avro.Encoder
	sync    [16]byte
	count   int
}

// NewOCFWriter starts a new container file for the schema given as JSON
// text in schemaJSON.
func NewOCFWriter(schemaJSON string, w io.Writer) (*OCFWriter, error) {
	schema, err := avro.Parse(schemaJSON)
	if err != nil {
		return nil, err
	}

	writer := avro.NewWriter(w, 512)
	header := ocfHeader{
		Magic: magicBytes,
		Meta:  map[string][]byte{schemaKey: []byte(schema.String())},
	}
	if _, err := rand.Read(header.Sync[:]); err != nil {
		return nil, err
	}
	writer.WriteVal(ocfHeaderSchema, header)
	if writer.Error != nil {
		return nil, writer.Error
	}

	buf := &bytes.Buffer{}
	return &OCFWriter{
		writer:  writer,
		buf:     buf,
		encoder: avro.NewEncoderForSchema(schema, buf),
		sync:    header.Sync,
	}, nil
}

// Encode appends one record's Avro encoding to the current block.
func (w *OCFWriter) Encode(v any) error {
	if err := w.encoder.Encode(v); err != nil {
		return err
	}
	w.count++
	return nil
}

// Close flushes the (single) pending block and the underlying writer.
func (w *OCFWriter) Close() error {
	if w.count == 0 {
		return nil
	}
	w.writer.WriteLong(int64(w.count))
	w.writer.WriteLong(int64(w.buf.Len()))
	w.writer.Write(w.buf.Bytes())
	w.writer.Write(w.sync[:])
	w.count = 0
	w.buf.Reset()
	if w.writer.Error != nil {
		return w.writer.Error
	}
	return w.writer.Flush()
}

// OCFReader reads an Avro Object Container File block by block, decoding
// each record through schema (which may differ from the file's own writer
// schema if the caller wants to exercise a resolving-decoder path).
type OCFReader struct {
	reader *avro.Reader
	schema avro.Schema
	sync   [16]byte
	count  int64

	decoder *avro.Decoder
}

// NewOCFReader opens a container file, returning the parsed writer schema
// alongside the reader. The reader decodes through that same schema until
// SetSchema overrides it.
func NewOCFReader(r io.Reader) (*OCFReader, avro.Schema, error) {
	reader := avro.NewReader(r, 1024)

	var h ocfHeader
	reader.ReadVal(ocfHeaderSchema, &h)
	if reader.Error != nil {
		return nil, nil, fmt.Errorf("testutil: ocf header: %w", reader.Error)
	}
	if h.Magic != magicBytes {
		return nil, nil, errors.New("testutil: not an avro container file")
	}

	schema, err := avro.Parse(string(h.Meta[schemaKey]))
	if err != nil {
		return nil, nil, err
	}

	return &OCFReader{reader: reader, schema: schema, sync: h.Sync}, schema, nil
}

// SetSchema fixes the schema used to decode every subsequent block.
func (r *OCFReader) SetSchema(s avro.Schema) { r.schema = s }

// HasNext reports whether another record is available, advancing to the
// next block as needed.
func (r *OCFReader) HasNext() bool {
	if r.count <= 0 {
		r.count = r.readBlock()
	}
	return r.count > 0
}

// Decode reads the next record into v.
func (r *OCFReader) Decode(v any) error {
	if r.count <= 0 {
		return errors.New("testutil: no data, call HasNext first")
	}
	r.count--
	return r.decoder.Decode(v)
}

func (r *OCFReader) readBlock() int64 {
	count := r.reader.ReadLong()
	size := r.reader.ReadLong()

	data := make([]byte, size)
	r.reader.Read(data)
	r.decoder = avro.NewDecoderForSchema(r.schema, bytes.NewReader(data))

	var sync [16]byte
	r.reader.Read(sync[:])
	if r.sync != sync && r.reader.Error != io.EOF {
		r.reader.Error = errors.New("testutil: invalid block sync marker")
	}
	return count
}
