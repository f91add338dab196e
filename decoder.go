// Package avro implements the value-reader core of an Iceberg-compatible
// Avro decoding layer: a compositional tree of per-type decoders that turn
// a binary Avro byte stream into in-memory records shaped by an expected
// logical schema, reconciling it against the schema the file was written
// with.
//
// The package deliberately does not implement Avro framing, compression,
// file-level readers, or catalog integration — those are external
// collaborators. It consumes a byte-oriented Decoder, built here as a thin
// adapter over github.com/justtrackio/avro/v2's *avro.Reader.
package avro

// Decoder is the byte-oriented cursor a ValueReader tree is built against.
// It mirrors the minimum surface of an Avro binary decoder: every method
// advances the underlying stream by exactly the bytes of one value.
//
// Implementations are not safe for concurrent use — a Decoder, like the
// reader tree built over it, is a stateful single-threaded cursor.
type Decoder interface {
	ReadBoolean() (bool, error)
	ReadInt() (int32, error)
	ReadLong() (int64, error)
	ReadFloat() (float32, error)
	ReadDouble() (float64, error)

	// ReadString reads a UTF-8 string, optionally reusing buf as scratch
	// space. The returned string is always freshly materialized.
	ReadString(buf []byte) (string, error)

	// ReadBytes reads a length-prefixed byte buffer, optionally reusing
	// reuse if it is non-nil (implementations are free to ignore it).
	ReadBytes(reuse []byte) ([]byte, error)

	// ReadFixed reads exactly len(dst) bytes into dst.
	ReadFixed(dst []byte) error

	// ReadEnum reads the zero-based symbol index of an enum value.
	ReadEnum() (int32, error)

	// ReadIndex reads a union's branch index.
	ReadIndex() (int32, error)

	ReadNull() error

	// ReadArrayStart and ArrayNext implement Avro's chunked array framing:
	// each call returns the length of the next chunk, zero terminating
	// the array.
	ReadArrayStart() (int64, error)
	ArrayNext() (int64, error)

	// ReadMapStart and MapNext are the map analogue of ReadArrayStart/ArrayNext.
	ReadMapStart() (int64, error)
	MapNext() (int64, error)

	SkipString() error
	SkipBytes() error
	SkipFixed(n int) error

	// SkipArray and SkipMap advance the decoder past an entire array or
	// map without materializing it. Blocks that carry a byte size are
	// skipped inside the decoder in one step and never reported. A non-zero
	// return N means the decoder reached a block of N elements it could not
	// skip as a whole; the caller must call the child reader's Skip N times
	// before requesting the next chunk. Zero terminates the container.
	SkipArray() (int64, error)
	SkipMap() (int64, error)
}

// WriterField is one field of a resolving decoder's negotiated read order:
// the physical position a field occupies in the writer record.
type WriterField struct {
	Pos int
}

// ResolvingDecoder is a Decoder that additionally understands both the
// writer and the reader schema and can report the order fields should be
// read in to stay aligned with how it will demultiplex the underlying
// bytes. The unplanned StructReader is the only consumer of this
// capability; it is legacy — new code should prefer PlannedStructReader,
// which needs no resolving decoder at all.
type ResolvingDecoder interface {
	Decoder

	// ReadFieldOrder returns writer fields in the order they must be read,
	// referencing each by its physical position in the writer record.
	ReadFieldOrder() ([]WriterField, error)
}
