package avro

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredField is the sentinel wrapped by MissingRequiredFieldError.
var ErrMissingRequiredField = errors.New("avro: missing required field")

// ErrInvalidDecimalEncoding is the sentinel wrapped by InvalidDecimalEncodingError.
var ErrInvalidDecimalEncoding = errors.New("avro: invalid decimal encoding")

// MissingRequiredFieldError is returned by the read-plan builder when an
// expected field has no writer-schema counterpart, no constant, and no
// initial default.
type MissingRequiredFieldError struct {
	FieldName string
	FieldID   int
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("avro: required field %q (id %d) has no writer value, constant, or default", e.FieldName, e.FieldID)
}

func (e *MissingRequiredFieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// InvalidDecimalEncodingError is returned when a decimal reader is built
// against an Avro type that is neither fixed nor bytes.
type InvalidDecimalEncodingError struct {
	SchemaType string
}

func (e *InvalidDecimalEncodingError) Error() string {
	return fmt.Sprintf("avro: cannot read decimal from schema type %q, want fixed or bytes", e.SchemaType)
}

func (e *InvalidDecimalEncodingError) Unwrap() error {
	return ErrInvalidDecimalEncoding
}
