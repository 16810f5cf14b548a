package osudb

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind int

//goland:noinspection ALL
const (
	// truncated input, bad string marker, invalid UTF-8, trailing bytes
	MalformedPrimitive ErrorKind = iota
	// star rating pair marker byte mismatch
	MismatchedTag
	// gameplay mode or ranked status out of its closed set
	UnrecognizedEnumValue
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedPrimitive:
		return "malformed primitive"
	case MismatchedTag:
		return "mismatched tag"
	case UnrecognizedEnumValue:
		return "unrecognized enum value"
	}
	return "unknown error"
}

var (
	ErrUnexpectedEOF       = errors.New("unexpected end of input")
	ErrUlebOverflow        = errors.New("uleb128 value overflows 64 bits")
	ErrInvalidUTF8         = errors.New("string is not valid UTF-8")
	ErrStringMarker        = errors.New("unrecognized string marker")
	ErrTrailingData        = errors.New("trailing data after end of structure")
	ErrTagMismatch         = errors.New("marker byte mismatch")
	ErrUnknownMode         = errors.New("unrecognized gameplay mode")
	ErrUnknownRankedStatus = errors.New("unrecognized ranked status")

	ErrInvalidValue = errors.New("value cannot be encoded")
)

// DecodeError locates a decoding failure in the input.
type DecodeError struct {
	Kind   ErrorKind
	Offset int    // byte offset where the failing field starts
	Field  string // field being decoded
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset %d (%s): %v", e.Kind, e.Offset, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a model value the wire format cannot represent.
type EncodeError struct {
	Field string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Field, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// ErrorOffset returns the input offset of a decoding error, or -1.
func ErrorOffset(err error) int {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr.Offset
	}
	return -1
}
