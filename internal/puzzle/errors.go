package puzzle

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedLength = errors.New("encoded string has odd length")
	ErrInvalidCode     = errors.New("invalid character code")
	ErrMissingField    = errors.New("field is missing")
)

// ErrorKind classifies decode failures.
type ErrorKind int

const (
	MalformedLength ErrorKind = iota + 1
	InvalidCode
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedLength:
		return "malformed length"
	case InvalidCode:
		return "invalid code"
	default:
		return "unknown"
	}
}

// DecodeError describes why an encoded string could not be decoded.
// Offset is the index of the offending chunk in Code.
type DecodeError struct {
	Kind   ErrorKind
	Code   string
	Offset int
}

func (e *DecodeError) Error() string {
	if e.Kind == MalformedLength {
		return fmt.Sprintf("decode %q: %v (%d digits)", e.Code, ErrMalformedLength, len(e.Code))
	}
	return fmt.Sprintf("decode %q: %v at offset %d", e.Code, ErrInvalidCode, e.Offset)
}

// Unwrap lets errors.Is match the sentinel for the error kind.
func (e *DecodeError) Unwrap() error {
	switch e.Kind {
	case MalformedLength:
		return ErrMalformedLength
	case InvalidCode:
		return ErrInvalidCode
	}
	return nil
}
