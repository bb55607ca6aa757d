package pgvalue

import (
	"errors"
	"fmt"
)

// ErrWasNull is returned by Decode when the wire value is SQL NULL and the
// destination cannot represent the absence of a value. Decoding into a
// Null[T] avoids it.
var ErrWasNull = errors.New("a PostgreSQL value was NULL")

// WrongTypeError occurs when a conversion is attempted between a Go
// representation and a PostgreSQL type it does not accept. It is raised by
// Decode and Encode before any conversion work happens; codec methods never
// produce it.
type WrongTypeError struct {
	Type   *Type
	GoType string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("cannot convert between %s and the PostgreSQL type %s", e.GoType, e.Type)
}

// ConversionError occurs when a value cannot be converted to or from its
// binary wire representation. Err holds the underlying cause.
type ConversionError struct {
	Type *Type
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s value: %v", e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
