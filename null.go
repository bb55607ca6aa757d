package pgvalue

import "fmt"

// Null represents a value that may be SQL NULL. It is the only representation
// whose decode of a NULL wire value succeeds and whose encode may produce
// NULL. Base codecs never handle NULL themselves; wrap them instead:
//
//	var name pgvalue.Null[pgvalue.Text]
//	err := pgvalue.Decode(si, ty, src, &name)
//
// When Valid is false, Value holds the zero value of T and must be ignored.
type Null[T any] struct {
	Value T
	Valid bool
}

func (n Null[T]) CanDecodeBinary(ty *Type) bool {
	if d, ok := any(&n.Value).(BinaryDecoder); ok {
		return d.CanDecodeBinary(ty)
	}
	return false
}

func (dst *Null[T]) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	d, ok := any(&dst.Value).(BinaryDecoder)
	if !ok {
		return fmt.Errorf("%T does not implement BinaryDecoder", dst.Value)
	}

	if err := d.DecodeBinary(si, ty, src); err != nil {
		return err
	}

	dst.Valid = true
	return nil
}

// DecodeBinaryNull sets the value to absent. The wrapped decoder is never
// invoked for a NULL wire value.
func (dst *Null[T]) DecodeBinaryNull(si *SessionInfo, ty *Type) error {
	var zero T
	dst.Value = zero
	dst.Valid = false
	return nil
}

func (n Null[T]) CanEncodeBinary(ty *Type) bool {
	if e, ok := any(n.Value).(BinaryEncoder); ok {
		return e.CanEncodeBinary(ty)
	}
	return false
}

// EncodeBinary writes nothing and returns a nil buffer when Valid is false.
func (src Null[T]) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	if !src.Valid {
		return nil, nil
	}

	e, ok := any(src.Value).(BinaryEncoder)
	if !ok {
		return nil, fmt.Errorf("%T does not implement BinaryEncoder", src.Value)
	}

	return e.EncodeBinary(si, ty, buf)
}
