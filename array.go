package pgvalue

import (
	"errors"
	"math"
	"reflect"

	"github.com/jackc/pgio"
)

// Slice encodes a Go slice as a one-dimensional array of the wire type's
// element type. It accepts any array type whose element type T accepts.
// Acceptance is answered by T's zero value, so T must be a value
// representation such as Int4 or Null[Text]; a type argument whose zero
// value is a nil pointer is never accepted. Slice is encode only; decoding
// arrays is not supported.
//
// Elements are encoded unchecked because acceptance depends only on the
// type, which was already verified for all of them. An element whose encoder
// reports NULL is written with length -1 and sets the header's null flag, so
// Slice[Null[T]] can transmit absent elements.
type Slice[T BinaryEncoder] []T

func (Slice[T]) CanEncodeBinary(ty *Type) bool {
	if ty.Kind().Code() != KindArray {
		return false
	}
	elem := ty.Kind().Elem()
	if elem == nil {
		return false
	}

	var zero T
	if v := reflect.ValueOf(zero); v.Kind() == reflect.Ptr && v.IsNil() {
		return false
	}
	return zero.CanEncodeBinary(elem)
}

func (src Slice[T]) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	elem := ty.Kind().Elem()
	if ty.Kind().Code() != KindArray || elem == nil {
		return nil, errors.New("expected array type")
	}

	if len(src) > math.MaxInt32 {
		return nil, errors.New("value too large to transmit")
	}

	buf = pgio.AppendInt32(buf, 1) // number of dimensions
	nullsPos := len(buf)
	buf = pgio.AppendInt32(buf, 0) // has nulls, set below if one appears
	buf = pgio.AppendUint32(buf, uint32(elem.OID()))
	buf = pgio.AppendInt32(buf, int32(len(src)))
	buf = pgio.AppendInt32(buf, 1) // lower bound

	for _, e := range src {
		sp := len(buf)
		buf = pgio.AppendInt32(buf, -1)

		elemBuf, err := e.EncodeBinary(si, elem, buf)
		if err != nil {
			return nil, err
		}
		if elemBuf == nil {
			pgio.SetInt32(buf[nullsPos:], 1)
			continue
		}
		buf = elemBuf

		elemLen := len(buf[sp+4:])
		if elemLen > math.MaxInt32 {
			return nil, errors.New("value too large to transmit")
		}
		pgio.SetInt32(buf[sp:], int32(elemLen))
	}

	return buf, nil
}
