package pgvalue

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jackc/pgio"
)

// BoundType classifies one bound of a range.
type BoundType byte

const (
	Inclusive = BoundType('i')
	Exclusive = BoundType('e')
	Unbounded = BoundType('U')
	Empty     = BoundType('E')
)

func (bt BoundType) String() string {
	return string(bt)
}

const emptyMask = 1
const lowerInclusiveMask = 2
const upperInclusiveMask = 4
const lowerUnboundedMask = 8
const upperUnboundedMask = 16

// Range represents a range of T. It accepts any range type whose element
// type T accepts. An empty range has both bound types set to Empty; an
// unbounded bound carries no value. A NULL range is expressed by wrapping in
// Null[Range[T]], never by Range itself.
type Range[T any] struct {
	Lower     T
	Upper     T
	LowerType BoundType
	UpperType BoundType
}

func (r Range[T]) CanDecodeBinary(ty *Type) bool {
	if ty.Kind().Code() != KindRange {
		return false
	}
	elem := ty.Kind().Elem()
	if elem == nil {
		return false
	}

	if d, ok := any(&r.Lower).(BinaryDecoder); ok {
		return d.CanDecodeBinary(elem)
	}
	return false
}

func (dst *Range[T]) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	elem := ty.Kind().Elem()
	if ty.Kind().Code() != KindRange || elem == nil {
		return errors.New("expected range type")
	}

	if len(src) == 0 {
		return fmt.Errorf("invalid length for range: %v", len(src))
	}

	rangeType := src[0]
	rp := 1

	var r Range[T]

	if rangeType&emptyMask > 0 {
		if len(src[rp:]) > 0 {
			return fmt.Errorf("unexpected trailing bytes in empty range: %v", len(src[rp:]))
		}
		r.LowerType = Empty
		r.UpperType = Empty
		*dst = r
		return nil
	}

	if rangeType&lowerInclusiveMask > 0 {
		r.LowerType = Inclusive
	} else if rangeType&lowerUnboundedMask > 0 {
		r.LowerType = Unbounded
	} else {
		r.LowerType = Exclusive
	}

	if rangeType&upperInclusiveMask > 0 {
		r.UpperType = Inclusive
	} else if rangeType&upperUnboundedMask > 0 {
		r.UpperType = Unbounded
	} else {
		r.UpperType = Exclusive
	}

	if r.LowerType != Unbounded {
		bound, n, err := rangeBound(src[rp:])
		if err != nil {
			return err
		}
		rp += n

		d, ok := any(&r.Lower).(BinaryDecoder)
		if !ok {
			return fmt.Errorf("%T does not implement BinaryDecoder", r.Lower)
		}
		if err := d.DecodeBinary(si, elem, bound); err != nil {
			return err
		}
	}

	if r.UpperType != Unbounded {
		bound, n, err := rangeBound(src[rp:])
		if err != nil {
			return err
		}
		rp += n

		d, ok := any(&r.Upper).(BinaryDecoder)
		if !ok {
			return fmt.Errorf("%T does not implement BinaryDecoder", r.Upper)
		}
		if err := d.DecodeBinary(si, elem, bound); err != nil {
			return err
		}
	}

	if len(src[rp:]) > 0 {
		return fmt.Errorf("unexpected trailing bytes in range: %v", len(src[rp:]))
	}

	*dst = r
	return nil
}

// rangeBound reads one length-prefixed bound payload, returning the payload
// and the total bytes consumed.
func rangeBound(src []byte) ([]byte, int, error) {
	if len(src) < 4 {
		return nil, 0, fmt.Errorf("range incomplete %v", src)
	}
	boundLen := int(int32(binary.BigEndian.Uint32(src)))
	if boundLen < 0 {
		return nil, 0, fmt.Errorf("invalid range bound length: %d", boundLen)
	}
	if len(src[4:]) < boundLen {
		return nil, 0, fmt.Errorf("range incomplete %v", src)
	}
	return src[4 : 4+boundLen], 4 + boundLen, nil
}

func (r Range[T]) CanEncodeBinary(ty *Type) bool {
	if ty.Kind().Code() != KindRange {
		return false
	}
	elem := ty.Kind().Elem()
	if elem == nil {
		return false
	}

	if e, ok := any(r.Lower).(BinaryEncoder); ok {
		return e.CanEncodeBinary(elem)
	}
	return false
}

func (src Range[T]) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	elem := ty.Kind().Elem()
	if ty.Kind().Code() != KindRange || elem == nil {
		return nil, errors.New("expected range type")
	}

	var rangeType byte
	switch src.LowerType {
	case Inclusive:
		rangeType |= lowerInclusiveMask
	case Unbounded:
		rangeType |= lowerUnboundedMask
	case Exclusive:
	case Empty:
		return append(buf, emptyMask), nil
	default:
		return nil, fmt.Errorf("unknown LowerType: %v", src.LowerType)
	}

	switch src.UpperType {
	case Inclusive:
		rangeType |= upperInclusiveMask
	case Unbounded:
		rangeType |= upperUnboundedMask
	case Exclusive:
	default:
		return nil, fmt.Errorf("unknown UpperType: %v", src.UpperType)
	}

	buf = append(buf, rangeType)

	if src.LowerType != Unbounded {
		e, ok := any(src.Lower).(BinaryEncoder)
		if !ok {
			return nil, fmt.Errorf("%T does not implement BinaryEncoder", src.Lower)
		}

		sp := len(buf)
		buf = pgio.AppendInt32(buf, -1)

		lowerBuf, err := e.EncodeBinary(si, elem, buf)
		if err != nil {
			return nil, err
		}
		if lowerBuf == nil {
			return nil, fmt.Errorf("Lower cannot be null unless LowerType is Unbounded")
		}
		buf = lowerBuf

		pgio.SetInt32(buf[sp:], int32(len(buf[sp:])-4))
	}

	if src.UpperType != Unbounded {
		e, ok := any(src.Upper).(BinaryEncoder)
		if !ok {
			return nil, fmt.Errorf("%T does not implement BinaryEncoder", src.Upper)
		}

		sp := len(buf)
		buf = pgio.AppendInt32(buf, -1)

		upperBuf, err := e.EncodeBinary(si, elem, buf)
		if err != nil {
			return nil, err
		}
		if upperBuf == nil {
			return nil, fmt.Errorf("Upper cannot be null unless UpperType is Unbounded")
		}
		buf = upperBuf

		pgio.SetInt32(buf[sp:], int32(len(buf[sp:])-4))
	}

	return buf, nil
}
