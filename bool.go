package pgvalue

import (
	"fmt"
)

// Bool represents the PostgreSQL bool type.
type Bool bool

func (Bool) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == BoolOID
}

// DecodeBinary reads a single byte; any nonzero value is true.
func (dst *Bool) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) != 1 {
		return fmt.Errorf("invalid length for bool: %v", len(src))
	}

	*dst = src[0] != 0
	return nil
}

func (Bool) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == BoolOID
}

func (src Bool) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	if src {
		return append(buf, 1), nil
	}
	return append(buf, 0), nil
}
