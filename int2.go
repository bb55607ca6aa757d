package pgvalue

import (
	"encoding/binary"
	"fmt"

	"github.com/jackc/pgio"
)

// Int2 represents the PostgreSQL int2 (smallint) type.
type Int2 int16

func (Int2) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == Int2OID
}

func (dst *Int2) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) != 2 {
		return fmt.Errorf("invalid length for int2: %v", len(src))
	}

	*dst = Int2(binary.BigEndian.Uint16(src))
	return nil
}

func (Int2) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == Int2OID
}

func (src Int2) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	return pgio.AppendInt16(buf, int16(src)), nil
}
