package pgvalue

import (
	"encoding/binary"
	"fmt"

	"github.com/jackc/pgio"
)

// Int4 represents the PostgreSQL int4 (integer) type.
type Int4 int32

func (Int4) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == Int4OID
}

func (dst *Int4) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) != 4 {
		return fmt.Errorf("invalid length for int4: %v", len(src))
	}

	*dst = Int4(binary.BigEndian.Uint32(src))
	return nil
}

func (Int4) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == Int4OID
}

func (src Int4) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	return pgio.AppendInt32(buf, int32(src)), nil
}
