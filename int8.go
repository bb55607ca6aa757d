package pgvalue

import (
	"encoding/binary"
	"fmt"

	"github.com/jackc/pgio"
)

// Int8 represents the PostgreSQL int8 (bigint) type.
type Int8 int64

func (Int8) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == Int8OID
}

func (dst *Int8) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) != 8 {
		return fmt.Errorf("invalid length for int8: %v", len(src))
	}

	*dst = Int8(binary.BigEndian.Uint64(src))
	return nil
}

func (Int8) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == Int8OID
}

func (src Int8) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	return pgio.AppendInt64(buf, int64(src)), nil
}
