package pgvalue

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jackc/pgio"
)

// Float8 represents the PostgreSQL float8 (double precision) type.
type Float8 float64

func (Float8) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == Float8OID
}

func (dst *Float8) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) != 8 {
		return fmt.Errorf("invalid length for float8: %v", len(src))
	}

	*dst = Float8(math.Float64frombits(binary.BigEndian.Uint64(src)))
	return nil
}

func (Float8) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == Float8OID
}

func (src Float8) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	return pgio.AppendUint64(buf, math.Float64bits(float64(src))), nil
}
