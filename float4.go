package pgvalue

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jackc/pgio"
)

// Float4 represents the PostgreSQL float4 (real) type.
type Float4 float32

func (Float4) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == Float4OID
}

func (dst *Float4) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) != 4 {
		return fmt.Errorf("invalid length for float4: %v", len(src))
	}

	*dst = Float4(math.Float32frombits(binary.BigEndian.Uint32(src)))
	return nil
}

func (Float4) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == Float4OID
}

func (src Float4) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	return pgio.AppendUint32(buf, math.Float32bits(float32(src))), nil
}
