package pgvalue

import (
	"encoding/binary"
	"fmt"

	"github.com/jackc/pgio"
)

// Varbit represents the PostgreSQL bit and varbit types. Len is the number of
// bits; Bytes holds the bits packed most significant bit first, with unused
// bits in the final byte zeroed.
type Varbit struct {
	Bytes []byte
	Len   int32
}

func varbitAccepts(ty *Type) bool {
	switch ty.OID() {
	case BitOID, VarbitOID:
		return true
	}
	return false
}

func (Varbit) CanDecodeBinary(ty *Type) bool {
	return varbitAccepts(ty)
}

func (dst *Varbit) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) < 4 {
		return fmt.Errorf("invalid length for varbit: %v", len(src))
	}

	bitLen := int32(binary.BigEndian.Uint32(src))
	if bitLen < 0 {
		return fmt.Errorf("invalid bit count for varbit: %d", bitLen)
	}
	rp := 4

	byteLen := (int(bitLen) + 7) / 8
	if len(src[rp:]) != byteLen {
		return fmt.Errorf("invalid length for varbit: %v", len(src))
	}

	buf := make([]byte, byteLen)
	copy(buf, src[rp:])

	*dst = Varbit{Bytes: buf, Len: bitLen}
	return nil
}

func (Varbit) CanEncodeBinary(ty *Type) bool {
	return varbitAccepts(ty)
}

func (src Varbit) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	if src.Len < 0 || len(src.Bytes) != (int(src.Len)+7)/8 {
		return nil, fmt.Errorf("varbit has %d bytes for %d bits", len(src.Bytes), src.Len)
	}

	buf = pgio.AppendInt32(buf, src.Len)
	return append(buf, src.Bytes...), nil
}
