package pgvalue

import (
	"encoding/hex"
	"fmt"
)

// UUID represents the PostgreSQL uuid type.
type UUID [16]byte

func (UUID) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == UUIDOID
}

func (dst *UUID) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) != 16 {
		return fmt.Errorf("invalid length for UUID: %v", len(src))
	}

	copy(dst[:], src)
	return nil
}

func (UUID) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == UUIDOID
}

func (src UUID) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	return append(buf, src[:]...), nil
}

// String returns the UUID in standard 8-4-4-4-12 form.
func (src UUID) String() string {
	var buf [36]byte

	hex.Encode(buf[0:8], src[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], src[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], src[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], src[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], src[10:])

	return string(buf[:])
}
