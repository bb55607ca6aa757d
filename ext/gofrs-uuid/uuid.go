// Package uuid integrates github.com/gofrs/uuid with the pgvalue conversion
// contract.
package uuid

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgvalue"
)

// UUID wraps uuid.UUID so it can be converted directly to and from the
// PostgreSQL uuid type.
type UUID struct {
	UUID uuid.UUID
}

func (UUID) CanDecodeBinary(ty *pgvalue.Type) bool {
	return ty.OID() == pgvalue.UUIDOID
}

func (dst *UUID) DecodeBinary(si *pgvalue.SessionInfo, ty *pgvalue.Type, src []byte) error {
	if len(src) != 16 {
		return fmt.Errorf("invalid length for UUID: %v", len(src))
	}

	copy(dst.UUID[:], src)
	return nil
}

func (UUID) CanEncodeBinary(ty *pgvalue.Type) bool {
	return ty.OID() == pgvalue.UUIDOID
}

func (src UUID) EncodeBinary(si *pgvalue.SessionInfo, ty *pgvalue.Type, buf []byte) ([]byte, error) {
	return append(buf, src.UUID[:]...), nil
}
