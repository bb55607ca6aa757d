package pgvalue

import (
	"encoding/binary"
	"fmt"

	"github.com/jackc/pgio"
)

// OIDValue represents a column value of the PostgreSQL oid type. OID is the
// identifier used by type descriptors; OIDValue is the conversion
// representation for oid values read from or written to the wire.
type OIDValue uint32

func (OIDValue) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == OIDOID
}

func (dst *OIDValue) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) != 4 {
		return fmt.Errorf("invalid length for oid: %v", len(src))
	}

	*dst = OIDValue(binary.BigEndian.Uint32(src))
	return nil
}

func (OIDValue) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == OIDOID
}

func (src OIDValue) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	return pgio.AppendUint32(buf, uint32(src)), nil
}
