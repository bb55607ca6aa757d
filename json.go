package pgvalue

import (
	"encoding/json"
	"errors"
	"fmt"
)

// JSON represents the PostgreSQL json and jsonb types. It holds the document
// bytes; the jsonb binary format's leading version byte is stripped on decode
// and added on encode depending on the wire type.
type JSON []byte

func jsonAccepts(ty *Type) bool {
	switch ty.OID() {
	case JSONOID, JSONBOID:
		return true
	}
	return false
}

func (JSON) CanDecodeBinary(ty *Type) bool {
	return jsonAccepts(ty)
}

func (dst *JSON) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if ty.OID() == JSONBOID {
		if len(src) == 0 {
			return errors.New("jsonb too short")
		}
		if src[0] != 1 {
			return fmt.Errorf("unknown jsonb version number %d", src[0])
		}
		src = src[1:]
	}

	if !json.Valid(src) {
		return errors.New("malformed json")
	}

	*dst = make(JSON, len(src))
	copy(*dst, src)
	return nil
}

func (JSON) CanEncodeBinary(ty *Type) bool {
	return jsonAccepts(ty)
}

func (src JSON) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	if ty.OID() == JSONBOID {
		buf = append(buf, 1)
	}

	return append(buf, src...), nil
}
