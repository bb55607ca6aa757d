package pgvalue

import (
	"errors"
	"unicode/utf8"
)

// Text represents the PostgreSQL character types varchar, text, bpchar, and
// name. It also accepts the citext extension type, matched by name alone.
type Text string

func textAccepts(ty *Type) bool {
	switch ty.OID() {
	case VarcharOID, TextOID, BPCharOID, NameOID:
		return true
	}
	return ty.Name() == "citext"
}

func (Text) CanDecodeBinary(ty *Type) bool {
	return textAccepts(ty)
}

func (dst *Text) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if !utf8.Valid(src) {
		return errors.New("invalid UTF-8 sequence")
	}

	*dst = Text(src)
	return nil
}

func (Text) CanEncodeBinary(ty *Type) bool {
	return textAccepts(ty)
}

func (src Text) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	return append(buf, src...), nil
}
