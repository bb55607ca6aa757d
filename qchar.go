package pgvalue

import (
	"fmt"
)

// QChar represents PostgreSQL's special 8-bit-only "char" type, more akin
// to the C language's char than to the SQL standard char (which is bpchar
// in the catalog). The name in PostgreSQL itself is "char", in
// double-quotes. It is used a lot in the system tables to hold a single
// ASCII character value, e.g. pg_class.relkind. It is named QChar, for
// quoted char, to disambiguate it from the SQL standard type.
type QChar int8

func (QChar) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == QCharOID
}

func (dst *QChar) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) != 1 {
		return fmt.Errorf(`invalid length for "char": %v`, len(src))
	}

	*dst = QChar(src[0])
	return nil
}

func (QChar) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == QCharOID
}

func (src QChar) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	return append(buf, byte(src)), nil
}
