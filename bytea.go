package pgvalue

// Bytea represents the PostgreSQL bytea type. The binary format is the raw
// bytes with no internal framing, so any payload length is valid.
type Bytea []byte

func (Bytea) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == ByteaOID
}

func (dst *Bytea) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	*dst = make(Bytea, len(src))
	copy(*dst, src)
	return nil
}

func (Bytea) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == ByteaOID
}

func (src Bytea) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	return append(buf, src...), nil
}
