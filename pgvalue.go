package pgvalue

import (
	"fmt"
)

// OID is a PostgreSQL object identifier. The server assigns one to every
// data type it knows about.
type OID uint32

// KindCode is the structural class of a type.
type KindCode int

const (
	KindSimple KindCode = iota
	KindArray
	KindRange
)

// Kind classifies a Type as a simple scalar, an array, or a range. Array
// and range kinds carry their element type.
type Kind struct {
	code KindCode
	elem *Type
}

// SimpleKind returns the kind of a scalar type.
func SimpleKind() Kind {
	return Kind{code: KindSimple}
}

// ArrayKind returns the kind of an array type with the given element type.
func ArrayKind(elem *Type) Kind {
	return Kind{code: KindArray, elem: elem}
}

// RangeKind returns the kind of a range type with the given element type.
func RangeKind(elem *Type) Kind {
	return Kind{code: KindRange, elem: elem}
}

func (k Kind) Code() KindCode {
	return k.code
}

// Elem returns the element type of an array or range kind. It is nil for a
// simple kind.
func (k Kind) Elem() *Type {
	return k.elem
}

func (k Kind) Equal(rhs Kind) bool {
	if k.code != rhs.code {
		return false
	}
	if k.elem == rhs.elem {
		return true
	}
	return k.elem.Equal(rhs.elem)
}

// Type describes a PostgreSQL data type. Descriptors for the types in the
// system catalog come from TypeForOID. Descriptors for any other type
// (enums, domains, composites, extension types) are created with NewType.
// A *Type is immutable after construction and may be aliased freely; copying
// the pointer never copies the underlying strings.
type Type struct {
	name   string
	oid    OID
	kind   Kind
	schema string
}

// NewType creates a descriptor for a type that is not in the system
// catalog, typically from a pg_type lookup performed by the connection
// layer. Each call allocates a fresh descriptor; descriptors for the same
// OID are not deduplicated.
func NewType(name string, oid OID, kind Kind, schema string) *Type {
	return &Type{name: name, oid: oid, kind: kind, schema: schema}
}

// OID returns the object identifier of the type.
func (t *Type) OID() OID {
	return t.oid
}

// Name returns the name of the type as it appears in pg_type.
func (t *Type) Name() string {
	return t.name
}

// Kind returns the structural classification of the type.
func (t *Type) Kind() Kind {
	return t.kind
}

// Schema returns the schema the type belongs to. It is pg_catalog for all
// catalog types.
func (t *Type) Schema() string {
	return t.schema
}

// Equal reports whether two descriptors describe the same type. Equality is
// structural over name, OID, kind, and schema, so independently constructed
// descriptors for the same type compare equal.
func (t *Type) Equal(rhs *Type) bool {
	if t == rhs {
		return true
	}
	if t == nil || rhs == nil {
		return false
	}
	return t.oid == rhs.oid && t.name == rhs.name && t.schema == rhs.schema && t.kind.Equal(rhs.kind)
}

// String renders the type name qualified by its schema, omitting the schema
// when it is public or pg_catalog.
func (t *Type) String() string {
	switch t.schema {
	case "public", "pg_catalog":
		return t.name
	default:
		return t.schema + "." + t.name
	}
}

// SessionInfo provides read-only access to the runtime parameters
// negotiated when the connection was established, such as server_version,
// client_encoding, and TimeZone. The connection layer supplies it; codecs
// borrow it for the duration of a single conversion and must not retain it.
type SessionInfo struct {
	parameters map[string]string
}

// NewSessionInfo wraps parameters in a SessionInfo. The map is not copied;
// the caller must not modify it while the SessionInfo is in use.
func NewSessionInfo(parameters map[string]string) *SessionInfo {
	return &SessionInfo{parameters: parameters}
}

// Parameter returns the value of the named runtime parameter. A nil
// SessionInfo has no parameters.
func (si *SessionInfo) Parameter(name string) (string, bool) {
	if si == nil {
		return "", false
	}
	v, ok := si.parameters[name]
	return v, ok
}

// BinaryDecoder is implemented by representations that can decode
// themselves from the PostgreSQL binary wire format.
type BinaryDecoder interface {
	// CanDecodeBinary reports whether values of the given type can be
	// decoded into this representation. It depends only on ty, never on the
	// current value of the receiver.
	CanDecodeBinary(ty *Type) bool

	// DecodeBinary decodes src into the receiver. src holds exactly one
	// value's non-NULL payload, already delimited by the protocol layer,
	// and is borrowed for the duration of the call: implementations must
	// copy any bytes they retain.
	DecodeBinary(si *SessionInfo, ty *Type, src []byte) error
}

// BinaryNullDecoder is implemented by representations that can hold the
// absence of a value. Decode uses it when the wire value is SQL NULL;
// representations that do not implement it fail such decodes with
// ErrWasNull.
type BinaryNullDecoder interface {
	DecodeBinaryNull(si *SessionInfo, ty *Type) error
}

// BinaryEncoder is implemented by representations that can encode
// themselves into the PostgreSQL binary wire format.
type BinaryEncoder interface {
	// CanEncodeBinary reports whether the representation can be encoded as
	// a value of the given type. It is independent of CanDecodeBinary: a
	// representation may support only one direction.
	CanEncodeBinary(ty *Type) bool

	// EncodeBinary appends the wire representation of the receiver to buf
	// and returns the extended buffer. If the value is SQL NULL it appends
	// nothing and returns nil. Encode passes a non-nil buf, so a zero-length
	// payload and NULL remain distinguishable in the return value.
	EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error)
}

// Decode converts the binary wire representation of a single value into
// dst. A nil src represents SQL NULL; it is decoded through
// BinaryNullDecoder when dst implements it and fails with ErrWasNull
// otherwise. Decode fails with *WrongTypeError, without touching dst, when
// dst does not accept ty. A malformed payload fails with *ConversionError.
func Decode(si *SessionInfo, ty *Type, src []byte, dst BinaryDecoder) error {
	if !dst.CanDecodeBinary(ty) {
		return &WrongTypeError{Type: ty, GoType: fmt.Sprintf("%T", dst)}
	}
	if src == nil {
		if nd, ok := dst.(BinaryNullDecoder); ok {
			return nd.DecodeBinaryNull(si, ty)
		}
		return ErrWasNull
	}
	if err := dst.DecodeBinary(si, ty, src); err != nil {
		return &ConversionError{Type: ty, Err: err}
	}
	return nil
}

// Encode appends the binary wire representation of src to buf and returns
// the extended buffer. A (nil, nil) return means src is SQL NULL and
// nothing was appended. Encode fails with *WrongTypeError, appending
// nothing, when src does not accept ty; values that cannot be represented
// on the wire fail with *ConversionError.
//
// Encode is the only entry point the surrounding driver should use; calling
// EncodeBinary directly bypasses the acceptance check.
func Encode(si *SessionInfo, ty *Type, src BinaryEncoder, buf []byte) ([]byte, error) {
	if !src.CanEncodeBinary(ty) {
		return nil, &WrongTypeError{Type: ty, GoType: fmt.Sprintf("%T", src)}
	}
	if buf == nil {
		buf = []byte{}
	}
	newBuf, err := src.EncodeBinary(si, ty, buf)
	if err != nil {
		return nil, &ConversionError{Type: ty, Err: err}
	}
	return newBuf, nil
}
