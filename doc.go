// Package pgvalue converts between Go values and the PostgreSQL binary wire format.
/*
pgvalue is the value conversion layer of a PostgreSQL client. Given a type
descriptor and the payload bytes of a single column value it produces the
corresponding Go value, and the reverse. It performs no network I/O and no
protocol framing: the surrounding driver delimits each value and supplies
its type OID, and this package converts exactly one value per call.

Type Identity

Every PostgreSQL data type has an OID. TypeForOID resolves the OIDs of the
system catalog to immutable *Type descriptors carrying the type's name,
schema, and kind (simple, array of an element type, or range of an element
type). Types outside the catalog, such as enums, domains, composites, and
extension types, are described with NewType from the name, OID, kind, and
schema discovered by a pg_type lookup. A *Type is shared by pointer; many
values can reference one descriptor without copying it.

Converting Values

Decode and Encode are the checked entry points. Both verify that the
representation accepts the PostgreSQL type before converting, so a mismatch
fails with *WrongTypeError instead of producing garbage bytes. Decode reads
a payload slice into a representation implementing BinaryDecoder; Encode
appends a representation implementing BinaryEncoder to a buffer. Acceptance
is independent per direction.

Null Values

Base representations hold non-NULL values only; decoding SQL NULL into one
fails with ErrWasNull. Null[T] wraps any representation and layers
nullability over it: it decodes NULL as absence, and encodes absence as
NULL by appending nothing.

Session Parameters

A SessionInfo carries the runtime parameters negotiated at connection time.
It is passed through every conversion for representations whose behavior
depends on them.

Extension Integrations

The ext subpackages integrate third party types over the core codecs:
github.com/gofrs/uuid, github.com/shopspring/decimal, and
github.com/cockroachdb/apd.
*/
package pgvalue
