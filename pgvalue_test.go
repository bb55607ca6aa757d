package pgvalue_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTypeForOID(t testing.TB, oid pgvalue.OID) *pgvalue.Type {
	t.Helper()

	ty, ok := pgvalue.TypeForOID(oid)
	if !ok {
		t.Fatalf("no catalog type for OID %d", oid)
	}
	return ty
}

func TestDecode(t *testing.T) {
	int4Type := mustTypeForOID(t, pgvalue.Int4OID)

	var n pgvalue.Int4
	err := pgvalue.Decode(nil, int4Type, []byte{0, 0, 0, 0x2a}, &n)
	require.NoError(t, err)
	require.EqualValues(t, 42, n)
}

func TestDecodeWrongTypeLeavesDstUntouched(t *testing.T) {
	textType := mustTypeForOID(t, pgvalue.TextOID)

	n := pgvalue.Int4(7)
	err := pgvalue.Decode(nil, textType, []byte{0, 0, 0, 1}, &n)

	var wrongTypeErr *pgvalue.WrongTypeError
	require.True(t, errors.As(err, &wrongTypeErr))
	assert.Equal(t, textType, wrongTypeErr.Type)
	assert.EqualValues(t, 7, n)
}

func TestDecodeNullWithoutNullDecoder(t *testing.T) {
	int4Type := mustTypeForOID(t, pgvalue.Int4OID)

	n := pgvalue.Int4(7)
	err := pgvalue.Decode(nil, int4Type, nil, &n)
	require.ErrorIs(t, err, pgvalue.ErrWasNull)
	assert.EqualValues(t, 7, n)
}

func TestDecodeWrapsCodecErrors(t *testing.T) {
	int4Type := mustTypeForOID(t, pgvalue.Int4OID)

	var n pgvalue.Int4
	err := pgvalue.Decode(nil, int4Type, []byte{0, 0, 1}, &n)

	var convErr *pgvalue.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, int4Type, convErr.Type)
	assert.Error(t, convErr.Err)
}

func TestEncode(t *testing.T) {
	int4Type := mustTypeForOID(t, pgvalue.Int4OID)

	buf, err := pgvalue.Encode(nil, int4Type, pgvalue.Int4(42), nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0x2a}, buf)
}

func TestEncodeWrongTypeAppendsNothing(t *testing.T) {
	textType := mustTypeForOID(t, pgvalue.TextOID)

	original := []byte{0xde, 0xad}
	buf, err := pgvalue.Encode(nil, textType, pgvalue.Int4(42), original)

	var wrongTypeErr *pgvalue.WrongTypeError
	require.True(t, errors.As(err, &wrongTypeErr))
	assert.Nil(t, buf)
	assert.Equal(t, []byte{0xde, 0xad}, original)
}

// A zero-length payload and NULL must stay distinguishable: encoding an
// empty bytea with a nil buf returns an empty non-nil buffer, while a NULL
// returns nil.
func TestEncodeEmptyValueWithNilBuf(t *testing.T) {
	byteaType := mustTypeForOID(t, pgvalue.ByteaOID)

	buf, err := pgvalue.Encode(nil, byteaType, pgvalue.Bytea{}, nil)
	require.NoError(t, err)
	require.NotNil(t, buf)
	require.Len(t, buf, 0)

	buf, err = pgvalue.Encode(nil, byteaType, pgvalue.Null[pgvalue.Bytea]{}, nil)
	require.NoError(t, err)
	require.Nil(t, buf)
}

func TestEncodeWrapsCodecErrors(t *testing.T) {
	timestampType := mustTypeForOID(t, pgvalue.TimestampOID)

	src := pgvalue.Timestamp{Time: mustParseTimeInLocation(t, "2006-01-02 15:04:05", "2015-02-01 00:00:00", "America/Chicago")}
	buf, err := pgvalue.Encode(nil, timestampType, src, nil)

	var convErr *pgvalue.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Nil(t, buf)
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		ty     *pgvalue.Type
		result string
	}{
		{ty: mustTypeForOID(t, pgvalue.Int4OID), result: "int4"},
		{ty: pgvalue.NewType("citext", 17381, pgvalue.SimpleKind(), "public"), result: "citext"},
		{ty: pgvalue.NewType("mood", 17392, pgvalue.SimpleKind(), "app"), result: "app.mood"},
	}

	for i, tt := range tests {
		if s := tt.ty.String(); s != tt.result {
			t.Errorf("%d: expected %q, got %q", i, tt.result, s)
		}
	}
}

func TestTypeEqual(t *testing.T) {
	int4Type := mustTypeForOID(t, pgvalue.Int4OID)
	int4Dup := pgvalue.NewType("int4", pgvalue.Int4OID, pgvalue.SimpleKind(), "pg_catalog")
	arrayDup := pgvalue.NewType("_int4", pgvalue.Int4ArrayOID, pgvalue.ArrayKind(int4Dup), "pg_catalog")

	assert.True(t, int4Type.Equal(int4Type))
	assert.True(t, int4Type.Equal(int4Dup))
	assert.True(t, mustTypeForOID(t, pgvalue.Int4ArrayOID).Equal(arrayDup))

	assert.False(t, int4Type.Equal(mustTypeForOID(t, pgvalue.Int8OID)))
	assert.False(t, int4Type.Equal(nil))
	assert.False(t, int4Type.Equal(pgvalue.NewType("int4", pgvalue.Int4OID, pgvalue.SimpleKind(), "other")))
	assert.False(t, int4Type.Equal(pgvalue.NewType("int4", pgvalue.Int4OID, pgvalue.ArrayKind(int4Dup), "pg_catalog")))
}

func TestSessionInfoParameter(t *testing.T) {
	si := pgvalue.NewSessionInfo(map[string]string{
		"server_version":  "14.2",
		"client_encoding": "UTF8",
	})

	v, ok := si.Parameter("client_encoding")
	require.True(t, ok)
	require.Equal(t, "UTF8", v)

	_, ok = si.Parameter("TimeZone")
	require.False(t, ok)

	var nilSI *pgvalue.SessionInfo
	_, ok = nilSI.Parameter("server_version")
	require.False(t, ok)
}

func TestTypeForOIDUnknownOID(t *testing.T) {
	ty, ok := pgvalue.TypeForOID(0)
	require.False(t, ok)
	require.Nil(t, ty)
}
