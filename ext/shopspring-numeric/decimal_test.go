package numeric_test

import (
	"testing"

	"github.com/jackc/pgvalue"
	numeric "github.com/jackc/pgvalue/ext/shopspring-numeric"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustNumericType(t testing.TB) *pgvalue.Type {
	t.Helper()

	ty, ok := pgvalue.TypeForOID(pgvalue.NumericOID)
	require.True(t, ok)
	return ty
}

func TestNumericTranscode(t *testing.T) {
	numericType := mustNumericType(t)

	values := []string{
		"0",
		"1",
		"-1",
		"42",
		"12345.6789",
		"-0.00001",
		"1000000",
		"3.14159265358979323846264338327950288419",
	}

	for _, s := range values {
		src := numeric.Numeric{Decimal: decimal.RequireFromString(s)}

		buf, err := pgvalue.Encode(nil, numericType, src, nil)
		require.NoErrorf(t, err, "%s", s)

		var r numeric.Numeric
		err = pgvalue.Decode(nil, numericType, buf, &r)
		require.NoErrorf(t, err, "%s", s)

		require.Truef(t, r.Decimal.Equal(src.Decimal), "%s: round tripped to %s", s, r.Decimal)
	}
}

// decimal.Decimal has no representation for NaN or the infinities, so those
// wire values must fail rather than decode to something misleading.
func TestNumericDecodeBinaryNonFinite(t *testing.T) {
	numericType := mustNumericType(t)

	nonFinite := [][]byte{
		{0, 0, 0, 0, 0xc0, 0, 0, 0}, // NaN
		{0, 0, 0, 0, 0xd0, 0, 0, 0}, // infinity
		{0, 0, 0, 0, 0xf0, 0, 0, 0}, // -infinity
	}

	for i, src := range nonFinite {
		var r numeric.Numeric
		err := pgvalue.Decode(nil, numericType, src, &r)
		require.Errorf(t, err, "%d", i)
	}
}

func TestNumericWrongType(t *testing.T) {
	int4Type, ok := pgvalue.TypeForOID(pgvalue.Int4OID)
	require.True(t, ok)

	var wrongTypeErr *pgvalue.WrongTypeError
	_, err := pgvalue.Encode(nil, int4Type, numeric.Numeric{}, nil)
	require.ErrorAs(t, err, &wrongTypeErr)
}
