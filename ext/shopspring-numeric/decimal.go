// Package numeric integrates github.com/shopspring/decimal with the pgvalue
// conversion contract.
package numeric

import (
	"fmt"

	"github.com/jackc/pgvalue"
	"github.com/shopspring/decimal"
)

// Numeric wraps decimal.Decimal so it can be converted directly to and from
// the PostgreSQL numeric type. decimal.Decimal cannot represent NaN or the
// infinities, so decoding those wire values fails with a conversion error.
type Numeric struct {
	Decimal decimal.Decimal
}

func (Numeric) CanDecodeBinary(ty *pgvalue.Type) bool {
	return ty.OID() == pgvalue.NumericOID
}

func (dst *Numeric) DecodeBinary(si *pgvalue.SessionInfo, ty *pgvalue.Type, src []byte) error {
	var num pgvalue.Numeric
	if err := num.DecodeBinary(si, ty, src); err != nil {
		return err
	}

	if num.NaN {
		return fmt.Errorf("cannot decode NaN into decimal.Decimal")
	}
	if num.InfinityModifier != pgvalue.None {
		return fmt.Errorf("cannot decode %v into decimal.Decimal", num.InfinityModifier)
	}

	*dst = Numeric{Decimal: decimal.NewFromBigInt(num.Int, num.Exp)}
	return nil
}

func (Numeric) CanEncodeBinary(ty *pgvalue.Type) bool {
	return ty.OID() == pgvalue.NumericOID
}

func (src Numeric) EncodeBinary(si *pgvalue.SessionInfo, ty *pgvalue.Type, buf []byte) ([]byte, error) {
	num := pgvalue.Numeric{Int: src.Decimal.Coefficient(), Exp: src.Decimal.Exponent()}
	return num.EncodeBinary(si, ty, buf)
}
