// Package numeric integrates github.com/cockroachdb/apd with the pgvalue
// conversion contract.
package numeric

import (
	"math/big"

	"github.com/cockroachdb/apd"
	"github.com/jackc/pgvalue"
)

// Numeric wraps apd.Decimal so it can be converted directly to and from the
// PostgreSQL numeric type. The wire NaN maps to Form == apd.NaN and the wire
// infinities map to Form == apd.Infinite with the sign in Negative.
type Numeric struct {
	Decimal apd.Decimal
}

func (Numeric) CanDecodeBinary(ty *pgvalue.Type) bool {
	return ty.OID() == pgvalue.NumericOID
}

func (dst *Numeric) DecodeBinary(si *pgvalue.SessionInfo, ty *pgvalue.Type, src []byte) error {
	var num pgvalue.Numeric
	if err := num.DecodeBinary(si, ty, src); err != nil {
		return err
	}

	switch {
	case num.NaN:
		*dst = Numeric{Decimal: apd.Decimal{Form: apd.NaN}}
		return nil
	case num.InfinityModifier == pgvalue.Infinity:
		*dst = Numeric{Decimal: apd.Decimal{Form: apd.Infinite}}
		return nil
	case num.InfinityModifier == pgvalue.NegativeInfinity:
		*dst = Numeric{Decimal: apd.Decimal{Form: apd.Infinite, Negative: true}}
		return nil
	}

	d := apd.Decimal{Exponent: num.Exp}
	d.Coeff.Set(num.Int)
	if d.Coeff.Sign() < 0 {
		d.Negative = true
		d.Coeff.Abs(&d.Coeff)
	}

	*dst = Numeric{Decimal: d}
	return nil
}

func (Numeric) CanEncodeBinary(ty *pgvalue.Type) bool {
	return ty.OID() == pgvalue.NumericOID
}

func (src Numeric) EncodeBinary(si *pgvalue.SessionInfo, ty *pgvalue.Type, buf []byte) ([]byte, error) {
	var num pgvalue.Numeric

	switch src.Decimal.Form {
	case apd.NaN, apd.NaNSignaling:
		num = pgvalue.Numeric{NaN: true}
	case apd.Infinite:
		if src.Decimal.Negative {
			num = pgvalue.Numeric{InfinityModifier: pgvalue.NegativeInfinity}
		} else {
			num = pgvalue.Numeric{InfinityModifier: pgvalue.Infinity}
		}
	default:
		coeff := new(big.Int).Set(&src.Decimal.Coeff)
		if src.Decimal.Negative {
			coeff.Neg(coeff)
		}
		num = pgvalue.Numeric{Int: coeff, Exp: src.Decimal.Exponent}
	}

	return num.EncodeBinary(si, ty, buf)
}
