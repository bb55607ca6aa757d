package pgvalue

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/jackc/pgio"
)

const (
	negativeInfinityDayOffset = -2147483648
	infinityDayOffset         = 2147483647
)

// Date represents the PostgreSQL date type. Only the year, month, and day of
// Time are transmitted.
type Date struct {
	Time time.Time
	InfinityModifier
}

func (Date) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == DateOID
}

func (dst *Date) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) != 4 {
		return fmt.Errorf("invalid length for date: %v", len(src))
	}

	dayOffset := int32(binary.BigEndian.Uint32(src))

	switch dayOffset {
	case infinityDayOffset:
		*dst = Date{InfinityModifier: Infinity}
	case negativeInfinityDayOffset:
		*dst = Date{InfinityModifier: NegativeInfinity}
	default:
		t := time.Date(2000, 1, int(1+dayOffset), 0, 0, 0, 0, time.UTC)
		*dst = Date{Time: t}
	}

	return nil
}

func (Date) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == DateOID
}

func (src Date) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	var daysSinceDateEpoch int32
	switch src.InfinityModifier {
	case None:
		tUnix := time.Date(src.Time.Year(), src.Time.Month(), src.Time.Day(), 0, 0, 0, 0, time.UTC).Unix()
		dateEpoch := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).Unix()

		secSinceDateEpoch := tUnix - dateEpoch
		daysSinceDateEpoch = int32(secSinceDateEpoch / 86400)
	case Infinity:
		daysSinceDateEpoch = infinityDayOffset
	case NegativeInfinity:
		daysSinceDateEpoch = negativeInfinityDayOffset
	}

	return pgio.AppendInt32(buf, daysSinceDateEpoch), nil
}
