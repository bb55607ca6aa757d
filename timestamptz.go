package pgvalue

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/jackc/pgio"
)

const microsecFromUnixEpochToY2K = 946684800 * 1000000

const (
	negativeInfinityMicrosecondOffset = -9223372036854775808
	infinityMicrosecondOffset         = 9223372036854775807
)

// Timestamptz represents the PostgreSQL timestamptz type, an absolute instant
// in time. The wire format carries no zone; decoded times are in the local
// time zone.
type Timestamptz struct {
	Time time.Time
	InfinityModifier
}

func (Timestamptz) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == TimestamptzOID
}

func (dst *Timestamptz) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) != 8 {
		return fmt.Errorf("invalid length for timestamptz: %v", len(src))
	}

	microsecSinceY2K := int64(binary.BigEndian.Uint64(src))

	switch microsecSinceY2K {
	case infinityMicrosecondOffset:
		*dst = Timestamptz{InfinityModifier: Infinity}
	case negativeInfinityMicrosecondOffset:
		*dst = Timestamptz{InfinityModifier: NegativeInfinity}
	default:
		microsecSinceUnixEpoch := microsecFromUnixEpochToY2K + microsecSinceY2K
		tim := time.Unix(microsecSinceUnixEpoch/1000000, (microsecSinceUnixEpoch%1000000)*1000)
		*dst = Timestamptz{Time: tim}
	}

	return nil
}

func (Timestamptz) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == TimestamptzOID
}

func (src Timestamptz) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	var microsecSinceY2K int64
	switch src.InfinityModifier {
	case None:
		microsecSinceUnixEpoch := src.Time.Unix()*1000000 + int64(src.Time.Nanosecond())/1000
		microsecSinceY2K = microsecSinceUnixEpoch - microsecFromUnixEpochToY2K
	case Infinity:
		microsecSinceY2K = infinityMicrosecondOffset
	case NegativeInfinity:
		microsecSinceY2K = negativeInfinityMicrosecondOffset
	}

	return pgio.AppendInt64(buf, microsecSinceY2K), nil
}
