package pgvalue

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/jackc/pgio"
)

// Timestamp represents the PostgreSQL timestamp type. The PostgreSQL
// timestamp does not have a time zone. This presents a problem when
// translating to and from time.Time which requires a time zone. It is highly
// recommended to use timestamptz whenever possible. Decoded times are in UTC
// and encoding a non-UTC time is an error.
type Timestamp struct {
	Time time.Time // Time must always be in UTC.
	InfinityModifier
}

func (Timestamp) CanDecodeBinary(ty *Type) bool {
	return ty.OID() == TimestampOID
}

func (dst *Timestamp) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	if len(src) != 8 {
		return fmt.Errorf("invalid length for timestamp: %v", len(src))
	}

	microsecSinceY2K := int64(binary.BigEndian.Uint64(src))

	switch microsecSinceY2K {
	case infinityMicrosecondOffset:
		*dst = Timestamp{InfinityModifier: Infinity}
	case negativeInfinityMicrosecondOffset:
		*dst = Timestamp{InfinityModifier: NegativeInfinity}
	default:
		microsecSinceUnixEpoch := microsecFromUnixEpochToY2K + microsecSinceY2K
		tim := time.Unix(microsecSinceUnixEpoch/1000000, (microsecSinceUnixEpoch%1000000)*1000).UTC()
		*dst = Timestamp{Time: tim}
	}

	return nil
}

func (Timestamp) CanEncodeBinary(ty *Type) bool {
	return ty.OID() == TimestampOID
}

func (src Timestamp) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	if src.InfinityModifier == None && src.Time.Location() != time.UTC {
		return nil, fmt.Errorf("cannot encode non-UTC time into timestamp")
	}

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
