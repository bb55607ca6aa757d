package pgvalue

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/jackc/pgio"
)

// Hstore represents the PostgreSQL hstore extension type, a map from string
// keys to nullable string values. Because hstore is an extension its OID is
// assigned per database, so the type is matched by name alone.
type Hstore map[string]*string

func hstoreAccepts(ty *Type) bool {
	return ty.Name() == "hstore"
}

func (Hstore) CanDecodeBinary(ty *Type) bool {
	return hstoreAccepts(ty)
}

func (dst *Hstore) DecodeBinary(si *SessionInfo, ty *Type, src []byte) error {
	rp := 0

	if len(src[rp:]) < 4 {
		return fmt.Errorf("hstore incomplete %v", src)
	}
	pairCount := int(int32(binary.BigEndian.Uint32(src[rp:])))
	rp += 4
	if pairCount < 0 {
		return fmt.Errorf("invalid hstore pair count: %d", pairCount)
	}

	hstore := make(Hstore, pairCount)

	for i := 0; i < pairCount; i++ {
		if len(src[rp:]) < 4 {
			return fmt.Errorf("hstore incomplete %v", src)
		}
		keyLen := int(int32(binary.BigEndian.Uint32(src[rp:])))
		rp += 4
		if keyLen < 0 {
			return fmt.Errorf("invalid hstore key length: %d", keyLen)
		}
		if len(src[rp:]) < keyLen {
			return fmt.Errorf("hstore incomplete %v", src)
		}
		key := src[rp : rp+keyLen]
		rp += keyLen
		if !utf8.Valid(key) {
			return errors.New("invalid UTF-8 sequence")
		}

		if len(src[rp:]) < 4 {
			return fmt.Errorf("hstore incomplete %v", src)
		}
		valueLen := int(int32(binary.BigEndian.Uint32(src[rp:])))
		rp += 4

		// A negative value length marks a NULL value.
		if valueLen < 0 {
			hstore[string(key)] = nil
			continue
		}

		if len(src[rp:]) < valueLen {
			return fmt.Errorf("hstore incomplete %v", src)
		}
		value := src[rp : rp+valueLen]
		rp += valueLen
		if !utf8.Valid(value) {
			return errors.New("invalid UTF-8 sequence")
		}

		s := string(value)
		hstore[string(key)] = &s
	}

	// Bytes past the last entry are ignored.

	*dst = hstore
	return nil
}

func (Hstore) CanEncodeBinary(ty *Type) bool {
	return hstoreAccepts(ty)
}

func (src Hstore) EncodeBinary(si *SessionInfo, ty *Type, buf []byte) ([]byte, error) {
	if len(src) > math.MaxInt32 {
		return nil, errors.New("value too large to transmit")
	}
	buf = pgio.AppendInt32(buf, int32(len(src)))

	for k, v := range src {
		if len(k) > math.MaxInt32 {
			return nil, errors.New("value too large to transmit")
		}
		buf = pgio.AppendInt32(buf, int32(len(k)))
		buf = append(buf, k...)

		if v == nil {
			buf = pgio.AppendInt32(buf, -1)
			continue
		}

		if len(*v) > math.MaxInt32 {
			return nil, errors.New("value too large to transmit")
		}
		buf = pgio.AppendInt32(buf, int32(len(*v)))
		buf = append(buf, *v...)
	}

	return buf, nil
}
