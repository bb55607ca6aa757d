package pgvalue_test

import (
	"bytes"
	"testing"

	"github.com/jackc/pgvalue"
)

func TestBoolDecodeBinary(t *testing.T) {
	boolType := mustTypeForOID(t, pgvalue.BoolOID)

	successfulTests := []struct {
		src    []byte
		result pgvalue.Bool
	}{
		{src: []byte{0}, result: false},
		{src: []byte{1}, result: true},
		{src: []byte{2}, result: true},
		{src: []byte{255}, result: true},
	}

	for i, tt := range successfulTests {
		var b pgvalue.Bool
		err := pgvalue.Decode(nil, boolType, tt.src, &b)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if b != tt.result {
			t.Errorf("%d: expected %v to decode to %v, but it was %v", i, tt.src, tt.result, b)
		}
	}

	for i, src := range [][]byte{{}, {0, 1}} {
		var b pgvalue.Bool
		if err := pgvalue.Decode(nil, boolType, src, &b); err == nil {
			t.Errorf("%d: expected error decoding %v", i, src)
		}
	}
}

func TestBoolEncodeBinary(t *testing.T) {
	boolType := mustTypeForOID(t, pgvalue.BoolOID)

	successfulTests := []struct {
		src    pgvalue.Bool
		result []byte
	}{
		{src: false, result: []byte{0}},
		{src: true, result: []byte{1}},
	}

	for i, tt := range successfulTests {
		buf, err := pgvalue.Encode(nil, boolType, tt.src, nil)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if !bytes.Equal(buf, tt.result) {
			t.Errorf("%d: expected %v to encode to %v, but it was %v", i, tt.src, tt.result, buf)
		}
	}
}
