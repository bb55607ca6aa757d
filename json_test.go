package pgvalue_test

import (
	"bytes"
	"testing"

	"github.com/jackc/pgvalue"
)

func TestJSONTranscode(t *testing.T) {
	jsonType := mustTypeForOID(t, pgvalue.JSONOID)

	successfulTests := []struct {
		value pgvalue.JSON
	}{
		{value: pgvalue.JSON(`null`)},
		{value: pgvalue.JSON(`42`)},
		{value: pgvalue.JSON(`"foo"`)},
		{value: pgvalue.JSON(`[1,2,3]`)},
		{value: pgvalue.JSON(`{"a":{"b":1},"c":null}`)},
	}

	for i, tt := range successfulTests {
		buf, err := pgvalue.Encode(nil, jsonType, tt.value, nil)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if !bytes.Equal(buf, []byte(tt.value)) {
			t.Errorf("%d: expected %s to encode to itself, but it was %v", i, tt.value, buf)
			continue
		}

		var r pgvalue.JSON
		if err := pgvalue.Decode(nil, jsonType, buf, &r); err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if !bytes.Equal(r, tt.value) {
			t.Errorf("%d: expected %s to round trip, but got %s", i, tt.value, r)
		}
	}
}

// The jsonb wire format carries a version byte before the document; the
// document held in Go never includes it.
func TestJSONBVersionByte(t *testing.T) {
	jsonbType := mustTypeForOID(t, pgvalue.JSONBOID)

	buf, err := pgvalue.Encode(nil, jsonbType, pgvalue.JSON(`{"a":1}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) == 0 || buf[0] != 1 {
		t.Fatalf("expected leading version byte 1, got %v", buf)
	}
	if !bytes.Equal(buf[1:], []byte(`{"a":1}`)) {
		t.Errorf("expected document after version byte, got %v", buf[1:])
	}

	var r pgvalue.JSON
	if err := pgvalue.Decode(nil, jsonbType, buf, &r); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(r, []byte(`{"a":1}`)) {
		t.Errorf("expected version byte to be stripped, got %s", r)
	}
}

func TestJSONDecodeBinaryErrors(t *testing.T) {
	jsonType := mustTypeForOID(t, pgvalue.JSONOID)
	jsonbType := mustTypeForOID(t, pgvalue.JSONBOID)

	tests := []struct {
		ty  *pgvalue.Type
		src []byte
	}{
		{ty: jsonbType, src: []byte{}},                  // no version byte
		{ty: jsonbType, src: []byte{2, '{', '}'}},       // unknown version
		{ty: jsonbType, src: []byte{1, '{'}},            // malformed document
		{ty: jsonType, src: []byte(`{"a":`)},            // malformed document
		{ty: jsonType, src: []byte{}},                   // empty document
	}

	for i, tt := range tests {
		var r pgvalue.JSON
		if err := pgvalue.Decode(nil, tt.ty, tt.src, &r); err == nil {
			t.Errorf("%d: expected error decoding %v as %s", i, tt.src, tt.ty)
		}
	}
}
