package pgvalue_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/jackc/pgvalue"
)

func numericEqual(a, b pgvalue.Numeric) bool {
	if a.NaN != b.NaN || a.InfinityModifier != b.InfinityModifier {
		return false
	}
	if a.NaN || a.InfinityModifier != pgvalue.None {
		return true
	}

	aInt, bInt := a.Int, b.Int
	if aInt == nil {
		aInt = big.NewInt(0)
	}
	if bInt == nil {
		bInt = big.NewInt(0)
	}
	return aInt.Cmp(bInt) == 0 && a.Exp == b.Exp
}

func TestNumericTranscode(t *testing.T) {
	numericType := mustTypeForOID(t, pgvalue.NumericOID)

	// result is the form decoding produces. It differs from src only where
	// decoding strips trailing zero digits into the exponent.
	successfulTests := []struct {
		src    pgvalue.Numeric
		wire   []byte
		result pgvalue.Numeric
	}{
		{
			src:    pgvalue.Numeric{Int: big.NewInt(0)},
			wire:   []byte{0, 0, 0xff, 0xff, 0, 0, 0, 0},
			result: pgvalue.Numeric{Int: big.NewInt(0)},
		},
		{
			src:    pgvalue.Numeric{Int: big.NewInt(42)},
			wire:   []byte{0, 1, 0, 0, 0, 0, 0, 0, 0, 42},
			result: pgvalue.Numeric{Int: big.NewInt(42)},
		},
		{
			src:    pgvalue.Numeric{Int: big.NewInt(-42)},
			wire:   []byte{0, 1, 0, 0, 0x40, 0, 0, 0, 0, 42},
			result: pgvalue.Numeric{Int: big.NewInt(-42)},
		},
		{
			// 12345.678
			src:    pgvalue.Numeric{Int: big.NewInt(12345678), Exp: -3},
			wire:   []byte{0, 3, 0, 1, 0, 0, 0, 3, 0, 1, 0x09, 0x29, 0x1a, 0x7c},
			result: pgvalue.Numeric{Int: big.NewInt(12345678), Exp: -3},
		},
		{
			// 0.1
			src:    pgvalue.Numeric{Int: big.NewInt(1), Exp: -1},
			wire:   []byte{0, 1, 0xff, 0xff, 0, 0, 0, 1, 0x03, 0xe8},
			result: pgvalue.Numeric{Int: big.NewInt(1), Exp: -1},
		},
		{
			// -0.00001
			src:    pgvalue.Numeric{Int: big.NewInt(-1), Exp: -5},
			wire:   []byte{0, 2, 0xff, 0xff, 0x40, 0, 0, 5, 0, 0, 0x03, 0xe8},
			result: pgvalue.Numeric{Int: big.NewInt(-1), Exp: -5},
		},
		{
			// 10000
			src:    pgvalue.Numeric{Int: big.NewInt(1), Exp: 4},
			wire:   []byte{0, 1, 0, 1, 0, 0, 0, 0, 0, 1},
			result: pgvalue.Numeric{Int: big.NewInt(1), Exp: 4},
		},
		{
			// 10000 written with the zeros in the coefficient decodes to the
			// reduced form above.
			src:    pgvalue.Numeric{Int: big.NewInt(10000)},
			wire:   []byte{0, 2, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0},
			result: pgvalue.Numeric{Int: big.NewInt(1), Exp: 4},
		},
		{
			src:    pgvalue.Numeric{Int: big.NewInt(99999999)},
			wire:   []byte{0, 2, 0, 1, 0, 0, 0, 0, 0x27, 0x0f, 0x27, 0x0f},
			result: pgvalue.Numeric{Int: big.NewInt(99999999)},
		},
		{
			src:    pgvalue.Numeric{Int: new(big.Int).Lsh(big.NewInt(1), 100)},
			wire:   nil,
			result: pgvalue.Numeric{Int: new(big.Int).Lsh(big.NewInt(1), 100)},
		},
		{
			src:    pgvalue.Numeric{NaN: true},
			wire:   []byte{0, 0, 0, 0, 0xc0, 0, 0, 0},
			result: pgvalue.Numeric{NaN: true},
		},
		{
			src:    pgvalue.Numeric{InfinityModifier: pgvalue.Infinity},
			wire:   []byte{0, 0, 0, 0, 0xd0, 0, 0, 0},
			result: pgvalue.Numeric{InfinityModifier: pgvalue.Infinity},
		},
		{
			src:    pgvalue.Numeric{InfinityModifier: pgvalue.NegativeInfinity},
			wire:   []byte{0, 0, 0, 0, 0xf0, 0, 0, 0},
			result: pgvalue.Numeric{InfinityModifier: pgvalue.NegativeInfinity},
		},
	}

	for i, tt := range successfulTests {
		buf, err := pgvalue.Encode(nil, numericType, tt.src, nil)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if tt.wire != nil && !bytes.Equal(buf, tt.wire) {
			t.Errorf("%d: expected %v to encode to %v, but it was %v", i, tt.src, tt.wire, buf)
			continue
		}

		var r pgvalue.Numeric
		if err := pgvalue.Decode(nil, numericType, buf, &r); err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if !numericEqual(r, tt.result) {
			t.Errorf("%d: expected %v to decode to %v, but it was %v", i, buf, tt.result, r)
		}
	}
}

// A nil Int is the zero value and transmits as zero.
func TestNumericEncodeBinaryNilInt(t *testing.T) {
	numericType := mustTypeForOID(t, pgvalue.NumericOID)

	buf, err := pgvalue.Encode(nil, numericType, pgvalue.Numeric{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	var r pgvalue.Numeric
	if err := pgvalue.Decode(nil, numericType, buf, &r); err != nil {
		t.Fatal(err)
	}
	if !numericEqual(r, pgvalue.Numeric{Int: big.NewInt(0)}) {
		t.Errorf("expected zero, got %v", r)
	}
}

func TestNumericDecodeBinaryErrors(t *testing.T) {
	numericType := mustTypeForOID(t, pgvalue.NumericOID)

	failTests := [][]byte{
		{},                     // no header
		{0, 1, 0, 0, 0, 0, 0},  // short header
		{0, 1, 0, 0, 0, 0, 0, 0},       // one digit declared, none present
		{0, 2, 0, 1, 0, 0, 0, 0, 0, 1}, // two digits declared, one present
	}

	for i, src := range failTests {
		var r pgvalue.Numeric
		if err := pgvalue.Decode(nil, numericType, src, &r); err == nil {
			t.Errorf("%d: expected error decoding %v, got %v", i, src, r)
		}
	}
}
