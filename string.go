// Copyright 2020 Aleksandr Demakin. All rights reserved.

package float128

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/avdva/float128/internal/uint128"
)

var errRange = fmt.Errorf("value out of range")

// String returns the shortest decimal representation that parses back to f.
// NaNs render as "NaN", infinities as "+Inf" and "-Inf".
func (f Float128) String() string {
	return f.Text('g', -1)
}

// Text returns a string representation in the given format and precision,
// with the same format verbs as big.Float.Text.
func (f Float128) Text(format byte, prec int) string {
	switch {
	case f.IsNaN():
		return "NaN"
	case f.IsInf(1):
		return "+Inf"
	case f.IsInf(-1):
		return "-Inf"
	case f.IsZero():
		if signOf(f) {
			return "-0"
		}
		return "0"
	}
	return f.BigFloat().Text(format, prec)
}

// GoString returns a debug representation with the raw bit pattern.
func (f Float128) GoString() string {
	return fmt.Sprintf("%s {0x%016x, 0x%016x}", f.String(), f.hi, f.lo)
}

// BigFloat returns an exact big.Float representation of f with 113 bits of
// precision. It panics if f is a NaN, which big.Float cannot represent.
func (f Float128) BigFloat() *big.Float {
	if f.IsNaN() {
		panic("float128: cannot represent NaN as a big.Float")
	}
	neg := signOf(f)
	bf := new(big.Float).SetPrec(fracBits + 1)
	if !f.IsFinite() {
		bf.SetInf(neg)
		return bf
	}
	_, exp, sig := unpack(f)
	if sig.IsZero() {
		if neg {
			bf.Neg(bf)
		}
		return bf
	}
	bf.SetInt(bigFromUint128(sig))
	bf.SetMantExp(bf, int(exp)-bias-fracBits)
	if neg {
		bf.Neg(bf)
	}
	return bf
}

// Parse converts a string to a Float128, rounding to nearest-even. It
// accepts everything big.ParseFloat does with base 0 (decimal, hex floats
// with a p exponent, binary), plus "NaN" and the infinity spellings.
// Values above the finite range return an infinity and a wrapped
// errRange-style error. Values that underflow to zero return a signed
// zero with no error.
func Parse(s string) (Float128, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nan":
		return NaN(), nil
	case "inf", "+inf", "infinity", "+infinity":
		return Inf(1), nil
	case "-inf", "-infinity":
		return Inf(-1), nil
	}
	// Parse with truncation at two guard bits past the significand and force
	// the low bit on when digits were dropped. That is a round-to-odd at 115
	// bits, and rounding the odd intermediate to the final grid cannot
	// double-round, even when the grid is the subnormal one.
	bf, _, err := big.ParseFloat(s, 0, fracBits+3, big.ToZero)
	if err != nil {
		return zero, fmt.Errorf("parsing failed: %w", err)
	}
	f := fromBigFloat(bf, bf.Acc() == big.Exact, RoundNearestEven)
	if f.IsInf(0) {
		return f, fmt.Errorf("parsing %q: %w", s, errRange)
	}
	return f, nil
}

// fromBigFloat converts a big.Float whose mantissa does not exceed 115 bits.
// An inexact bf stands for a truncated value; the forced low bit keeps the
// final rounding aware of the dropped tail.
func fromBigFloat(bf *big.Float, exact bool, mode RoundingMode) Float128 {
	neg := bf.Signbit()
	if bf.IsInf() {
		return inf(neg)
	}
	if bf.Sign() == 0 {
		return zeroValue(neg)
	}
	mant := new(big.Float)
	e := bf.MantExp(mant)
	prec := int(mant.MinPrec())
	if !exact {
		prec = fracBits + 3
	}
	imant, _ := mant.Abs(mant).SetMantExp(mant, prec).Int(nil)
	mag := bigToUint128(imant)
	if !exact {
		mag = mag.Or64(1)
	}
	// Clamp the exponent before narrowing it: anything this far out is an
	// overflow or a total underflow either way.
	switch {
	case e > 4*bias:
		e = 4 * bias
	case e < -4*bias:
		e = -4 * bias
	}
	return fromMagExp(neg, mag, int32(e-prec), mode)
}

func bigFromUint128(u uint128.Uint128) *big.Int {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], u.Hi)
	binary.BigEndian.PutUint64(buf[8:], u.Lo)
	return new(big.Int).SetBytes(buf[:])
}

func bigToUint128(i *big.Int) uint128.Uint128 {
	var buf [16]byte
	i.FillBytes(buf[:])
	return uint128.Uint128{
		Hi: binary.BigEndian.Uint64(buf[:8]),
		Lo: binary.BigEndian.Uint64(buf[8:]),
	}
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (f Float128) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Float128) UnmarshalText(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalJSON marshals the value as a JSON string, like "1.25".
func (f Float128) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.String())), nil
}

// UnmarshalJSON unmarshals a JSON string or a bare number into the value.
func (f *Float128) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	s := string(data)
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		s = unquoted
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
