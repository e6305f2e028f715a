// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package float128 implements IEEE-754-2008 binary128 ("quad precision")
// floating-point arithmetic in software, built entirely from 64- and 128-bit
// integer operations.
//
// A Float128 packs 1 sign bit, a 15-bit biased exponent, and 112 fraction
// bits into two uint64 words:
//
//	127                                                            0
//	seeeeeeeeeeeeeeeffffffff...ffffffff|ffffffff...............ffffffff
//	         hi                                    lo
//
// Values are immutable; every operation returns a new value. Arithmetic and
// conversions take the rounding mode as an explicit parameter, there is no
// global rounding state and no processor status flags. All operations are
// total: invalid inputs produce quiet NaNs or saturated values, never errors.
package float128

import (
	"github.com/avdva/float128/internal/uint128"
)

const (
	expBits  = 15
	fracBits = 112
	bias     = 16383
	maxExp   = 1<<expBits - 1 // 32767

	fracBitsHi = fracBits - 64 // fraction bits in the hi word

	signMask   = uint64(1) << 63
	expMask    = uint64(maxExp) << fracBitsHi
	fracMaskHi = uint64(1)<<fracBitsHi - 1
	quietBit   = uint64(1) << (fracBitsHi - 1) // top fraction bit: quiet vs signaling
	implicitHi = uint64(1) << fracBitsHi       // implicit leading bit, hi word

	// working form used before rounding: significand shifted left by
	// grxBits, guard/round/sticky in the low bits, leading bit at workTop.
	grxBits      = 3
	workTop      = fracBits + grxBits     // 115
	workCarryBit = workTop + 1            // 116
	normalLZ     = 128 - (workTop + 1)    // leading zeros of a normalized working value
)

var zero Float128

// Float128 is an IEEE-754 binary128 value.
// The zero Float128 is +0.0 and ready to use.
type Float128 struct {
	hi, lo uint64
}

// FromBits returns the value corresponding to the given raw bit pattern,
// with the sign and exponent in hi and the low fraction bits in lo.
func FromBits(hi, lo uint64) Float128 {
	return Float128{hi: hi, lo: lo}
}

// Bits returns the raw bit pattern of f.
func (f Float128) Bits() (hi, lo uint64) {
	return f.hi, f.lo
}

// NaN returns the default quiet NaN.
func NaN() Float128 {
	return Float128{hi: expMask | quietBit}
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Float128 {
	return inf(sign < 0)
}

// Max returns the largest finite value with the given sign,
// positive for sign >= 0.
func Max(sign int) Float128 {
	return maxFinite(sign < 0)
}

func inf(neg bool) Float128 {
	f := Float128{hi: expMask}
	if neg {
		f.hi |= signMask
	}
	return f
}

func maxFinite(neg bool) Float128 {
	f := Float128{hi: uint64(maxExp-1)<<fracBitsHi | fracMaskHi, lo: ^uint64(0)}
	if neg {
		f.hi |= signMask
	}
	return f
}

func zeroValue(neg bool) Float128 {
	if neg {
		return Float128{hi: signMask}
	}
	return zero
}

func signOf(f Float128) bool {
	return f.hi&signMask != 0
}

func expOf(f Float128) uint32 {
	return uint32(f.hi >> fracBitsHi & maxExp)
}

func fracOf(f Float128) uint128.Uint128 {
	return uint128.Uint128{Hi: f.hi & fracMaskHi, Lo: f.lo}
}

// magOf returns the bit pattern of f with the sign cleared,
// which orders finite values by magnitude.
func magOf(f Float128) uint128.Uint128 {
	return uint128.Uint128{Hi: f.hi &^ signMask, Lo: f.lo}
}

// significand returns the fraction with the implicit leading bit restored
// for normal values.
func significand(f Float128) uint128.Uint128 {
	sig := fracOf(f)
	if e := expOf(f); e != 0 && e != maxExp {
		sig.Hi |= implicitHi
	}
	return sig
}

// pack assembles a value from a sign, a biased exponent field, and a
// significand. Fraction bits above the field are masked off, so the
// significand may carry the implicit bit.
func pack(neg bool, exp uint32, sig uint128.Uint128) Float128 {
	hi := uint64(exp&maxExp)<<fracBitsHi | sig.Hi&fracMaskHi
	if neg {
		hi |= signMask
	}
	return Float128{hi: hi, lo: sig.Lo}
}

// unpack splits a finite value into sign, biased exponent, and significand
// with the implicit bit restored. Zero and subnormal operands report the
// architectural minimum exponent 1, so exponent arithmetic stays valid.
func unpack(f Float128) (neg bool, exp int32, sig uint128.Uint128) {
	neg = signOf(f)
	sig = fracOf(f)
	if e := expOf(f); e == 0 {
		exp = 1
	} else {
		exp = int32(e)
		sig.Hi |= implicitHi
	}
	return neg, exp, sig
}

// Exp returns the raw 15-bit biased exponent field.
func (f Float128) Exp() uint16 {
	return uint16(expOf(f))
}

// SetExp returns a copy of f with the low 15 bits of e merged into the
// exponent field, leaving the sign and fraction untouched.
func (f Float128) SetExp(e uint16) Float128 {
	f.hi = f.hi&^expMask | uint64(e&maxExp)<<fracBitsHi
	return f
}

// Frac returns the raw 112-bit fraction, without the implicit bit.
func (f Float128) Frac() (hi, lo uint64) {
	frac := fracOf(f)
	return frac.Hi, frac.Lo
}

// Significand returns the 113-bit significand, with the implicit leading bit
// restored for normal values only.
func (f Float128) Significand() (hi, lo uint64) {
	sig := significand(f)
	return sig.Hi, sig.Lo
}

// Signbit reports whether f is negative or negative zero.
func (f Float128) Signbit() bool {
	return signOf(f)
}

// Neg returns f with its sign flipped. Note that Neg(NaN) flips the sign bit
// of the NaN; arithmetic never does this to NaN operands.
func (f Float128) Neg() Float128 {
	f.hi ^= signMask
	return f
}

// Abs returns f with the sign bit cleared.
func (f Float128) Abs() Float128 {
	f.hi &^= signMask
	return f
}

// CopySign returns a value with the magnitude of f and the sign of g.
func (f Float128) CopySign(g Float128) Float128 {
	f.hi = f.hi&^signMask | g.hi&signMask
	return f
}
