// Copyright 2020 Aleksandr Demakin. All rights reserved.

package float128

import (
	"math"
	"math/bits"

	"github.com/avdva/float128/internal/uint128"
)

// Integer-to-float conversions treat the magnitude as a denormalized
// significand: count leading zeros, place the most significant bit at the
// implicit-bit position, and round through the shared core when more than
// 113 significant bits are present. Float-to-integer conversions truncate
// toward zero and saturate at the type bounds instead of wrapping:
// NaN converts to 0, +Inf to the maximum, -Inf to the minimum.

// FromUint64 returns the value of v. The conversion is always exact.
func FromUint64(v uint64) Float128 {
	return fromMagExp(false, uint128.From64(v), 0, RoundNearestEven)
}

// FromInt64 returns the value of v. The conversion is always exact.
func FromInt64(v int64) Float128 {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = -mag
	}
	return fromMagExp(neg, uint128.From64(mag), 0, RoundNearestEven)
}

// FromUint128 returns the value of the unsigned 128-bit integer hi:lo,
// rounded according to mode when it needs more than 113 significant bits.
func FromUint128(hi, lo uint64, mode RoundingMode) Float128 {
	return fromMagExp(false, uint128.Uint128{Hi: hi, Lo: lo}, 0, mode)
}

// FromInt128 returns the value of the signed (two's complement) 128-bit
// integer hi:lo, rounded according to mode.
func FromInt128(hi int64, lo uint64, mode RoundingMode) Float128 {
	mag := uint128.Uint128{Hi: uint64(hi), Lo: lo}
	neg := hi < 0
	if neg {
		mag = mag.Not().Add64(1)
	}
	return fromMagExp(neg, mag, 0, mode)
}

// fromMagExp builds a value equal to ±mag * 2**shift, rounding when the
// magnitude does not fit 113 bits or falls into the subnormal range.
func fromMagExp(neg bool, mag uint128.Uint128, shift int32, mode RoundingMode) Float128 {
	if mag.IsZero() {
		return zeroValue(neg)
	}
	n := int32(127 - mag.LeadingZeros()) // index of the most significant bit
	exp := bias + n + shift
	var work uint128.Uint128
	if n <= workTop {
		work = mag.Lsh(uint(workTop - n))
	} else {
		work = mag.RshSticky(uint(n - workTop))
	}
	if exp < 1 {
		work = work.RshSticky(uint(1 - exp))
		exp = 1
	}
	return roundPack(neg, exp, work, mode)
}

// Uint64 converts f to a uint64, truncating toward zero.
// Out-of-range values saturate: negative values and NaN convert to 0,
// values at or above 2^64 (and +Inf) to the maximum.
func (f Float128) Uint64() uint64 {
	if f.IsNaN() {
		return 0
	}
	neg := signOf(f)
	if !f.IsFinite() {
		if neg {
			return 0
		}
		return math.MaxUint64
	}
	e := int32(expOf(f)) - bias
	if neg || e < 0 {
		return 0
	}
	if e >= 64 {
		return math.MaxUint64
	}
	return significand(f).Rsh(uint(fracBits) - uint(e)).Lo
}

// Int64 converts f to an int64, truncating toward zero and saturating at
// the int64 bounds. NaN converts to 0.
func (f Float128) Int64() int64 {
	if f.IsNaN() {
		return 0
	}
	neg := signOf(f)
	if !f.IsFinite() {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	e := int32(expOf(f)) - bias
	if e < 0 {
		return 0
	}
	if e >= 63 {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	v := int64(significand(f).Rsh(uint(fracBits) - uint(e)).Lo)
	if neg {
		return -v
	}
	return v
}

// Uint128 converts f to an unsigned 128-bit integer, truncating toward zero
// and saturating. NaN converts to 0.
func (f Float128) Uint128() (hi, lo uint64) {
	if f.IsNaN() {
		return 0, 0
	}
	neg := signOf(f)
	if !f.IsFinite() {
		if neg {
			return 0, 0
		}
		return math.MaxUint64, math.MaxUint64
	}
	e := int32(expOf(f)) - bias
	if neg || e < 0 {
		return 0, 0
	}
	if e >= 128 {
		return math.MaxUint64, math.MaxUint64
	}
	mag := intMag(f, e)
	return mag.Hi, mag.Lo
}

// Int128 converts f to a signed (two's complement) 128-bit integer,
// truncating toward zero and saturating. NaN converts to 0.
func (f Float128) Int128() (hi int64, lo uint64) {
	if f.IsNaN() {
		return 0, 0
	}
	neg := signOf(f)
	if !f.IsFinite() || int32(expOf(f))-bias >= 127 {
		if neg {
			return math.MinInt64, 0
		}
		return math.MaxInt64, math.MaxUint64
	}
	e := int32(expOf(f)) - bias
	if e < 0 {
		return 0, 0
	}
	mag := intMag(f, e)
	if neg {
		mag = mag.Not().Add64(1)
	}
	return int64(mag.Hi), mag.Lo
}

// intMag returns the integer part of a finite value with unbiased exponent
// e in [0, 127].
func intMag(f Float128, e int32) uint128.Uint128 {
	sig := significand(f)
	if e <= fracBits {
		return sig.Rsh(uint(fracBits - e))
	}
	return sig.Lsh(uint(e - fracBits))
}

// FromFloat64 returns the binary128 value of v. binary64 embeds exactly in
// binary128, so no rounding is involved; NaN payloads are preserved in the
// top fraction bits and quieted.
func FromFloat64(v float64) Float128 {
	b := math.Float64bits(v)
	neg := b>>63 != 0
	e := int32(b >> f64FracBits & f64MaxExp)
	frac := b & (1<<f64FracBits - 1)
	switch {
	case e == f64MaxExp:
		if frac == 0 {
			return inf(neg)
		}
		return quieten(pack(neg, maxExp, uint128.From64(frac).Lsh(fracBits-f64FracBits)))
	case e == 0:
		if frac == 0 {
			return zeroValue(neg)
		}
		// Subnormal doubles renormalize: the value is frac * 2^-1074.
		n := int32(63 - bits.LeadingZeros64(frac))
		return pack(neg, uint32(n-1074+bias), uint128.From64(frac).Lsh(uint(fracBits-n)))
	default:
		sig := uint128.From64(frac | 1<<f64FracBits).Lsh(fracBits - f64FracBits)
		return pack(neg, uint32(e-f64Bias+bias), sig)
	}
}

// Float64 narrows f to binary64, rounding the 113-bit significand to 53 bits
// according to mode. Under RoundToOdd and RoundTowardZero, finite magnitudes
// beyond the double range saturate to the largest finite double instead of
// producing an infinity. NaN payload top bits are preserved and quieted.
func (f Float128) Float64(mode RoundingMode) float64 {
	neg := signOf(f)
	if isSpecial(f) {
		frac := fracOf(f)
		if frac.IsZero() {
			return math.Inf(boolSign(neg))
		}
		b := uint64(f64MaxExp)<<f64FracBits | frac.Rsh(fracBits-f64FracBits).Lo | 1<<(f64FracBits-1)
		if neg {
			b |= signMask
		}
		return math.Float64frombits(b)
	}
	_, exp, sig := unpack(f)
	if sig.IsZero() {
		return math.Float64frombits(uint64(boolToInt(neg)) << 63)
	}
	// Renormalize subnormal inputs so the leading bit is at the implicit
	// position; they land far below the double range and denormalize again
	// below, but the exponent arithmetic needs a fixed reference point.
	if lz := sig.LeadingZeros(); lz > 127-fracBits {
		shift := int32(lz) - (127 - fracBits)
		sig = sig.Lsh(uint(shift))
		exp -= shift
	}
	work := sig.RshSticky(fracBits - f64FracBits - grxBits).Lo
	exp -= bias - f64Bias
	if exp < 1 {
		work = rshSticky64(work, uint(1-exp))
		exp = 1
	}
	return roundPack64(neg, exp, work, mode)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
