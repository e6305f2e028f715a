// Copyright 2020 Aleksandr Demakin. All rights reserved.

package float128

import (
	"math"

	"github.com/avdva/float128/internal/uint128"
)

// RoundingMode selects how an inexact intermediate result is mapped onto a
// representable value. The mode is always an explicit per-call parameter,
// there is no global rounding register.
type RoundingMode int

const (
	// RoundToOdd truncates toward zero and forces the least significant
	// significand bit to 1 whenever any discarded bit was nonzero. It never
	// rounds up in magnitude and never overflows to infinity, which makes a
	// result safe to round again to a narrower format without a
	// double-rounding error.
	RoundToOdd RoundingMode = iota
	// RoundNearestEven rounds to the nearest representable value, ties to
	// the value with an even least significant bit. The IEEE default.
	RoundNearestEven
	// RoundTowardZero truncates.
	RoundTowardZero
	// RoundTowardPositive rounds toward +Inf.
	RoundTowardPositive
	// RoundTowardNegative rounds toward -Inf.
	RoundTowardNegative
	// RoundNearestAway rounds to nearest, ties away from zero.
	RoundNearestAway
)

var roundingModeNames = [...]string{
	RoundToOdd:          "ToOdd",
	RoundNearestEven:    "NearestEven",
	RoundTowardZero:     "TowardZero",
	RoundTowardPositive: "TowardPositive",
	RoundTowardNegative: "TowardNegative",
	RoundNearestAway:    "NearestAway",
}

func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(roundingModeNames) {
		return "Unknown"
	}
	return roundingModeNames[m]
}

// roundUp decides whether a truncated result must be incremented by one unit
// in the last place. grx holds the guard, round, and sticky bits; odd is the
// least significant bit of the truncated significand. RoundToOdd is handled
// by the callers, it never increments.
func roundUp(mode RoundingMode, neg bool, grx uint64, odd uint64) bool {
	switch mode {
	case RoundNearestEven:
		return grx > 4 || grx == 4 && odd == 1
	case RoundNearestAway:
		return grx >= 4
	case RoundTowardPositive:
		return !neg
	case RoundTowardNegative:
		return neg
	default: // RoundTowardZero
		return false
	}
}

// roundPack applies the rounding procedure to a working value and packs the
// final Float128. work holds the significand left-shifted by grxBits with
// guard/round/sticky in its low three bits; for a normal result the leading
// significand bit sits at workTop, possibly with a carry at workCarryBit.
// exp is the biased exponent, at least 1; callers must already have
// right-shifted a tiny result down to exp 1 with the sticky bit preserved.
func roundPack(neg bool, exp int32, work uint128.Uint128, mode RoundingMode) Float128 {
	if work.Bit(workCarryBit) != 0 {
		work = work.RshSticky(1)
		exp++
	}
	grx := work.Lo & (1<<grxBits - 1)
	sig := work.Rsh(grxBits)
	if grx != 0 {
		if mode == RoundToOdd {
			sig = sig.Or64(1)
		} else if roundUp(mode, neg, grx, sig.Lo&1) {
			sig = sig.Add64(1)
			if sig.Bit(fracBits+1) != 0 {
				// carried all the way out of the significand
				sig = sig.Rsh(1)
				exp++
			}
		}
	}
	if sig.Bit(fracBits) == 0 {
		// no implicit bit: the result is subnormal (or zero), and the
		// exponent has already been forced to the minimum; encode field 0.
		return pack(neg, 0, sig)
	}
	if exp >= maxExp {
		return roundOverflow(neg, mode)
	}
	return pack(neg, uint32(exp), sig)
}

// roundOverflow maps an exponent-overflowed result per mode. The
// magnitude-non-increasing modes saturate at the largest finite value; the
// directed modes produce an infinity only in their own direction.
func roundOverflow(neg bool, mode RoundingMode) Float128 {
	switch mode {
	case RoundToOdd, RoundTowardZero:
		return maxFinite(neg)
	case RoundTowardPositive:
		if neg {
			return maxFinite(true)
		}
		return inf(false)
	case RoundTowardNegative:
		if neg {
			return inf(true)
		}
		return maxFinite(false)
	default:
		return inf(neg)
	}
}

const (
	f64ExpBits  = 11
	f64FracBits = 52
	f64Bias     = 1023
	f64MaxExp   = 1<<f64ExpBits - 1

	f64WorkTop      = f64FracBits + grxBits
	f64WorkCarryBit = f64WorkTop + 1
)

// roundPack64 is roundPack for the binary64 target, used by the
// quad-to-double narrowing. Same working form, 53-bit significand.
func roundPack64(neg bool, exp int32, work uint64, mode RoundingMode) float64 {
	if work>>f64WorkCarryBit != 0 {
		work = rshSticky64(work, 1)
		exp++
	}
	grx := work & (1<<grxBits - 1)
	sig := work >> grxBits
	if grx != 0 {
		if mode == RoundToOdd {
			sig |= 1
		} else if roundUp(mode, neg, grx, sig&1) {
			sig++
			if sig>>(f64FracBits+1) != 0 {
				sig >>= 1
				exp++
			}
		}
	}
	var b uint64
	if neg {
		b = signMask
	}
	if sig>>f64FracBits == 0 {
		return math.Float64frombits(b | sig)
	}
	if exp >= f64MaxExp {
		return roundOverflow64(neg, mode)
	}
	b |= uint64(exp)<<f64FracBits | sig&^(uint64(1)<<f64FracBits)
	return math.Float64frombits(b)
}

func roundOverflow64(neg bool, mode RoundingMode) float64 {
	switch mode {
	case RoundToOdd, RoundTowardZero:
		return signedMaxFloat64(neg)
	case RoundTowardPositive:
		if neg {
			return signedMaxFloat64(true)
		}
		return math.Inf(1)
	case RoundTowardNegative:
		if neg {
			return math.Inf(-1)
		}
		return signedMaxFloat64(false)
	default:
		return math.Inf(boolSign(neg))
	}
}

func signedMaxFloat64(neg bool) float64 {
	if neg {
		return -math.MaxFloat64
	}
	return math.MaxFloat64
}

func boolSign(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// rshSticky64 shifts right by n, OR-reducing every shifted-out bit into
// bit 0 of the result.
func rshSticky64(v uint64, n uint) uint64 {
	if n == 0 {
		return v
	}
	if n >= 64 {
		if v == 0 {
			return 0
		}
		return 1
	}
	r := v >> n
	if v<<(64-n) != 0 {
		r |= 1
	}
	return r
}
