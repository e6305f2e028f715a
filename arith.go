// Copyright 2020 Aleksandr Demakin. All rights reserved.

package float128

import (
	"github.com/avdva/float128/internal/uint128"
)

// Arithmetic follows one path per operation: extract the operands, dispatch
// NaN/infinity operands to a small action table, and run finite inputs
// through exponent alignment, significand combination, renormalization, and
// the shared rounding core in round.go. Every intermediate step preserves an
// "inexact" signal: bits shifted out of the working window are OR-reduced
// into the sticky position, never discarded.

// Add returns f + g rounded according to mode.
func (f Float128) Add(g Float128, mode RoundingMode) Float128 {
	if isSpecial(f) || isSpecial(g) {
		return addSpecial(f, g)
	}
	return addFinite(f, g, mode)
}

// Sub returns f - g rounded according to mode. A NaN g operand propagates
// with its sign bit untouched; only a non-NaN subtrahend has its effective
// sign negated.
func (f Float128) Sub(g Float128, mode RoundingMode) Float128 {
	if f.IsNaN() || g.IsNaN() {
		return propagateNaN(f, g)
	}
	return f.Add(g.Neg(), mode)
}

// Mul returns f * g rounded according to mode.
func (f Float128) Mul(g Float128, mode RoundingMode) Float128 {
	if isSpecial(f) || isSpecial(g) {
		return mulSpecial(f, g)
	}
	neg := signOf(f) != signOf(g)
	_, expA, sigA := unpack(f)
	_, expB, sigB := unpack(g)
	if sigA.IsZero() || sigB.IsZero() {
		return zeroValue(neg)
	}

	// Full double-width product; nothing below the rounding point is
	// discarded until the final step, the entire low part acts as an
	// uncollected sticky accumulator.
	prod := sigA.Mul(sigB)

	// Summing two biased exponents double-counts the bias.
	exp := expA + expB - bias

	// Normalize the product by a lossless double-lane left shift so its
	// leading bit sits at the top of the 256-bit window, adjusting the
	// exponent by the distance from the nominal position. This covers both
	// the carry case (product in [2,4)) and leading zeros from subnormal
	// operands in one step.
	lz := prod.LeadingZeros()
	exp += int32(255-lz) - 2*fracBits
	prod = prod.Lsh(uint(lz))

	if exp < 1 {
		// Tiny: shift down to the minimum exponent, keeping the sticky bit.
		prod = prod.RshSticky(uint(1 - exp))
		exp = 1
	}

	// Reduce to the shared working form: top 113 bits plus guard/round, the
	// rest collapsing into sticky.
	work := prod.RshSticky(256 - (workTop + 1))
	return roundPack(neg, exp, work.Lo, mode)
}

func addFinite(f, g Float128, mode RoundingMode) Float128 {
	// Order the operands by magnitude so the right-shift distance for the
	// smaller one is non-negative and bounded.
	magF, magG := magOf(f), magOf(g)
	if magF.Cmp(magG) < 0 {
		f, g = g, f
		magF = magG
	}

	negA, expA, sigA := unpack(f)
	negB, expB, sigB := unpack(g)

	if magF.IsZero() {
		// Both operands are zeros. Same signs keep the sign; opposite signs
		// give +0, or -0 when rounding toward negative.
		if negA == negB {
			return f
		}
		return zeroValue(mode == RoundTowardNegative)
	}

	workA := sigA.Lsh(grxBits)
	workB := sigB.Lsh(grxBits).RshSticky(uint(expA - expB))

	var work uint128.Uint128
	if negA == negB {
		work = workA.Add(workB)
	} else {
		work = workA.Sub(workB)
		if work.IsZero() {
			// Exact cancellation of equal magnitudes.
			return zeroValue(mode == RoundTowardNegative)
		}
		if lz := work.LeadingZeros(); lz > normalLZ {
			// Close-magnitude subtraction lost leading bits; shift back up,
			// but no further than the minimum exponent allows. If the
			// exponent cannot reach normal range the result is subnormal.
			shift := int32(lz - normalLZ)
			if left := expA - 1; shift > left {
				shift = left
			}
			work = work.Lsh(uint(shift))
			expA -= shift
		}
	}
	return roundPack(negA, expA, work, mode)
}

// addSpecial handles additions with at least one NaN or infinite operand.
func addSpecial(f, g Float128) Float128 {
	if f.IsNaN() || g.IsNaN() {
		return propagateNaN(f, g)
	}
	switch {
	case f.IsInf(0) && g.IsInf(0):
		if signOf(f) == signOf(g) {
			return f
		}
		// Inf - Inf has no useful value.
		return NaN()
	case f.IsInf(0):
		return f
	default:
		return g
	}
}

// mulSpecial handles multiplications with at least one NaN or infinite
// operand.
func mulSpecial(f, g Float128) Float128 {
	if f.IsNaN() || g.IsNaN() {
		return propagateNaN(f, g)
	}
	if f.IsZero() || g.IsZero() {
		// Inf * 0 has no useful value.
		return NaN()
	}
	return inf(signOf(f) != signOf(g))
}

// propagateNaN returns a quieted copy of the first NaN operand. Signaling
// NaNs never survive into a result.
func propagateNaN(f, g Float128) Float128 {
	if f.IsNaN() {
		return quieten(f)
	}
	return quieten(g)
}

func quieten(f Float128) Float128 {
	f.hi |= quietBit
	return f
}
