package float128

// Class is the IEEE-754 data class of a value.
// It is derived from the bit pattern on demand and never stored.
type Class int

const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInfinite
	ClassQuietNaN
	ClassSignalingNaN
)

var classNames = [...]string{
	ClassZero:         "Zero",
	ClassSubnormal:    "Subnormal",
	ClassNormal:       "Normal",
	ClassInfinite:     "Infinite",
	ClassQuietNaN:     "QuietNaN",
	ClassSignalingNaN: "SignalingNaN",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "Unknown"
	}
	return classNames[c]
}

// Classify returns the data class of f. The sign takes no part in
// classification.
func (f Float128) Classify() Class {
	switch expOf(f) {
	case 0:
		if fracOf(f).IsZero() {
			return ClassZero
		}
		return ClassSubnormal
	case maxExp:
		frac := fracOf(f)
		switch {
		case frac.IsZero():
			return ClassInfinite
		case frac.Hi&quietBit != 0:
			return ClassQuietNaN
		default:
			return ClassSignalingNaN
		}
	default:
		return ClassNormal
	}
}

// IsNaN reports whether f is a quiet or signaling not-a-number.
func (f Float128) IsNaN() bool {
	return expOf(f) == maxExp && !fracOf(f).IsZero()
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, only positive infinity matches; if sign < 0, only negative
// infinity; if sign == 0, either.
func (f Float128) IsInf(sign int) bool {
	if expOf(f) != maxExp || !fracOf(f).IsZero() {
		return false
	}
	return sign == 0 || sign > 0 == !signOf(f)
}

// IsFinite reports whether f is zero, subnormal, or normal.
func (f Float128) IsFinite() bool {
	return expOf(f) != maxExp
}

// IsNormal reports whether f is a normal value: finite, nonzero, and with the
// implicit leading significand bit set.
func (f Float128) IsNormal() bool {
	e := expOf(f)
	return e != 0 && e != maxExp
}

// IsSubnormal reports whether f is a denormalized value.
func (f Float128) IsSubnormal() bool {
	return expOf(f) == 0 && !fracOf(f).IsZero()
}

// IsZero reports whether f is +0.0 or -0.0.
func (f Float128) IsZero() bool {
	return expOf(f) == 0 && fracOf(f).IsZero()
}

// Unordered reports whether f and g compare unordered under IEEE semantics,
// that is, whether either operand is a NaN.
func (f Float128) Unordered(g Float128) bool {
	return f.IsNaN() || g.IsNaN()
}

// isSpecial reports whether f is an infinity or NaN, the operands that take
// the arithmetic special-case path.
func isSpecial(f Float128) bool {
	return expOf(f) == maxExp
}
