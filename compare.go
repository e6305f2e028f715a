package float128

import (
	"github.com/avdva/float128/internal/uint128"
)

// Comparison comes in three deliberately distinct families, each with its own
// contract:
//
//   - CmpTotal: a total order over every bit pattern. -0.0 < +0.0, and NaNs
//     take well-defined positions below -Inf and above +Inf depending on
//     their sign. Never unordered.
//   - Cmp: like CmpTotal except that -0.0 and +0.0 compare equal. NaNs are
//     still ordered by their bit pattern. Never unordered.
//   - Eq/Ne/Lt/Le/Gt/Ge: IEEE semantics. -0.0 == +0.0, and any NaN operand
//     makes the pair unordered: every ordered predicate is false, Ne is true.
//
// All three are built on the same monotonic-key transform: the raw bit
// pattern of a negative value is inverted wholesale, the sign bit of a
// non-negative one is set. The transform maps the signed-magnitude encoding
// onto the unsigned integers so that one unsigned 128-bit compare per operand
// pair replaces the branch-heavy split by sign quadrant.

func sortKey(f Float128) uint128.Uint128 {
	u := uint128.Uint128{Hi: f.hi, Lo: f.lo}
	if f.hi&signMask != 0 {
		return u.Not()
	}
	return u.Or(uint128.Uint128{Hi: signMask})
}

// CmpTotal compares f and g under the total order.
// Returns -1 if f < g, 0 if f == g, 1 if f > g.
func (f Float128) CmpTotal(g Float128) int {
	return sortKey(f).Cmp(sortKey(g))
}

// Cmp compares f and g, treating zeros of either sign as equal.
// Returns -1 if f < g, 0 if f == g, 1 if f > g. NaNs are ordered by their
// bit pattern rather than reported as unordered.
func (f Float128) Cmp(g Float128) int {
	if f.IsZero() && g.IsZero() {
		return 0
	}
	return f.CmpTotal(g)
}

// Eq returns f == g under IEEE semantics: false if either operand is NaN,
// true for zeros of either sign.
func (f Float128) Eq(g Float128) bool {
	if f.Unordered(g) {
		return false
	}
	return f.Cmp(g) == 0
}

// Ne returns f != g under IEEE semantics: true if either operand is NaN.
func (f Float128) Ne(g Float128) bool {
	return !f.Eq(g)
}

// Lt returns f < g under IEEE semantics: false if either operand is NaN.
func (f Float128) Lt(g Float128) bool {
	if f.Unordered(g) {
		return false
	}
	return f.Cmp(g) < 0
}

// Le returns f <= g under IEEE semantics: false if either operand is NaN.
func (f Float128) Le(g Float128) bool {
	if f.Unordered(g) {
		return false
	}
	return f.Cmp(g) <= 0
}

// Gt returns f > g under IEEE semantics: false if either operand is NaN.
func (f Float128) Gt(g Float128) bool {
	return g.Lt(f)
}

// Ge returns f >= g under IEEE semantics: false if either operand is NaN.
func (f Float128) Ge(g Float128) bool {
	return g.Le(f)
}
