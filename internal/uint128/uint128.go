// Package uint128 implements fixed-width 128-bit and 256-bit unsigned
// integers on top of math/bits. It provides the carry chains, widening
// multiplies, and sticky shifts that the float128 package needs and that
// uint64 alone cannot express.
package uint128

import "math/bits"

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi, Lo uint64
}

// From64 returns v zero-extended to 128 bits.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// IsZero returns true if u == 0.
func (u Uint128) IsZero() bool {
	return u.Hi|u.Lo == 0
}

// Equal returns u == v.
func (u Uint128) Equal(v Uint128) bool {
	return u == v
}

// Cmp compares two values.
// Returns -1 if u < v, 0 if u == v, 1 if u > v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi > v.Hi, u.Hi == v.Hi && u.Lo > v.Lo:
		return 1
	case u.Hi < v.Hi, u.Hi == v.Hi && u.Lo < v.Lo:
		return -1
	default:
		return 0
	}
}

// Add returns u + v, wrapping on overflow.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Add64 returns u + v, wrapping on overflow.
func (u Uint128) Add64(v uint64) Uint128 {
	lo, carry := bits.Add64(u.Lo, v, 0)
	return Uint128{Hi: u.Hi + carry, Lo: lo}
}

// Sub returns u - v, wrapping on underflow.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Or returns u | v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// Or64 returns u | v.
func (u Uint128) Or64(v uint64) Uint128 {
	return Uint128{Hi: u.Hi, Lo: u.Lo | v}
}

// Not returns ^u.
func (u Uint128) Not() Uint128 {
	return Uint128{Hi: ^u.Hi, Lo: ^u.Lo}
}

// Bit returns bit n of u, counting from the least significant bit.
func (u Uint128) Bit(n uint) uint64 {
	if n >= 64 {
		return u.Hi >> (n - 64) & 1
	}
	return u.Lo >> n & 1
}

// Lsh returns u << n. Shift counts of 128 or more return zero.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Rsh returns u >> n. Shift counts of 128 or more return zero.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// RshSticky returns u >> n with every shifted-out bit OR-reduced into bit 0
// of the result, so the fact that nonzero bits were discarded is never lost.
func (u Uint128) RshSticky(n uint) Uint128 {
	if n == 0 {
		return u
	}
	if n >= 128 {
		if u.IsZero() {
			return Uint128{}
		}
		return Uint128{Lo: 1}
	}
	r := u.Rsh(n)
	if !u.Lsh(128 - n).IsZero() {
		r.Lo |= 1
	}
	return r
}

// LeadingZeros returns the number of leading zero bits in u;
// the result is 128 for u == 0.
func (u Uint128) LeadingZeros() int {
	if u.Hi == 0 {
		return 64 + bits.LeadingZeros64(u.Lo)
	}
	return bits.LeadingZeros64(u.Hi)
}

// Mul64 returns the full 128-bit product a * b.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Hi: hi, Lo: lo}
}

// Mul returns the full 256-bit product u * v.
func (u Uint128) Mul(v Uint128) Uint256 {
	hi1, lo1 := bits.Mul64(u.Lo, v.Lo)
	hi2, lo2 := bits.Mul64(u.Hi, v.Lo)
	hi3, lo3 := bits.Mul64(u.Lo, v.Hi)
	hi4, lo4 := bits.Mul64(u.Hi, v.Hi)

	r1, c1 := bits.Add64(hi1, lo2, 0)
	r1, c2 := bits.Add64(r1, lo3, 0)
	r2, c3 := bits.Add64(hi2, hi3, c1)
	r2, c4 := bits.Add64(r2, lo4, c2)
	r3 := hi4 + c3 + c4

	return Uint256{
		Hi: Uint128{Hi: r3, Lo: r2},
		Lo: Uint128{Hi: r1, Lo: lo1},
	}
}

// Uint256 is an unsigned 256-bit integer stored as two 128-bit lanes.
type Uint256 struct {
	Hi, Lo Uint128
}

// IsZero returns true if u == 0.
func (u Uint256) IsZero() bool {
	return u.Hi.IsZero() && u.Lo.IsZero()
}

// LeadingZeros returns the number of leading zero bits in u;
// the result is 256 for u == 0.
func (u Uint256) LeadingZeros() int {
	if u.Hi.IsZero() {
		return 128 + u.Lo.LeadingZeros()
	}
	return u.Hi.LeadingZeros()
}

// Lsh returns u << n, shifting across the lane boundary without losing bits
// as long as n leading bits are zero.
func (u Uint256) Lsh(n uint) Uint256 {
	switch {
	case n == 0:
		return u
	case n >= 256:
		return Uint256{}
	case n >= 128:
		return Uint256{Hi: u.Lo.Lsh(n - 128)}
	default:
		return Uint256{
			Hi: u.Hi.Lsh(n).Or(u.Lo.Rsh(128 - n)),
			Lo: u.Lo.Lsh(n),
		}
	}
}

// RshSticky returns u >> n with every shifted-out bit OR-reduced into bit 0.
func (u Uint256) RshSticky(n uint) Uint256 {
	switch {
	case n == 0:
		return u
	case n >= 256:
		if u.IsZero() {
			return Uint256{}
		}
		return Uint256{Lo: Uint128{Lo: 1}}
	case n >= 128:
		lo := u.Hi.RshSticky(n - 128)
		if !u.Lo.IsZero() {
			lo.Lo |= 1
		}
		return Uint256{Lo: lo}
	default:
		lost := u.Lo.Lsh(128 - n)
		lo := u.Lo.Rsh(n).Or(u.Hi.Lsh(128 - n))
		if !lost.IsZero() {
			lo.Lo |= 1
		}
		return Uint256{Hi: u.Hi.Rsh(n), Lo: lo}
	}
}
