// Package limb implements fixed-width unsigned multi-precision arithmetic
// on little-endian slices of machine words. It is the lowest layer of the
// kernel: every higher-level operation (base-case and Karatsuba
// multiplication, division, radix conversion) is built from the routines
// in this file.
//
// All functions here are total on their documented preconditions and never
// allocate; callers own every buffer. Aliasing rules are part of each
// function's contract and are called out individually — "VV"/"VW" style
// operations tolerate z aliasing x or y, but the scalar-multiply family
// (MulVW, AddMulVVW, SubMulVVW) requires z and x to be disjoint slices.
package limb

import "math/bits"

// Word is a single limb: one machine word in base β = 2^64.
type Word = uint64

// Bits is the width W of a Word in bits.
const Bits = 64

// AddVV computes z[i] = x[i] + y[i] + c for i in [0, len(z)) with carry
// propagation, and returns the final carry-out (0 or 1). z may alias x or y.
func AddVV(z, x, y []Word) (c Word) {
	for i := range z {
		xi, yi := x[i], y[i]
		zi := xi + yi + c
		// carry iff the unsigned sum wrapped around.
		if zi < xi || (c == 1 && zi == xi) {
			c = 1
		} else {
			c = 0
		}
		z[i] = zi
	}
	return c
}

// SubVV computes z[i] = x[i] - y[i] - b for i in [0, len(z)) with borrow
// propagation, and returns the final borrow-out (0 or 1). z may alias x or y.
func SubVV(z, x, y []Word) (b Word) {
	for i := range z {
		xi, yi := x[i], y[i]
		zi := xi - yi - b
		if zi > xi || (b == 1 && zi == xi) {
			b = 1
		} else {
			b = 0
		}
		z[i] = zi
	}
	return b
}

// AddVW computes z = x + y, adding the scalar y at z[0] and propagating
// the resulting carry across the slice, and returns the final carry-out.
// z may alias x.
func AddVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		zi := x[i] + c
		if zi < x[i] {
			c = 1
		} else {
			c = 0
		}
		z[i] = zi
	}
	return c
}

// SubVW computes z = x - y, subtracting the scalar y at z[0] and
// propagating the resulting borrow across the slice, and returns the final
// borrow-out. z may alias x.
func SubVW(z, x []Word, y Word) (b Word) {
	b = y
	for i := range z {
		zi := x[i] - b
		if zi > x[i] {
			b = 1
		} else {
			b = 0
		}
		z[i] = zi
	}
	return b
}

// mulWW computes the full 128-bit product x*y as (hi, lo).
func mulWW(x, y Word) (hi, lo Word) {
	return bits.Mul64(x, y)
}

// MulVW computes z = a*s (low len(a) limbs) and returns the overflow
// (high limb). a and z must be disjoint slices of equal length.
func MulVW(z, a []Word, s Word) (carry Word) {
	for i, ai := range a {
		hi, lo := mulWW(ai, s)
		lo2 := lo + carry
		if lo2 < lo {
			hi++
		}
		z[i] = lo2
		carry = hi
	}
	return carry
}

// AddMulVVW computes z += a*s element-wise (z and a have equal length),
// and returns the final carry-out (the overflow beyond len(z)). z and a
// must be disjoint slices.
func AddMulVVW(z, a []Word, s Word) (carry Word) {
	for i, ai := range a {
		hi, lo := mulWW(ai, s)
		lo2 := lo + carry
		if lo2 < lo {
			hi++
		}
		zi := z[i] + lo2
		if zi < z[i] {
			hi++
		}
		z[i] = zi
		carry = hi
	}
	return carry
}

// SubMulVVW computes z -= a*s element-wise (z and a have equal length),
// and returns the final borrow-out. z and a must be disjoint slices.
func SubMulVVW(z, a []Word, s Word) (borrow Word) {
	for i, ai := range a {
		hi, lo := mulWW(ai, s)
		lo2 := lo + borrow
		if lo2 < lo {
			hi++
		}
		zi := z[i] - lo2
		if zi > z[i] {
			hi++
		}
		z[i] = zi
		borrow = hi
	}
	return borrow
}

// ShlVU computes z = x << s for 0 <= s < Bits, and returns the bits
// shifted out of the top of the slice (right-aligned in the return
// value, i.e. the high s bits of x[len(x)-1]). z may alias x.
func ShlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(x) == 0 {
		return 0
	}
	inv := Bits - s
	c = x[len(x)-1] >> inv
	for i := len(x) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>inv
	}
	z[0] = x[0] << s
	return c
}

// ShrVU computes z = x >> s for 0 <= s < Bits, and returns the bits
// shifted out of the bottom of the slice, left-aligned in the return
// value (i.e. the low s bits of x[0], shifted up to the top of the word).
// z may alias x.
func ShrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	n := len(x)
	if n == 0 {
		return 0
	}
	inv := Bits - s
	c = x[0] << inv
	for i := 0; i < n-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<inv
	}
	z[n-1] = x[n-1] >> s
	return c
}

// Cmp compares a and b, both of length n, most-significant limb first, and
// returns -1, 0 or +1.
func Cmp(a, b []Word) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// IsZero reports whether every limb in a is zero.
func IsZero(a []Word) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}

// Norm returns the length of a with trailing (most-significant) zero
// limbs trimmed off, i.e. the length at which a is "normalized" per the
// data model: top limb nonzero, or length zero.
func Norm(a []Word) int {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	return n
}

// DivWVW computes quot[i] = floor((rem<<64 + a[i])/y), updating rem to the
// new remainder, processing from the most significant limb down, and
// returns the final remainder. quot and a may alias. Precondition: y != 0.
func DivWVW(quot, a []Word, y Word) (rem Word) {
	for i := len(a) - 1; i >= 0; i-- {
		quot[i], rem = divWW(rem, a[i], y)
	}
	return rem
}

// divWW divides the 128-bit numerator (hi, lo) by y, returning quotient and
// remainder. Precondition: hi < y (so the quotient fits in one word).
func divWW(hi, lo, y Word) (q, r Word) {
	return bits.Div64(hi, lo, y)
}
