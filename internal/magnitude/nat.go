// Package magnitude implements the unsigned natural-number kernel: the
// normalized limb array type Nat, base-case and Karatsuba multiplication,
// the multiplication dispatcher, schoolbook division, and divide-and-conquer
// decimal radix conversion. The signed façade (package bignum, at the module
// root) owns a sign bit and delegates all magnitude arithmetic here.
package magnitude

import (
	"github.com/agbru/bignum/internal/limb"
)

// Nat is a normalized little-endian natural-number magnitude: Nat[0] is the
// least-significant limb. A normalized Nat has a nonzero top limb, or is
// empty (representing zero). Nat values returned by this package's
// operations are always normalized; Nat values accepted as input need not
// be, though callers are encouraged to keep them so.
type Nat []limb.Word

// norm trims trailing (most-significant) zero limbs, returning a
// normalized view over the same backing array.
func norm(x Nat) Nat {
	n := limb.Norm(x)
	return x[:n]
}

// IsZero reports whether x represents zero.
func (x Nat) IsZero() bool {
	return len(norm(x)) == 0
}

// Cmp compares x and y as unsigned magnitudes, returning -1, 0 or +1.
func Cmp(x, y Nat) int {
	x, y = norm(x), norm(y)
	if len(x) != len(y) {
		if len(x) > len(y) {
			return 1
		}
		return -1
	}
	return limb.Cmp(x, y)
}

// Clone returns a freshly allocated, normalized copy of x.
func (x Nat) Clone() Nat {
	x = norm(x)
	out := make(Nat, len(x))
	copy(out, x)
	return out
}

// SetUint64 returns a normalized Nat representing v.
func SetUint64(v uint64) Nat {
	if v == 0 {
		return Nat{}
	}
	return Nat{limb.Word(v)}
}

// Uint64 reports the low 64 bits of x and whether x fits in 64 bits.
func (x Nat) Uint64() (uint64, bool) {
	x = norm(x)
	switch len(x) {
	case 0:
		return 0, true
	case 1:
		return uint64(x[0]), true
	default:
		return uint64(x[0]), false
	}
}

// BitLen returns the number of bits required to represent x, i.e. 0 for
// zero and floor(log2(x))+1 otherwise.
func (x Nat) BitLen() int {
	x = norm(x)
	if len(x) == 0 {
		return 0
	}
	top := x[len(x)-1]
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return (len(x)-1)*limb.Bits + bits
}

// add returns x+y as a freshly normalized Nat.
func add(x, y Nat) Nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(Nat, len(x)+1)
	c := limb.AddVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = limb.AddVW(z[len(y):len(x)], x[len(y):], c)
	}
	z[len(x)] = c
	return norm(z)
}

// sub returns x-y as a freshly normalized Nat. Precondition: x >= y.
func sub(x, y Nat) Nat {
	z := make(Nat, len(x))
	b := limb.SubVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		b = limb.SubVW(z[len(y):], x[len(y):], b)
	}
	if b != 0 {
		panic("magnitude: sub underflow (x < y)")
	}
	return norm(z)
}

// Add returns x+y.
func Add(x, y Nat) Nat { return add(norm(x), norm(y)) }

// Sub returns x-y. Precondition: x >= y.
func Sub(x, y Nat) Nat { return sub(norm(x), norm(y)) }

// Lsh returns x shifted left by k bits.
func Lsh(x Nat, k uint) Nat {
	x = norm(x)
	if len(x) == 0 || k == 0 {
		out := make(Nat, len(x))
		copy(out, x)
		return norm(out)
	}
	words, bits := int(k/limb.Bits), k%limb.Bits
	z := make(Nat, len(x)+words+1)
	if bits == 0 {
		copy(z[words:], x)
	} else {
		c := limb.ShlVU(z[words:words+len(x)], x, bits)
		z[words+len(x)] = c
	}
	return norm(z)
}

// Rsh returns x shifted right by k bits (floor semantics).
func Rsh(x Nat, k uint) Nat {
	x = norm(x)
	words := int(k / limb.Bits)
	bits := k % limb.Bits
	if words >= len(x) {
		return Nat{}
	}
	src := x[words:]
	z := make(Nat, len(src))
	limb.ShrVU(z, src, bits)
	return norm(z)
}
