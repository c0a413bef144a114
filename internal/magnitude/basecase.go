package magnitude

import (
	"math/bits"

	"github.com/agbru/bignum/internal/limb"
)

// mulBasecase computes r = a*b by repeated addmul_1, r must have length
// len(a)+len(b), disjoint from a and b. This is the O(n*m) schoolbook
// product; the top limb of r may be zero.
func mulBasecase(r, a, b Nat) {
	for i := range r {
		r[i] = 0
	}
	if len(a) == 0 || len(b) == 0 {
		return
	}
	for j, bj := range b {
		if bj == 0 {
			continue
		}
		r[j+len(a)] = limb.AddMulVVW(r[j:j+len(a)], a, bj)
	}
}

// sqrBasecase computes r = a*a exploiting symmetry: the off-diagonal
// products a[i]*a[j] (i<j) are each computed once, doubled, and the
// diagonal terms a[i]^2 are added in separately. Must be bit-for-bit
// identical to mulBasecase(r, a, a). r must have length 2*len(a).
func sqrBasecase(r, a Nat) {
	n := len(a)
	for i := range r {
		r[i] = 0
	}
	if n == 0 {
		return
	}
	// Off-diagonal: accumulate sum_{i<j} a[i]*a[j] * beta^{i+j} into r.
	for i := 0; i < n-1; i++ {
		ai := a[i]
		if ai == 0 {
			continue
		}
		rest := a[i+1:]
		c := limb.AddMulVVW(r[2*i+1:2*i+1+len(rest)], rest, ai)
		// propagate carry c into the remaining higher limbs of r.
		if c != 0 {
			k := 2*i + 1 + len(rest)
			for k < len(r) {
				sum := r[k] + c
				r[k] = sum
				if sum >= c {
					break
				}
				c = 1
				k++
			}
		}
	}
	// Double the off-diagonal sum.
	carry := limb.Word(0)
	for i := range r {
		v := r[i]
		nv := v<<1 | carry
		carry = v >> (limb.Bits - 1)
		r[i] = nv
	}
	// Add the diagonal terms a[i]^2.
	for i, ai := range a {
		hi, lo := mulWW2(ai)
		pos := 2 * i
		diag := [2]limb.Word{lo, hi}
		c := limb.AddVV(r[pos:pos+2], r[pos:pos+2], diag[:])
		k := pos + 2
		for c != 0 && k < len(r) {
			sum := r[k] + c
			r[k] = sum
			if sum >= c {
				break
			}
			c = 1
			k++
		}
	}
}

// mulWW2 computes the square of a single limb as (hi, lo).
func mulWW2(a limb.Word) (hi, lo limb.Word) {
	hi, lo = bits.Mul64(a, a)
	return hi, lo
}

// mulBasecaseNat is the Nat-returning convenience wrapper used by the
// dispatcher: r is freshly allocated and normalized.
func mulBasecaseNat(a, b Nat) Nat {
	if len(a) == 0 || len(b) == 0 {
		return Nat{}
	}
	r := make(Nat, len(a)+len(b))
	mulBasecase(r, a, b)
	return norm(r)
}

// sqrBasecaseNat is the Nat-returning convenience wrapper for squaring.
func sqrBasecaseNat(a Nat) Nat {
	if len(a) == 0 {
		return Nat{}
	}
	r := make(Nat, 2*len(a))
	sqrBasecase(r, a)
	return norm(r)
}
