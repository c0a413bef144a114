package ntt

import "math/bits"

// u128 is a minimal 128-bit unsigned accumulator. The exact convolution
// coefficients reconstructed by garnerCRT are bounded by
// N_max*(2^32-1)^2, an 89-bit quantity (see primes.go), so two 64-bit
// words give ample headroom without reaching for a general bignum type
// inside this package.
type u128 struct {
	hi, lo uint64
}

func u128FromMul(a, b uint64) u128 {
	hi, lo := bits.Mul64(a, b)
	return u128{hi: hi, lo: lo}
}

func (x u128) add(y u128) u128 {
	lo, c := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, c)
	return u128{hi: hi, lo: lo}
}

// mulU64x128 computes a*b truncated to 128 bits, which is exact as long
// as the true product does not exceed 2^128 (guaranteed by the 89-bit
// bound on every value this package multiplies this way).
func mulU64x128(a uint64, b u128) u128 {
	hi1, lo := bits.Mul64(a, b.lo)
	_, lo2 := bits.Mul64(a, b.hi)
	hi, _ := bits.Add64(hi1, lo2, 0)
	return u128{hi: hi, lo: lo}
}

// invMod returns the inverse of a modulo m via the extended Euclidean
// algorithm. m must be prime (all moduli here are), though the algorithm
// itself only requires gcd(a, m) == 1.
func invMod(a, m uint64) uint64 {
	a %= m
	var oldR, r = int64(a), int64(m)
	var oldS, s = int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldS < 0 {
		oldS += int64(m)
	}
	return uint64(oldS) % m
}

func subModPlain(a, b, m uint64) uint64 {
	a %= m
	b %= m
	if a >= b {
		return a - b
	}
	return a + m - b
}

func mulModPlain(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a%m, b%m)
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}

// crtConstants holds the precomputed mixed-radix inverses and partial
// moduli products used by garnerCRT, computed once at package init since
// the four primes are fixed.
var (
	invP0modP1     uint64
	invP0P1modP2   uint64
	invP0P1P2modP3 uint64
	p0p1           u128
	p0p1p2         u128
)

func init() {
	p0, p1, p2, p3 := primes[0].p, primes[1].p, primes[2].p, primes[3].p
	invP0modP1 = invMod(p0, p1)
	p0p1 = u128FromMul(p0, p1)
	invP0P1modP2 = invMod(mulModPlain(p0, p1, p2), p2)
	p0p1p2 = mulU64x128(p2, p0p1)
	p0p1p2modP3 := mulModPlain(mulModPlain(p0, p1, p3), p2, p3)
	invP0P1P2modP3 = invMod(p0p1p2modP3, p3)
}

// garnerCRT reconstructs the unique nonnegative integer below
// p0*p1*p2*p3 congruent to r0 mod p0, r1 mod p1, r2 mod p2, r3 mod p3,
// via Garner's mixed-radix algorithm, returning it as a 128-bit value.
func garnerCRT(r0, r1, r2, r3 uint64) u128 {
	p0, p1, p2, p3 := primes[0].p, primes[1].p, primes[2].p, primes[3].p

	x0 := r0 % p0

	x1 := mulModPlain(subModPlain(r1, x0, p1), invP0modP1, p1)

	t2 := subModPlain(r2, x0, p2)
	t2 = subModPlain(t2, mulModPlain(x1, p0, p2), p2)
	x2 := mulModPlain(t2, invP0P1modP2, p2)

	t3 := subModPlain(r3, x0, p3)
	t3 = subModPlain(t3, mulModPlain(x1, p0, p3), p3)
	t3 = subModPlain(t3, mulModPlain(x2, mulModPlain(p0, p1, p3), p3), p3)
	x3 := mulModPlain(t3, invP0P1P2modP3, p3)

	value := u128FromMul(x0, 1)
	value = value.add(u128FromMul(x1, p0))
	value = value.add(mulU64x128(x2, p0p1))
	value = value.add(mulU64x128(x3, p0p1p2))
	return value
}

// carryPropagate turns an array of 128-bit convolution coefficients
// (given as separate lo/hi words, base 2^32 positional values) into a
// clean base-2^32 digit array, propagating the carry out of each
// position into the next. The running carry itself needs up to 128 bits
// of headroom (a coefficient near the 89-bit bound plus a carry from the
// previous position), so it is tracked as a u128 throughout.
func carryPropagate(lo, hi []uint64) []uint64 {
	out := make([]uint64, 0, len(lo)+4)
	var carry u128
	for i := range lo {
		sumLo, c := bits.Add64(lo[i], carry.lo, 0)
		sumHi, _ := bits.Add64(hi[i], carry.hi, c)
		out = append(out, sumLo&0xFFFFFFFF)
		carry = u128{
			lo: (sumLo >> 32) | (sumHi << 32),
			hi: sumHi >> 32,
		}
	}
	for carry.lo != 0 || carry.hi != 0 {
		out = append(out, carry.lo&0xFFFFFFFF)
		carry = u128{
			lo: (carry.lo >> 32) | (carry.hi << 32),
			hi: carry.hi >> 32,
		}
	}
	return out
}
