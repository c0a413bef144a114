package ntt

import (
	"time"

	"github.com/agbru/bignum/internal/bignumerrors"
	"github.com/agbru/bignum/internal/metrics"
)

// Multiply computes the product of two unsigned magnitudes, each given as
// a little-endian array of 64-bit limbs, via multi-prime NTT convolution
// (spec §4.4). It returns a SizeLimit error (so the caller can fall back
// to Karatsuba) when the operands would require a transform larger than
// this engine supports.
//
// Internally every 64-bit limb is split into two 32-bit digits: the CRT
// bound that guarantees exact reconstruction (N_max*(2^32-1)^2, see
// primes.go) is computed against 32-bit digits, not 64-bit limbs, so
// convolving at the 64-bit width directly would overflow the four-prime
// modulus for any realistically sized operand.
func Multiply(a, b []uint64) ([]uint64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil
	}
	da := wordsToDigits32(a)
	db := wordsToDigits32(b)
	n := len(da) + len(db)

	size, ok := ceilSmooth(n)
	if !ok {
		return nil, bignumerrors.SizeLimit{Requested: n, Max: maxSmoothSize}
	}

	var coeffs [4][]uint64
	for pi := range primes {
		coeffs[pi] = convolvePrime(pi, size, da, db)
	}

	lo := make([]uint64, n)
	hi := make([]uint64, n)
	for i := 0; i < n; i++ {
		v := garnerCRT(coeffs[0][i], coeffs[1][i], coeffs[2][i], coeffs[3][i])
		lo[i] = v.lo
		hi[i] = v.hi
	}

	product32 := carryPropagate(lo, hi)
	return digits32ToWords(product32), nil
}

func convolvePrime(primeIdx, size int, da, db []uint64) []uint64 {
	start := time.Now()
	defer func() { metrics.NTTTransformSeconds.Observe(time.Since(start).Seconds()) }()

	mm := primes[primeIdx]
	a := make([]uint64, size)
	b := make([]uint64, size)
	for i := 0; i < size; i++ {
		var va, vb uint64
		if i < len(da) {
			va = da[i] % mm.p
		}
		if i < len(db) {
			vb = db[i] % mm.p
		}
		a[i] = mm.toMont(va)
		b[i] = mm.toMont(vb)
	}

	forwardTransform(mm, primeIdx, a)
	forwardTransform(mm, primeIdx, b)
	for i := range a {
		a[i] = mm.mulMont(a[i], b[i])
	}
	inverseTransform(mm, primeIdx, a)

	out := make([]uint64, size)
	for i := range a {
		out[i] = mm.fromMont(a[i])
	}
	return out
}

// wordsToDigits32 splits each little-endian 64-bit limb into two
// little-endian 32-bit digits.
func wordsToDigits32(words []uint64) []uint64 {
	digits := make([]uint64, 0, 2*len(words))
	for _, w := range words {
		digits = append(digits, w&0xFFFFFFFF, w>>32)
	}
	for len(digits) > 1 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	if len(digits) == 0 {
		digits = append(digits, 0)
	}
	return digits
}

// digits32ToWords packs pairs of little-endian 32-bit digits back into
// 64-bit limbs, padding with a zero digit if the count is odd.
func digits32ToWords(digits []uint64) []uint64 {
	if len(digits)%2 == 1 {
		digits = append(digits, 0)
	}
	words := make([]uint64, len(digits)/2)
	for i := range words {
		words[i] = digits[2*i] | digits[2*i+1]<<32
	}
	for len(words) > 0 && words[len(words)-1] == 0 {
		words = words[:len(words)-1]
	}
	return words
}
