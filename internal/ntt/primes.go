// Package ntt implements multi-prime Number Theoretic Transform convolution
// for the multiplication dispatcher's large-operand tier (spec §4.4).
//
// Four 32-bit primes, each of the form k*2^23*15+1 so every prime supports
// mixed-radix transform sizes N = m*2^k for m in {1,3,5} and k <= 23, up to
// N_max = 3*2^23 (spec §4.4's smooth-size requirement, grounded in
// original_source/ntt/common.hpp's SMOOTH_TABLE). The product of all four
// primes is a 119-bit modulus, comfortably above the 89-bit bound needed to
// reconstruct an exact convolution of two N_max-limb, 32-bit-limb operands
// without modular wraparound (see DESIGN.md's "always four primes" Open
// Question resolution: three primes fall one bit short of this bound at the
// largest permitted N).
package ntt

// modulus holds one NTT-friendly prime together with its Montgomery REDC
// constants and a primitive root of the multiplicative group.
type modulus struct {
	p    uint64 // the prime, < 2^32
	root uint64 // a primitive root mod p
	// ninv satisfies p*ninv == -1 (mod 2^32), the REDC constant.
	ninv uint64
	// r1 = 2^32 mod p, the Montgomery representation of 1.
	r1 uint64
	// r2 = (2^32)^2 mod p, used to convert plain values into Montgomery form.
	r2 uint64
}

// primes lists the four moduli used by every transform, in a fixed order
// that also fixes the Garner CRT reconstruction order in crt.go.
var primes = [4]modulus{
	{p: 377487361, root: 7, ninv: 377487359, r1: 142606325, r2: 97121569},
	{p: 754974721, root: 11, ninv: 754974719, r1: 520093691, r2: 749009521},
	{p: 880803841, root: 26, ninv: 880803839, r1: 771751932, r2: 464649016},
	{p: 2013265921, root: 31, ninv: 2013265919, r1: 268435454, r2: 1172168163},
}

// maxLog2 is the largest power-of-two component any prime's multiplicative
// group supports (each prime's order is divisible by 2^maxLog2), mirroring
// original_source/ntt/common.hpp's MAX_LOG.
const maxLog2 = 23

// maxSmoothSize is N_max = 3*2^23, the largest transform size the engine
// supports. Requests above this decline with a SizeLimit error and the
// dispatcher falls back to Karatsuba.
const maxSmoothSize = 3 << maxLog2
