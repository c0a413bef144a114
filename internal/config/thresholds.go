// Package config holds the tunable size thresholds that govern algorithm
// selection in the multiplication dispatcher and decimal radix converter.
// Modeled on the teacher's internal/config/thresholds.go, generalized from
// bit-length thresholds to limb-count thresholds (the kernel here operates
// on limb arrays, not bit lengths).
package config

import "runtime"

// Thresholds reach the kernel only as explicit values: DefaultThresholds()
// is used unless a caller passes another Thresholds value (for example
// via bignum.SetThresholds). AdaptiveThresholds() takes effect only when a
// caller passes its result explicitly; nothing applies it automatically.

// Thresholds holds the limb-count crossover points for the multiplication
// dispatcher (spec §4.5) and the radix converter (spec §4.7).
type Thresholds struct {
	// Karatsuba is K_THRESHOLD: below this many limbs, base-case
	// multiplication is used.
	Karatsuba int
	// NTT is N_THRESHOLD: at or above this many limbs, NTT convolution is
	// used instead of Karatsuba.
	NTT int
	// Radix is R_THRESHOLD: below this many limbs, to_string uses repeated
	// divrem_1 instead of divide-and-conquer.
	Radix int
}

// DefaultThresholds returns the static defaults from spec §4.3/§4.4/§4.7:
// K_THRESHOLD near 30 limbs, N_THRESHOLD near 1024 limbs, R_THRESHOLD near
// 30 limbs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Karatsuba: 30,
		NTT:       1024,
		Radix:     30,
	}
}

// AdaptiveThresholds adjusts DefaultThresholds() based on hardware
// characteristics, mirroring the teacher's ApplyAdaptiveThresholds /
// EstimateOptimalFFTThreshold pattern. It only ever widens or narrows the
// crossover points; it never changes which algorithms exist.
func AdaptiveThresholds() Thresholds {
	t := DefaultThresholds()
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		t.Karatsuba = 48
	case numCPU <= 8:
		t.Karatsuba = 30
	default:
		t.Karatsuba = 24
	}

	wordSize := 32 << (^uint(0) >> 63)
	if wordSize == 64 {
		t.NTT = 1024
	} else {
		t.NTT = 2048
	}

	return t
}
