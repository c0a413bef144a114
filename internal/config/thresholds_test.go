package config

import "testing"

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()
	if th.Karatsuba <= 0 || th.NTT <= th.Karatsuba || th.Radix <= 0 {
		t.Fatalf("DefaultThresholds() produced an inconsistent set: %+v", th)
	}
}

func TestAdaptiveThresholdsStaysConsistent(t *testing.T) {
	th := AdaptiveThresholds()
	if th.Karatsuba <= 0 {
		t.Fatalf("AdaptiveThresholds() Karatsuba = %d, want > 0", th.Karatsuba)
	}
	if th.NTT <= 0 {
		t.Fatalf("AdaptiveThresholds() NTT = %d, want > 0", th.NTT)
	}
	if th.Radix != DefaultThresholds().Radix {
		t.Fatalf("AdaptiveThresholds() should not change Radix, got %d want %d", th.Radix, DefaultThresholds().Radix)
	}
}
