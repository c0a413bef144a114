package magnitude

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/agbru/bignum/internal/bignumerrors"
	"github.com/agbru/bignum/internal/limb"
)

func natToBig(n Nat) *big.Int {
	r := new(big.Int)
	base := new(big.Int).Lsh(big.NewInt(1), limb.Bits)
	for i := len(n) - 1; i >= 0; i-- {
		r.Mul(r, base)
		r.Add(r, new(big.Int).SetUint64(uint64(n[i])))
	}
	return r
}

func bigToNat(x *big.Int) Nat {
	if x.Sign() == 0 {
		return Nat{}
	}
	var words []limb.Word
	rem := new(big.Int).Set(x)
	mask := new(big.Int).SetUint64(^uint64(0))
	for rem.Sign() != 0 {
		w := new(big.Int).And(rem, mask)
		words = append(words, limb.Word(w.Uint64()))
		rem.Rsh(rem, limb.Bits)
	}
	return norm(words)
}

func TestDivModDivisionByZero(t *testing.T) {
	_, _, err := DivMod(Nat{5}, Nat{})
	if err != bignumerrors.ErrDivisionByZero {
		t.Fatalf("DivMod(5, 0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestDivModDividendSmallerThanDivisor(t *testing.T) {
	q, r, err := DivMod(Nat{5}, Nat{10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q) != 0 || Cmp(r, Nat{5}) != 0 {
		t.Fatalf("DivMod(5, 10) = (%v, %v), want (0, 5)", q, r)
	}
}

func TestDivModSingleLimbDivisor(t *testing.T) {
	x := Nat{0, 0, 1} // 2^128
	y := Nat{3}
	q, r, err := DivMod(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantQ := new(big.Int).Div(natToBig(x), big.NewInt(3))
	wantR := new(big.Int).Mod(natToBig(x), big.NewInt(3))
	if natToBig(q).Cmp(wantQ) != 0 || natToBig(r).Cmp(wantR) != 0 {
		t.Fatalf("DivMod(2^128, 3) = (%v, %v), want (%v, %v)", natToBig(q), natToBig(r), wantQ, wantR)
	}
}

func TestDivModExactPowerOfTwo(t *testing.T) {
	// (2^128) / (2^64 + 1) rounds to 2^64-1 with remainder 1, the spec's
	// headline worked example.
	x := new(big.Int).Lsh(big.NewInt(1), 128)
	y := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	q, r, err := DivMod(bigToNat(x), bigToNat(y))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantQ := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	if natToBig(q).Cmp(wantQ) != 0 {
		t.Fatalf("quotient = %v, want %v", natToBig(q), wantQ)
	}
	if natToBig(r).Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("remainder = %v, want 1", natToBig(r))
	}
}

func TestDivModMultiLimbDivisorAgainstMathBig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randNat := func(limbCount int) Nat {
		w := make(Nat, limbCount)
		for i := range w {
			w[i] = limb.Word(rng.Uint64())
		}
		return norm(w)
	}

	for trial := 0; trial < 200; trial++ {
		dn := 2 + rng.Intn(6)
		nn := dn + rng.Intn(10)
		y := randNat(dn)
		if len(y) == 0 {
			continue
		}
		x := randNat(nn)

		q, r, err := DivMod(x, y)
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", trial, err)
		}

		bx, by := natToBig(x), natToBig(y)
		wantQ := new(big.Int).Div(bx, by)
		wantR := new(big.Int).Mod(bx, by)
		if natToBig(q).Cmp(wantQ) != 0 {
			t.Fatalf("trial %d: quotient mismatch\n x=%v\n y=%v\n got=%v\n want=%v", trial, bx, by, natToBig(q), wantQ)
		}
		if natToBig(r).Cmp(wantR) != 0 {
			t.Fatalf("trial %d: remainder mismatch\n x=%v\n y=%v\n got=%v\n want=%v", trial, bx, by, natToBig(r), wantR)
		}
		// q*y + r == x always.
		check := new(big.Int).Add(new(big.Int).Mul(natToBig(q), natToBig(y)), natToBig(r))
		if check.Cmp(bx) != 0 {
			t.Fatalf("trial %d: q*y+r != x", trial)
		}
	}
}

func TestDivModNormalizationRequired(t *testing.T) {
	// Divisor's top limb has a clear (not just low) high bit, forcing a
	// nontrivial normalization shift.
	x := Nat{0xFFFFFFFFFFFFFFFF, 0x0102030405060708, 0x1}
	y := Nat{0xFFFFFFFF, 0x01}
	q, r, err := DivMod(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bx, by := natToBig(x), natToBig(y)
	wantQ := new(big.Int).Div(bx, by)
	wantR := new(big.Int).Mod(bx, by)
	if natToBig(q).Cmp(wantQ) != 0 || natToBig(r).Cmp(wantR) != 0 {
		t.Fatalf("DivMod mismatch: got (%v,%v) want (%v,%v)", natToBig(q), natToBig(r), wantQ, wantR)
	}
}
