package ntt

import (
	"math/big"
	"testing"
)

func wordsFromUint64(v uint64) []uint64 { return []uint64{v} }

func bigFromWords(words []uint64) *big.Int {
	r := new(big.Int)
	base := new(big.Int).Lsh(big.NewInt(1), 64)
	for i := len(words) - 1; i >= 0; i-- {
		r.Mul(r, base)
		r.Add(r, new(big.Int).SetUint64(words[i]))
	}
	return r
}

func wordsFromBig(x *big.Int) []uint64 {
	if x.Sign() == 0 {
		return nil
	}
	var out []uint64
	rem := new(big.Int).Set(x)
	mask := new(big.Int).SetUint64(^uint64(0))
	for rem.Sign() != 0 {
		w := new(big.Int).And(rem, mask)
		out = append(out, w.Uint64())
		rem.Rsh(rem, 64)
	}
	return out
}

func TestMultiplySmallValues(t *testing.T) {
	cases := []struct{ a, b uint64 }{
		{0, 12345},
		{1, 1},
		{7, 9},
		{1 << 32, 1 << 32},
		{^uint64(0), ^uint64(0)},
	}
	for _, c := range cases {
		got, err := Multiply(wordsFromUint64(c.a), wordsFromUint64(c.b))
		if err != nil {
			t.Fatalf("Multiply(%d,%d): %v", c.a, c.b, err)
		}
		want := new(big.Int).Mul(new(big.Int).SetUint64(c.a), new(big.Int).SetUint64(c.b))
		if bigFromWords(got).Cmp(want) != 0 {
			t.Errorf("Multiply(%d,%d) = %v, want %v", c.a, c.b, bigFromWords(got), want)
		}
	}
}

func TestMultiplyAgainstMathBigRandomized(t *testing.T) {
	seed := uint64(0x9e3779b97f4a7c15)
	next := func() uint64 {
		seed ^= seed << 13
		seed ^= seed >> 7
		seed ^= seed << 17
		return seed
	}
	randWords := func(n int) []uint64 {
		w := make([]uint64, n)
		for i := range w {
			w[i] = next()
		}
		for len(w) > 1 && w[len(w)-1] == 0 {
			w = w[:len(w)-1]
		}
		return w
	}

	for trial := 0; trial < 20; trial++ {
		na := 1 + int(next()%40)
		nb := 1 + int(next()%40)
		a := randWords(na)
		b := randWords(nb)

		got, err := Multiply(a, b)
		if err != nil {
			t.Fatalf("trial %d: Multiply returned error: %v", trial, err)
		}
		want := new(big.Int).Mul(bigFromWords(a), bigFromWords(b))
		if bigFromWords(got).Cmp(want) != 0 {
			t.Fatalf("trial %d: mismatch\n got  = %v\n want = %v", trial, bigFromWords(got), want)
		}
	}
}

func TestMultiplyZeroOperand(t *testing.T) {
	got, err := Multiply(nil, wordsFromUint64(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("Multiply(0, 5) = %v, want nil/empty", got)
	}
}

func TestCeilSmoothCoversRequestedSizes(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 6, 100, 1000, 1 << 20} {
		size, ok := ceilSmooth(n)
		if !ok {
			t.Fatalf("ceilSmooth(%d): expected ok", n)
		}
		if size < n {
			t.Fatalf("ceilSmooth(%d) = %d, want >= %d", n, size, n)
		}
		m, n2 := factorSmooth(size)
		if m*n2 != size {
			t.Fatalf("factorSmooth(%d) = (%d, %d), product != size", size, m, n2)
		}
	}
}

func TestCeilSmoothRejectsOversizedRequest(t *testing.T) {
	if _, ok := ceilSmooth(maxSmoothSize + 1); ok {
		t.Fatalf("ceilSmooth(maxSmoothSize+1) should report not-ok")
	}
}

func TestMontgomeryRoundTrip(t *testing.T) {
	for _, mm := range primes {
		for _, x := range []uint64{0, 1, mm.p - 1, mm.p / 2} {
			got := mm.fromMont(mm.toMont(x))
			if got != x {
				t.Errorf("prime %d: fromMont(toMont(%d)) = %d", mm.p, x, got)
			}
		}
	}
}

func TestPrimitiveRootOrder(t *testing.T) {
	for _, mm := range primes {
		g := mm.toMont(mm.root)
		order := mm.p - 1
		if got := mm.powMont(g, order); got != mm.r1 {
			t.Errorf("prime %d: root^(p-1) != 1", mm.p)
		}
		for _, q := range []uint64{2, 3, 5, 7} {
			if order%q != 0 {
				continue
			}
			if got := mm.powMont(g, order/q); got == mm.r1 {
				t.Errorf("prime %d: root is not primitive, root^((p-1)/%d) == 1", mm.p, q)
			}
		}
	}
}
