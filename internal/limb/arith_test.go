package limb

import (
	"math/rand"
	"testing"
)

func TestAddVVCarryPropagation(t *testing.T) {
	a := []Word{^Word(0), ^Word(0), 0}
	b := []Word{1, 0, 0}
	z := make([]Word, 3)
	c := AddVV(z, a, b)
	if c != 0 || z[0] != 0 || z[1] != 0 || z[2] != 1 {
		t.Fatalf("AddVV((2^64-1,2^64-1,0), (1,0,0)) = %v, carry=%d", z, c)
	}
}

func TestSubVVBorrowPropagation(t *testing.T) {
	a := []Word{0, 0, 1}
	b := []Word{1, 0, 0}
	z := make([]Word, 3)
	borrow := SubVV(z, a, b)
	if borrow != 0 || z[0] != ^Word(0) || z[1] != ^Word(0) || z[2] != 0 {
		t.Fatalf("SubVV mismatch: %v borrow=%d", z, borrow)
	}
}

func TestAddVVAliasedOutput(t *testing.T) {
	a := []Word{1, 2, 3}
	b := []Word{4, 5, 6}
	c := AddVV(a, a, b)
	if c != 0 || a[0] != 5 || a[1] != 7 || a[2] != 9 {
		t.Fatalf("in-place AddVV mismatch: %v", a)
	}
}

func TestMulVWOverflow(t *testing.T) {
	a := []Word{^Word(0)}
	z := make([]Word, 1)
	hi := MulVW(z, a, 2)
	if z[0] != ^Word(0)-1 || hi != 1 {
		t.Fatalf("(2^64-1)*2: got lo=%d hi=%d", z[0], hi)
	}
}

func TestAddMulVVW(t *testing.T) {
	z := []Word{100, 0}
	a := []Word{3, 0}
	hi := AddMulVVW(z, a, 7)
	if z[0] != 121 || hi != 0 {
		t.Fatalf("100 + 3*7: got z=%v hi=%d", z, hi)
	}
}

func TestSubMulVVW(t *testing.T) {
	z := []Word{121, 0}
	a := []Word{3, 0}
	borrow := SubMulVVW(z, a, 7)
	if z[0] != 100 || borrow != 0 {
		t.Fatalf("121 - 3*7: got z=%v borrow=%d", z, borrow)
	}
}

func TestShlVUAndShrVURoundTrip(t *testing.T) {
	x := []Word{0x1234567890ABCDEF, 0xFEDCBA0987654321}
	z := make([]Word, 2)
	out := ShlVU(z, x, 4)
	if z[0] != x[0]<<4 {
		t.Fatalf("lshift[0] mismatch")
	}
	if z[1] != (x[1]<<4 | x[0]>>60) {
		t.Fatalf("lshift[1] mismatch")
	}
	if out != x[1]>>60 {
		t.Fatalf("lshift carry-out mismatch")
	}

	back := make([]Word, 2)
	in := ShrVU(back, z, 4)
	_ = in
	if back[0] != x[0] || back[1] != x[1] {
		t.Fatalf("shift round trip mismatch: got %v want %v", back, x)
	}
}

func TestShlVUBy63(t *testing.T) {
	x := []Word{0x8000000000000000, 0}
	z := make([]Word, 2)
	out := ShlVU(z, x, 63)
	if z[0] != 0 || z[1] != 0x4000000000000000 || out != 0 {
		t.Fatalf("lshift by 63: got z=%v out=%x", z, out)
	}
}

func TestCmp(t *testing.T) {
	a := []Word{1, 2}
	b := []Word{1, 2}
	c := []Word{2, 1}
	d := []Word{0, 3}
	if Cmp(a, b) != 0 {
		t.Fatalf("equal vectors should compare equal")
	}
	if Cmp(a, c) <= 0 {
		t.Fatalf("a should be > c (MSB decides)")
	}
	if Cmp(c, a) >= 0 {
		t.Fatalf("c should be < a (MSB decides)")
	}
	if Cmp(a, d) >= 0 {
		t.Fatalf("a should be < d")
	}
}

func TestDivWVW(t *testing.T) {
	a := []Word{7, 0}
	quot := make([]Word, 2)
	rem := DivWVW(quot, a, 2)
	if quot[0] != 3 || quot[1] != 0 || rem != 1 {
		t.Fatalf("7/2: got quot=%v rem=%d", quot, rem)
	}
}

func TestDivWVWMultiLimb(t *testing.T) {
	// (1<<64 + 0) / 3 = 0x5555555555555555 r 1
	a := []Word{0, 1}
	quot := make([]Word, 2)
	rem := DivWVW(quot, a, 3)
	if rem != 1 || quot[1] != 0 || quot[0] != 0x5555555555555555 {
		t.Fatalf("2^64/3: got quot=%v rem=%d", quot, rem)
	}
}

func TestNorm(t *testing.T) {
	if Norm([]Word{1, 2, 0, 0}) != 2 {
		t.Fatalf("Norm should trim trailing zero limbs")
	}
	if Norm([]Word{0, 0, 0}) != 0 {
		t.Fatalf("Norm of all-zero should be 0")
	}
}

func TestAddSubInverse(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 500; trial++ {
		n := 1 + r.Intn(8)
		a := randomWords(r, n)
		b := randomWords(r, n)
		sum := make([]Word, n)
		c := AddVV(sum, a, b)
		back := make([]Word, n)
		borrow := SubVV(back, sum, b)
		if borrow != c {
			t.Fatalf("trial %d: borrow %d != carry %d", trial, borrow, c)
		}
		if Cmp(back, a) != 0 {
			t.Fatalf("trial %d: (a+b)-b != a: a=%v back=%v", trial, a, back)
		}
	}
}

func randomWords(r *rand.Rand, n int) []Word {
	w := make([]Word, n)
	for i := range w {
		w[i] = r.Uint64()
	}
	return w
}
