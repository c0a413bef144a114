package magnitude

import (
	"math/bits"

	"github.com/agbru/bignum/internal/bignumerrors"
	"github.com/agbru/bignum/internal/limb"
)

// DivMod computes the quotient and remainder of x/y (both unsigned,
// truncating toward zero) via schoolbook long division with 2-by-1
// quotient-digit estimation (Knuth's Algorithm D), grounded in
// original_source/test_bigint.cpp's mpn_divrem_1 test vectors and the
// classic long-division shape of other_examples/Go-zh-go.old__int.go.
// Returns bignumerrors.ErrDivisionByZero if y is zero.
func DivMod(x, y Nat) (q, r Nat, err error) {
	x, y = norm(x), norm(y)
	if len(y) == 0 {
		return nil, nil, bignumerrors.ErrDivisionByZero
	}
	if Cmp(x, y) < 0 {
		return Nat{}, x.Clone(), nil
	}
	if len(y) == 1 {
		quot := make(Nat, len(x))
		rem := limb.DivWVW(quot, x, y[0])
		return norm(quot), norm(Nat{rem}), nil
	}
	q, r = divmodKnuth(x, y)
	return norm(q), norm(r), nil
}

// divmodKnuth implements Knuth's Algorithm D (TAOCP vol. 2, §4.3.1) for
// divisor lengths >= 2: x and y must already be normalized (no leading
// zero limb) with len(y) >= 2 and x >= y.
func divmodKnuth(x, y Nat) (q, r Nat) {
	n := len(y)
	m := len(x) - n

	// Step D1 (normalize): left-shift both operands so the divisor's top
	// limb has its high bit set, which bounds the 2-by-1 quotient
	// estimate's error to at most 2 (the refinement loop below).
	shift := 0
	top := y[n-1]
	for top&(limb.Word(1)<<(limb.Bits-1)) == 0 {
		top <<= 1
		shift++
	}

	v := make(Nat, n)
	if shift == 0 {
		copy(v, y)
	} else {
		limb.ShlVU(v, y, uint(shift))
	}

	u := make(Nat, len(x)+1)
	if shift == 0 {
		copy(u, x)
	} else {
		u[len(x)] = limb.ShlVU(u[:len(x)], x, uint(shift))
	}

	vn1 := v[n-1]
	var vn2 limb.Word
	if n > 1 {
		vn2 = v[n-2]
	}

	quot := make(Nat, m+1)

	// Step D2-D7: for each quotient digit position, from the most to
	// least significant.
	for j := m; j >= 0; j-- {
		qhat, rhat, rhatOverflowed := estimateQuotientDigit(u[j+n], u[j+n-1], vn1)

		// Refine against the divisor's second-highest limb (at most two
		// decrements suffice, the classic Algorithm D bound). Skipped
		// when rhat has already conceptually overflowed past one limb
		// (only possible via the beta-1 branch below), since in that
		// case the refinement condition is guaranteed false anyway.
		if n > 1 && !rhatOverflowed {
			for {
				hi, lo := bits.Mul64(uint64(qhat), uint64(vn2))
				if hi < uint64(rhat) || (hi == uint64(rhat) && lo <= uint64(u[j+n-2])) {
					break
				}
				qhat--
				newRhat := rhat + vn1
				if newRhat < rhat {
					// rhat would overflow a limb: qhat can decrease no
					// further without going negative.
					break
				}
				rhat = newRhat
			}
		}

		borrow := limb.SubMulVVW(u[j:j+n], v, qhat)
		old := u[j+n]
		u[j+n] -= borrow
		if old < borrow {
			// Net borrow past the window: qhat was one too large.
			qhat--
			c := limb.AddVV(u[j:j+n], u[j:j+n], v)
			u[j+n] += c
		}

		quot[j] = qhat
	}

	rem := make(Nat, n)
	if shift == 0 {
		copy(rem, u[:n])
	} else {
		limb.ShrVU(rem, u[:n], uint(shift))
	}

	return quot, rem
}

// estimateQuotientDigit forms the 2-by-1 estimate qhat = floor((hi:lo) /
// divisor), capped at beta-1 when hi == divisor (the only case
// bits.Div64 cannot represent directly), along with the matching partial
// remainder rhat = (hi:lo) - qhat*divisor.
func estimateQuotientDigit(hi, lo, divisor limb.Word) (qhat, rhat limb.Word, rhatOverflowed bool) {
	if hi == divisor {
		qhat = ^limb.Word(0)
		rhat = lo + divisor
		return qhat, rhat, rhat < lo
	}
	q, r := bits.Div64(uint64(hi), uint64(lo), uint64(divisor))
	return limb.Word(q), limb.Word(r), false
}
