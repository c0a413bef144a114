package magnitude

// karatsuba computes x*y for balanced operands (lengths within a factor of
// unbalancedRatio of each other) using the three-recursive-product split: with
// h = ceil(n/2),
//
//	z0 = xlo*ylo
//	z2 = xhi*yhi
//	z1 = (xlo+xhi)*(ylo+yhi) - z0 - z2
//	r  = z0 + z1*beta^h + z2*beta^(2h)
//
// Falls back to mulDispatch recursively for each sub-product, which in turn
// falls back to the base case below karatsubaThreshold. Grounded in the
// classic three-way split described in spec §4.3 and in the general shape
// of divide-and-conquer multiplication used throughout the example pack's
// big-integer implementations (e.g. the Karatsuba step in
// other_examples/client9-big__natmul_fft.go's neighbourhood of algorithms).
func karatsuba(x, y Nat, opts dispatchOpts) Nat {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	h := (n + 1) / 2

	xlo, xhi := splitAt(x, h)
	ylo, yhi := splitAt(y, h)

	z0 := mulDispatch(xlo, ylo, opts)
	z2 := mulDispatch(xhi, yhi, opts)

	sx := add(xlo, xhi)
	sy := add(ylo, yhi)
	z1 := mulDispatch(sx, sy, opts)
	z1 = sub(z1, z0)
	z1 = sub(z1, z2)

	r := shiftedAdd(z0, z1, h)
	r = shiftedAdd(r, z2, 2*h)
	return norm(r)
}

// karatsubaSqr computes x*x via the same three-way split as karatsuba,
// but recurses through sqrDispatch instead of mulDispatch: with
// sx = xlo+xhi, z0 = xlo², z2 = xhi², and z1 = sx² - z0 - z2 (sx²
// replaces the general cross term (xlo+xhi)*(ylo+yhi) since x==y here),
// so every sub-product is itself a squaring, per spec §4.5's
// requirement to use the squaring form of C3/C4 for their recursive
// sub-products too, not just at the top level.
func karatsubaSqr(x Nat, opts dispatchOpts) Nat {
	h := (len(x) + 1) / 2

	xlo, xhi := splitAt(x, h)

	z0 := sqrDispatch(xlo, opts)
	z2 := sqrDispatch(xhi, opts)

	sx := add(xlo, xhi)
	z1 := sqrDispatch(sx, opts)
	z1 = sub(z1, z0)
	z1 = sub(z1, z2)

	r := shiftedAdd(z0, z1, h)
	r = shiftedAdd(r, z2, 2*h)
	return norm(r)
}

// splitAt splits x into (low h limbs, remaining high limbs), each
// normalized. Either half may be empty.
func splitAt(x Nat, h int) (lo, hi Nat) {
	if h >= len(x) {
		return norm(x.Clone()), Nat{}
	}
	lo = norm(x[:h].Clone())
	hi = norm(x[h:].Clone())
	return lo, hi
}

// shiftedAdd returns base + (part shifted up by `shift` whole limbs). The
// shifted scratch buffer is transient (built, fed into add, then discarded)
// so it is drawn from the size-classed scratch pool rather than a plain
// make, per the recursion's pooling requirement.
func shiftedAdd(base, part Nat, shift int) Nat {
	part = norm(part)
	if len(part) == 0 {
		return norm(base)
	}
	shifted := acquireNat(shift + len(part))
	copy(shifted[shift:], part)
	r := add(norm(base), norm(shifted))
	releaseNat(shifted)
	return r
}

// karatsubaUnbalanced decomposes the larger operand into blocks no longer
// than the shorter operand, multiplies each block via mulDispatch, and
// accumulates with an offset add ("balanced rectangles", spec §4.3). Used
// by the dispatcher when operand lengths differ by more than a factor of
// unbalancedRatio (four).
func karatsubaUnbalanced(short, long Nat, opts dispatchOpts) Nat {
	blockLen := len(short)
	if blockLen == 0 {
		return Nat{}
	}
	var acc Nat
	for off := 0; off < len(long); off += blockLen {
		end := off + blockLen
		if end > len(long) {
			end = len(long)
		}
		block := long[off:end]
		p := mulDispatch(short, block, opts)
		acc = shiftedAdd(acc, p, off)
	}
	return norm(acc)
}
