package ntt

import "sort"

// smoothTransform runs a forward or inverse NTT of length size = m*n2 for
// m in {3, 5} and n2 a power of two, using Cooley-Tukey's mixed-radix
// decomposition (Bailey's "four-step" algorithm): a small m-point DFT
// across strided columns, a twiddle multiply, and a row-wise power-of-two
// NTT, scattered back into natural order. Grounded in
// original_source/ntt/common.hpp's SMOOTH_TABLE, which enumerates exactly
// the m*2^k sizes this function supports, and in
// original_source/tools/plot_bailey_vs_direct_ntt.py, which benchmarks
// this same four-step construction against a direct (non-mixed-radix)
// transform.
func smoothTransform(mm modulus, primeIdx int, a []uint64, m, n2 int, invert bool) {
	size := m * n2
	rtFull := tableFor(primeIdx, size)
	rtRow := tableFor(primeIdx, n2)

	smallRoot := mm.powMont(mm.toMont(mm.root), (mm.p-1)/uint64(m))
	if invert {
		smallRoot = mm.powMont(smallRoot, mm.p-2)
	}

	scratch := make([]uint64, size)
	col := make([]uint64, m)

	// Step 1: direct m-point DFT across the strided columns (n1 = 0..m-1
	// at fixed n2), written into scratch in row-major order (row k1, m
	// rows of length n2).
	for n2i := 0; n2i < n2; n2i++ {
		for n1 := 0; n1 < m; n1++ {
			col[n1] = a[n1*n2+n2i]
		}
		for k1 := 0; k1 < m; k1++ {
			wk1 := mm.powMont(smallRoot, uint64(k1))
			acc := uint64(0)
			w := mm.r1
			for j := 0; j < m; j++ {
				acc = mm.addMod(acc, mm.mulMont(col[j], w))
				w = mm.mulMont(w, wk1)
			}
			scratch[k1*n2+n2i] = acc
		}
	}

	// Step 2: twiddle multiply by W_size^{n2*k1}, row by row.
	twBase := rtFull.rootN
	if invert {
		twBase = rtFull.invRootN
	}
	for k1 := 0; k1 < m; k1++ {
		wk1 := mm.powMont(twBase, uint64(k1))
		w := mm.r1
		row := scratch[k1*n2 : k1*n2+n2]
		for n2i := range row {
			row[n2i] = mm.mulMont(row[n2i], w)
			w = mm.mulMont(w, wk1)
		}
	}

	// Step 3: row-wise power-of-two NTT, one per m rows. transform
	// already applies the n2^-1 rescale on the inverse path.
	for k1 := 0; k1 < m; k1++ {
		row := scratch[k1*n2 : k1*n2+n2]
		transform(mm, row, rtRow, invert)
	}

	// Step 4: scatter scratch[k1*n2+k2] into natural order a[k1+m*k2].
	for k1 := 0; k1 < m; k1++ {
		for k2 := 0; k2 < n2; k2++ {
			a[k1+m*k2] = scratch[k1*n2+k2]
		}
	}

	if invert {
		mInv := mm.powMont(mm.toMont(uint64(m)%mm.p), mm.p-2)
		for i := range a {
			a[i] = mm.mulMont(a[i], mInv)
		}
	}
}

func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }

// factorSmooth splits a smooth size produced by ceilSmooth into its
// m-factor (1, 3, or 5) and power-of-two remainder.
func factorSmooth(size int) (m, n2 int) {
	if isPow2(size) {
		return 1, size
	}
	if size%5 == 0 && isPow2(size/5) {
		return 5, size / 5
	}
	if size%3 == 0 && isPow2(size/3) {
		return 3, size / 3
	}
	return 1, size
}

// forwardTransform and inverseTransform dispatch between the pure
// power-of-two core and the mixed-radix wrapper based on the factorized
// size.
func forwardTransform(mm modulus, primeIdx int, a []uint64) {
	m, n2 := factorSmooth(len(a))
	if m == 1 {
		transform(mm, a, tableFor(primeIdx, n2), false)
		return
	}
	smoothTransform(mm, primeIdx, a, m, n2, false)
}

func inverseTransform(mm modulus, primeIdx int, a []uint64) {
	m, n2 := factorSmooth(len(a))
	if m == 1 {
		transform(mm, a, tableFor(primeIdx, n2), true)
		return
	}
	smoothTransform(mm, primeIdx, a, m, n2, true)
}

// smoothSizes lists every size of the form 2^k, 3*2^k, or 5*2^k with
// k <= maxLog2, up to maxSmoothSize, ascending, mirroring
// original_source/ntt/common.hpp's SMOOTH_TABLE.
var smoothSizes = buildSmoothSizes()

func buildSmoothSizes() []int {
	set := map[int]bool{}
	for k := 0; k <= maxLog2 && (1<<k) <= maxSmoothSize; k++ {
		pow2 := 1 << k
		set[pow2] = true
		if 3*pow2 <= maxSmoothSize {
			set[3*pow2] = true
		}
		if 5*pow2 <= maxSmoothSize {
			set[5*pow2] = true
		}
	}
	sizes := make([]int, 0, len(set))
	for s := range set {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	return sizes
}

// ceilSmooth returns the smallest smooth size >= n, mirroring
// original_source/ntt/common.hpp's ceil_smooth binary search.
func ceilSmooth(n int) (int, bool) {
	lo, hi := 0, len(smoothSizes)
	for lo < hi {
		mid := (lo + hi) / 2
		if smoothSizes[mid] < n {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(smoothSizes) {
		return 0, false
	}
	return smoothSizes[lo], true
}
