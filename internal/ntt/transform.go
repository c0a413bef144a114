package ntt

// transform performs an in-place iterative Cooley-Tukey decimation-in-time
// NTT (or its inverse) on a, whose length must be a power of two. Values
// in a are assumed to already be in Montgomery form for modulus mm and
// remain in Montgomery form on return. rt must have been built for a
// size that is a multiple of len(a), since each stage's root is derived
// from rt's n-th root (the mixed-radix wrapper in smooth.go calls this on
// the power-of-two rows of a larger transform with a table built for the
// row length).
func transform(mm modulus, a []uint64, rt *rootTable, invert bool) {
	n := len(a)
	bitReverse(a)
	for length := 2; length <= n; length <<= 1 {
		half := length / 2
		wn := rt.stageRoot(mm, length, invert)
		for i := 0; i < n; i += length {
			w := mm.r1 // Montgomery form of 1
			for j := 0; j < half; j++ {
				u := a[i+j]
				v := mm.mulMont(a[i+j+half], w)
				a[i+j] = mm.addMod(u, v)
				a[i+j+half] = mm.subMod(u, v)
				w = mm.mulMont(w, wn)
			}
		}
	}
	if invert {
		lenInv := mm.powMont(mm.toMont(uint64(n)%mm.p), mm.p-2)
		for i := range a {
			a[i] = mm.mulMont(a[i], lenInv)
		}
	}
}

// bitReverse permutes a into bit-reversed index order, the standard
// precondition for the iterative butterfly loop in transform.
func bitReverse(a []uint64) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}
