package magnitude

import (
	"math/bits"
	"sync"
)

// natPools holds size-classed scratch buffers for the Karatsuba
// recursion's transient shift/combine allocations, modeled directly on
// the teacher's internal/bigfft/pool.go wordSlicePools: size classes are
// powers of four, and the pool index is recovered from a requested
// length or capacity with one bits.Len call instead of a linear scan.
// This keeps the kernel's "scratch acquired at call boundaries, never
// inside the hot inner loop" invariant (spec §5) without free-forming a
// new pooling strategy.
var natPools = [...]sync.Pool{
	{New: func() any { return make(Nat, 64) }},
	{New: func() any { return make(Nat, 256) }},
	{New: func() any { return make(Nat, 1024) }},
	{New: func() any { return make(Nat, 4096) }},
	{New: func() any { return make(Nat, 16384) }},
	{New: func() any { return make(Nat, 65536) }},
	{New: func() any { return make(Nat, 262144) }},
	{New: func() any { return make(Nat, 1048576) }},
}

var natPoolSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}

// natPoolIndex returns the pool index for a given size, or -1 if size is
// too large to be worth pooling. natPoolSizes are powers of 4 starting
// at 4^3 = 64, so bits.Len maps directly to an index (see the teacher's
// getWordSlicePoolIndex for the identical derivation).
func natPoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > natPoolSizes[len(natPoolSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireNat returns a zeroed Nat of exactly the requested length,
// drawn from the pool when size fits a size class. Release it with
// releaseNat once the caller is done with it.
func acquireNat(size int) Nat {
	idx := natPoolIndex(size)
	if idx < 0 {
		return make(Nat, size)
	}
	n := natPools[idx].Get().(Nat)
	clear(n)
	return n[:size]
}

// releaseNat returns n to the pool it was drawn from. Safe to call with
// nil or with a slice that was not obtained from acquireNat (it is
// simply left for the garbage collector in that case).
func releaseNat(n Nat) {
	if n == nil {
		return
	}
	c := cap(n)
	idx := natPoolIndex(c)
	if idx >= 0 && natPoolSizes[idx] == c {
		natPools[idx].Put(n[:c])
	}
}
