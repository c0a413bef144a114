package ntt

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/agbru/bignum/internal/metrics"
)

// rootTable holds the per-(prime, size) data needed to run a power-of-two
// NTT: the principal n-th roots of unity (forward and inverse) and the
// Montgomery form of n^-1 mod p. transform does not read nInvMont; it
// computes the inverse of its own length when rescaling an inverse
// transform.
// Building one requires only a handful of powMont calls, but a busy
// server computing many large products concurrently can still ask for
// the same (prime, size) pair many times before the first build
// completes, so lookups are deduplicated with a singleflight.Group.
type rootTable struct {
	n          int
	rootN      uint64 // principal n-th root of unity, Montgomery form
	invRootN   uint64 // its inverse, Montgomery form
	nInvMont   uint64 // n^-1 mod p, Montgomery form
}

type tableKey struct {
	prime int
	n     int
}

var (
	tableCache sync.Map // tableKey -> *rootTable
	tableGroup singleflight.Group
)

func buildRootTable(mm modulus, n int) *rootTable {
	order := uint64(n)
	rootMont := mm.toMont(mm.root)
	rootN := mm.powMont(rootMont, (mm.p-1)/order)
	invRootN := mm.powMont(rootN, mm.p-2)
	nInvMont := mm.powMont(mm.toMont(order%mm.p), mm.p-2)
	return &rootTable{n: n, rootN: rootN, invRootN: invRootN, nInvMont: nInvMont}
}

// tableFor returns the cached root table for (primeIdx, n), building and
// caching it on first use.
func tableFor(primeIdx, n int) *rootTable {
	key := tableKey{prime: primeIdx, n: n}
	if v, ok := tableCache.Load(key); ok {
		return v.(*rootTable)
	}
	v, _, _ := tableGroup.Do(keyString(key), func() (any, error) {
		if v, ok := tableCache.Load(key); ok {
			return v, nil
		}
		rt := buildRootTable(primes[primeIdx], n)
		metrics.NTTTablesBuiltTotal.Inc()
		tableCache.Store(key, rt)
		return rt, nil
	})
	return v.(*rootTable)
}

func keyString(k tableKey) string {
	buf := make([]byte, 0, 20)
	buf = appendHex(buf, uint64(k.prime))
	buf = append(buf, ':')
	buf = appendHex(buf, uint64(k.n))
	return string(buf)
}

func appendHex(buf []byte, v uint64) []byte {
	const hexDigits = "0123456789abcdef"
	if v == 0 {
		return append(buf, '0')
	}
	var tmp [16]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return append(buf, tmp[i:]...)
}

// stageRoot returns the principal root of unity of order `length` (a
// divisor of the table's n), forward or inverse, derived from the
// table's cached n-th root.
func (rt *rootTable) stageRoot(mm modulus, length int, invert bool) uint64 {
	base := rt.rootN
	if invert {
		base = rt.invRootN
	}
	return mm.powMont(base, uint64(rt.n/length))
}
