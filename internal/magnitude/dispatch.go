package magnitude

import (
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/ntt"
)

// dispatchOpts carries the thresholds and observability hooks threaded
// through the recursive multiply/square calls. A zero value falls back to
// config.DefaultThresholds() and a no-op logger.
type dispatchOpts struct {
	thresholds config.Thresholds
	log        logging.Logger
}

func defaultOpts() dispatchOpts {
	return dispatchOpts{thresholds: config.DefaultThresholds(), log: logging.Nop()}
}

// unbalancedRatio is the length ratio (longer/shorter) beyond which the
// dispatcher treats operands as "extremely imbalanced" and decomposes the
// longer one into blocks, per spec §4.5.
const unbalancedRatio = 4

// Mul computes x*y by selecting among the base case, Karatsuba, and NTT
// convolution according to operand size, per the decision table in spec
// §4.5:
//
//	min(na,nb) <  K_THRESHOLD                  -> base case
//	K_THRESHOLD <= min(na,nb) < N_THRESHOLD     -> Karatsuba
//	min(na,nb) >= N_THRESHOLD                   -> NTT
//	extreme length imbalance                    -> block decomposition
func Mul(x, y Nat) Nat {
	return mulDispatch(norm(x), norm(y), defaultOpts())
}

func mulDispatch(x, y Nat, opts dispatchOpts) Nat {
	x, y = norm(x), norm(y)
	if len(x) == 0 || len(y) == 0 {
		return Nat{}
	}
	if len(x) < len(y) {
		x, y = y, x
	}
	// x is now the longer (or equal) operand.
	short := len(y)

	if len(x) > unbalancedRatio*short {
		metrics.MultiplyTotal.WithLabelValues("block").Inc()
		return karatsubaUnbalanced(y, x, opts)
	}

	th := opts.thresholds
	switch {
	case short < th.Karatsuba:
		metrics.MultiplyTotal.WithLabelValues("basecase").Inc()
		return mulBasecaseNat(x, y)
	case short < th.NTT:
		metrics.MultiplyTotal.WithLabelValues("karatsuba").Inc()
		return karatsuba(x, y, opts)
	default:
		opts.log.Debug("dispatch: selecting NTT convolution",
			logging.Int("len_a", len(x)), logging.Int("len_b", len(y)))
		metrics.MultiplyTotal.WithLabelValues("ntt").Inc()
		r, err := ntt.Multiply(wordsToU64(x), wordsToU64(y))
		if err != nil {
			// SizeLimit: fall back to Karatsuba per spec §4.4/§7.
			opts.log.Warn("NTT convolution declined, falling back to Karatsuba",
				logging.Err(err))
			return karatsuba(x, y, opts)
		}
		return norm(u64ToWords(r))
	}
}

// Sqr computes x*x, following the same decision tree as Mul but
// substituting the squaring variant at each tier.
func Sqr(x Nat) Nat {
	return sqrDispatch(norm(x), defaultOpts())
}

func sqrDispatch(x Nat, opts dispatchOpts) Nat {
	x = norm(x)
	if len(x) == 0 {
		return Nat{}
	}
	th := opts.thresholds
	switch {
	case len(x) < th.Karatsuba:
		metrics.MultiplyTotal.WithLabelValues("basecase_sqr").Inc()
		return sqrBasecaseNat(x)
	case len(x) < th.NTT:
		metrics.MultiplyTotal.WithLabelValues("karatsuba_sqr").Inc()
		return karatsubaSqr(x, opts)
	default:
		metrics.MultiplyTotal.WithLabelValues("ntt_sqr").Inc()
		r, err := ntt.Multiply(wordsToU64(x), wordsToU64(x))
		if err != nil {
			opts.log.Warn("NTT squaring declined, falling back to Karatsuba",
				logging.Err(err))
			return karatsubaSqr(x, opts)
		}
		return norm(u64ToWords(r))
	}
}

func wordsToU64(x Nat) []uint64 {
	out := make([]uint64, len(x))
	copy(out, x)
	return out
}

func u64ToWords(x []uint64) Nat {
	out := make(Nat, len(x))
	copy(out, x)
	return out
}
