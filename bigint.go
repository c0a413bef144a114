package bignum

import (
	"context"
	"strings"
	"time"

	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/magnitude"
	"go.opentelemetry.io/otel"
)

// thresholds is passed to decimal conversion (String and SetString),
// where its Radix field sets the divide-and-conquer crossover. The
// default mirrors internal/config.DefaultThresholds(). Multiplication,
// squaring and division (including the products and divisions made
// inside decimal conversion) do not read it; they always use
// config.DefaultThresholds().
var thresholds = config.DefaultThresholds()

// SetThresholds replaces the thresholds used by String and SetString, e.g.
// with config.AdaptiveThresholds(). It does not change how Mul, Sqr, Div,
// Mod or DivMod select their algorithms.
func SetThresholds(th config.Thresholds) { thresholds = th }

// facadeLog receives the debug lines and the division-failure warning
// from the traced *Context operations below. It defaults to a no-op sink;
// SetLogger installs a real one (typically logging.NewDefaultLogger()).
var facadeLog logging.Logger = logging.Nop()

// SetLogger installs the logger used by MulContext and DivContext.
func SetLogger(l logging.Logger) { facadeLog = l }

// Int is an arbitrary-precision signed integer. The zero Int represents
// 0. Int values must not be copied after being passed to an operation
// that wrote through a pointer to them; treat them like math/big.Int.
type Int struct {
	neg bool
	abs magnitude.Nat
}

// New returns a new Int set to 0.
func New() *Int { return &Int{} }

// FromInt64 returns a new Int set to v.
func FromInt64(v int64) *Int {
	z := &Int{}
	if v < 0 {
		z.neg = true
		z.abs = magnitude.SetUint64(uint64(-v))
	} else {
		z.abs = magnitude.SetUint64(uint64(v))
	}
	return z
}

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	*z = *FromInt64(v)
	return z
}

// Sign returns -1, 0, or +1 depending on the sign of x.
func (x *Int) Sign() int {
	if x.abs.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Clone returns a fresh, independent copy of x.
func (x *Int) Clone() *Int {
	return &Int{neg: x.neg, abs: x.abs.Clone()}
}

// Add sets z = x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	return z.addSigned(x.neg, x.abs, y.neg, y.abs)
}

// Sub sets z = x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	return z.addSigned(x.neg, x.abs, !y.neg, y.abs)
}

func (z *Int) addSigned(xNeg bool, xAbs magnitude.Nat, yNeg bool, yAbs magnitude.Nat) *Int {
	if xNeg == yNeg {
		z.abs = magnitude.Add(xAbs, yAbs)
		z.neg = xNeg && !z.abs.IsZero()
		return z
	}
	if magnitude.Cmp(xAbs, yAbs) >= 0 {
		z.abs = magnitude.Sub(xAbs, yAbs)
		z.neg = xNeg && !z.abs.IsZero()
	} else {
		z.abs = magnitude.Sub(yAbs, xAbs)
		z.neg = yNeg && !z.abs.IsZero()
	}
	return z
}

// Mul sets z = x*y and returns z, selecting the multiplication
// algorithm (base case, Karatsuba, or NTT convolution) by operand size
// via the dispatcher in internal/magnitude.
func (z *Int) Mul(x, y *Int) *Int {
	z.abs = magnitude.Mul(x.abs, y.abs)
	z.neg = (x.neg != y.neg) && !z.abs.IsZero()
	return z
}

// Sqr sets z = x*x and returns z.
func (z *Int) Sqr(x *Int) *Int {
	z.abs = magnitude.Sqr(x.abs)
	z.neg = false
	return z
}

// Div sets z = x/y, truncated toward zero, and returns z. Returns an
// error (bignumerrors.ErrDivisionByZero) if y is zero, leaving z
// unchanged.
func (z *Int) Div(x, y *Int) (*Int, error) {
	q, _, err := divMod(x, y)
	if err != nil {
		return z, err
	}
	*z = *q
	return z, nil
}

// Mod sets z = x%y (the truncated-division remainder, matching Div:
// sign(z) == sign(x) unless z is zero) and returns z. Returns an error
// if y is zero, leaving z unchanged.
func (z *Int) Mod(x, y *Int) (*Int, error) {
	_, r, err := divMod(x, y)
	if err != nil {
		return z, err
	}
	*z = *r
	return z, nil
}

// DivMod sets both q = x/y and r = x%y in one division, truncated
// toward zero (q*y+r == x, sign(r) == sign(x)), and returns them.
func DivMod(x, y *Int) (q, r *Int, err error) {
	return divMod(x, y)
}

func divMod(x, y *Int) (*Int, *Int, error) {
	qAbs, rAbs, err := magnitude.DivMod(x.abs, y.abs)
	if err != nil {
		return nil, nil, err
	}
	q := &Int{abs: qAbs, neg: (x.neg != y.neg) && !qAbs.IsZero()}
	r := &Int{abs: rAbs, neg: x.neg && !rAbs.IsZero()}
	return q, r, nil
}

// Neg sets z = -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.abs = x.abs.Clone()
	z.neg = !x.neg && !z.abs.IsZero()
	return z
}

// Abs sets z = |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.abs = x.abs.Clone()
	z.neg = false
	return z
}

// Cmp compares x and y, returning -1, 0, or +1 as x < y, x == y, or
// x > y.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	default:
		c := magnitude.Cmp(x.abs, y.abs)
		if x.neg {
			return -c
		}
		return c
	}
}

// Lsh sets z = x << k and returns z. The magnitude is shifted; the sign
// is preserved.
func (z *Int) Lsh(x *Int, k uint) *Int {
	z.abs = magnitude.Lsh(x.abs, k)
	z.neg = x.neg && !z.abs.IsZero()
	return z
}

// Rsh sets z = x >> k (magnitude shifted, truncating toward zero) and
// returns z. Unlike a two's-complement arithmetic shift, this does not
// floor toward negative infinity for negative x.
func (z *Int) Rsh(x *Int, k uint) *Int {
	z.abs = magnitude.Rsh(x.abs, k)
	z.neg = x.neg && !z.abs.IsZero()
	return z
}

// String returns the base-10 representation of x, with a leading "-"
// for negative values.
func (x *Int) String() string {
	s := magnitude.ToString(x.abs, thresholds)
	if x.neg {
		return "-" + s
	}
	return s
}

// SetString sets z to the value of s, a base-10 string with an optional
// leading "+" or "-", and returns z, true. On malformed input it
// returns nil, false and leaves z unchanged.
func (z *Int) SetString(s string) (*Int, bool) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	abs, err := magnitude.FromString(s, thresholds)
	if err != nil {
		return nil, false
	}
	z.abs = abs
	z.neg = neg && !abs.IsZero()
	return z, true
}

// MulContext computes z = x*y like Mul, wrapping the call in an
// OpenTelemetry span and a structured debug log on completion — the
// same trace-plus-log-on-exit shape the teacher's
// FibCalculator.CalculateWithObservers uses around its core
// computation.
func (z *Int) MulContext(ctx context.Context, x, y *Int) *Int {
	tracer := otel.Tracer("bignum")
	_, span := tracer.Start(ctx, "Mul")
	defer span.End()

	start := time.Now()
	z.Mul(x, y)
	facadeLog.Debug("multiply completed",
		logging.Int("result_bitlen", z.abs.BitLen()),
		logging.Float64("duration_seconds", time.Since(start).Seconds()))
	return z
}

// DivContext computes z = x/y like Div, wrapping the call in an
// OpenTelemetry span and logging the outcome (including a division
// attempt by zero) at the appropriate level.
func (z *Int) DivContext(ctx context.Context, x, y *Int) (*Int, error) {
	tracer := otel.Tracer("bignum")
	_, span := tracer.Start(ctx, "Div")
	defer span.End()

	start := time.Now()
	_, err := z.Div(x, y)
	if err != nil {
		facadeLog.Warn("division failed", logging.Err(err))
		return z, err
	}
	facadeLog.Debug("division completed",
		logging.Int("result_bitlen", z.abs.BitLen()),
		logging.Float64("duration_seconds", time.Since(start).Seconds()))
	return z, nil
}
