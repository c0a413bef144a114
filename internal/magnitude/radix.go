package magnitude

import (
	"strconv"
	"strings"

	"github.com/agbru/bignum/internal/bignumerrors"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/limb"
)

// decimalChunkDigits is the largest number of decimal digits that fits
// in one limb.Word (10^19 < 2^64 < 10^20), the "d" of spec §4.7.
const decimalChunkDigits = 19

// tenPow19 is 10^decimalChunkDigits, the scalar divisor for the
// small-case path and the seed of the power tower.
const tenPow19 uint64 = 10000000000000000000

// powerTower holds 10^(decimalChunkDigits*2^i) for increasing i, each
// built by squaring the previous entry via the multiplication dispatcher
// (spec §4.7: "computed once per call and reused across the recursion").
type powerTower struct {
	widths []int
	powers []Nat
}

func buildTower(maxDigits int) powerTower {
	widths := []int{decimalChunkDigits}
	powers := []Nat{SetUint64(tenPow19)}
	for widths[len(widths)-1] < maxDigits {
		next := Sqr(powers[len(powers)-1])
		powers = append(powers, next)
		widths = append(widths, widths[len(widths)-1]*2)
	}
	return powerTower{widths: widths, powers: powers}
}

// estimatedDigits returns a safe upper bound on the decimal digit count
// of an n-bit magnitude: log10(2) < 0.30103, plus one digit of slack.
func estimatedDigits(bitLen int) int {
	return bitLen*30103/100000 + 2
}

// ToString converts x to its decimal representation, using repeated
// divrem by 10^19 below config.Thresholds.Radix limbs and
// divide-and-conquer above it (spec §4.7).
func ToString(x Nat, th config.Thresholds) string {
	x = norm(x)
	if x.IsZero() {
		return "0"
	}
	tower := buildTower(estimatedDigits(x.BitLen()))
	return toStringRec(x, tower, th)
}

func toStringRec(x Nat, tower powerTower, th config.Thresholds) string {
	if len(x) < th.Radix {
		return toStringSmall(x)
	}
	level := -1
	for i, p := range tower.powers {
		if Cmp(p, x) <= 0 {
			level = i
		} else {
			break
		}
	}
	if level < 0 {
		return toStringSmall(x)
	}
	q, r, _ := DivMod(x, tower.powers[level])
	upper := toStringRec(q, tower, th)
	lower := toStringRec(r, tower, th)
	return upper + leftPadZeros(lower, tower.widths[level])
}

// toStringSmall handles magnitudes below the divide-and-conquer
// threshold via repeated divrem_1 by 10^19, the base case spec §4.7
// describes.
func toStringSmall(x Nat) string {
	x = norm(x)
	if x.IsZero() {
		return "0"
	}
	var chunks []uint64
	rem := x.Clone()
	for !rem.IsZero() {
		quot := make(Nat, len(rem))
		r := limb.DivWVW(quot, rem, limb.Word(tenPow19))
		chunks = append(chunks, uint64(r))
		rem = norm(quot)
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(chunks[len(chunks)-1], 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(chunks[i], 10)
		sb.WriteString(strings.Repeat("0", decimalChunkDigits-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}

func leftPadZeros(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// FromString parses a nonnegative decimal string into a Nat, mirroring
// ToString's split structure in reverse (spec §4.7): small inputs are
// parsed in 19-digit chunks directly, larger ones are split at a power
// tower boundary and combined as upper*10^width + lower.
func FromString(s string, th config.Thresholds) (Nat, error) {
	if s == "" {
		return nil, bignumerrors.NewParseError(s, "empty string")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, bignumerrors.NewParseError(s, "non-digit character")
		}
	}
	// Trim leading zeros so digit-count-based level selection matches
	// the value's true magnitude.
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return Nat{}, nil
	}
	tower := buildTower(len(trimmed))
	return fromStringRec(trimmed, tower, th)
}

func fromStringRec(s string, tower powerTower, th config.Thresholds) (Nat, error) {
	if len(s) <= th.Radix*decimalChunkDigits {
		return fromStringSmall(s)
	}
	level := -1
	for i, w := range tower.widths {
		if w < len(s) {
			level = i
		} else {
			break
		}
	}
	if level < 0 {
		return fromStringSmall(s)
	}
	width := tower.widths[level]
	upperStr := s[:len(s)-width]
	lowerStr := s[len(s)-width:]

	upper, err := fromStringRec(upperStr, tower, th)
	if err != nil {
		return nil, err
	}
	lower, err := fromStringRec(lowerStr, tower, th)
	if err != nil {
		return nil, err
	}
	return Add(Mul(upper, tower.powers[level]), lower), nil
}

func fromStringSmall(s string) (Nat, error) {
	acc := Nat{}
	pos := 0
	firstLen := len(s) % decimalChunkDigits
	if firstLen == 0 {
		firstLen = decimalChunkDigits
	}
	for pos < len(s) {
		n := firstLen
		if pos > 0 {
			n = decimalChunkDigits
		}
		v, err := strconv.ParseUint(s[pos:pos+n], 10, 64)
		if err != nil {
			return nil, bignumerrors.NewParseError(s, "malformed decimal chunk")
		}
		if pos == 0 {
			acc = SetUint64(v)
		} else {
			acc = Add(Mul(acc, SetUint64(tenPow19)), SetUint64(v))
		}
		pos += n
	}
	return acc, nil
}
