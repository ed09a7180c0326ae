package menu

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?)`)

// ParsePrice reads the longest numeric prefix of s after leading whitespace,
// the way a browser's parseFloat does. Text with no numeric prefix yields NaN.
func ParsePrice(s string) float64 {
	s = strings.TrimLeftFunc(s, func(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' })
	lit := numericPrefix.FindString(s)
	if lit == "" {
		return math.NaN()
	}
	if strings.TrimLeft(lit, "+-") == "Infinity" {
		if strings.HasPrefix(lit, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// Out of range literals come back as ±Inf or ±0 alongside ErrRange.
	f, _ := strconv.ParseFloat(lit, 64)
	return f
}

var (
	hundred = new(big.Float).SetInt64(100)
	half    = new(big.Float).SetFloat64(0.5)
)

// FormatPrice renders p with two decimals. Rounding works on the exact binary
// value with ties going away from zero, NaN and infinities print as words, and
// magnitudes from 1e21 up use exponent notation.
func FormatPrice(p float64) string {
	switch {
	case math.IsNaN(p):
		return "NaN"
	case math.IsInf(p, 1):
		return "Infinity"
	case math.IsInf(p, -1):
		return "-Infinity"
	case math.Abs(p) >= 1e21:
		return strconv.FormatFloat(p, 'g', -1, 64)
	}

	x := new(big.Float).SetFloat64(math.Abs(p))
	x.SetPrec(256).Mul(x, hundred)
	cents, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(256).Sub(x, new(big.Float).SetInt(cents))
	if frac.Cmp(half) >= 0 {
		cents.Add(cents, big.NewInt(1))
	}
	out := decimal.NewFromBigInt(cents, -2).StringFixed(2)
	if p < 0 {
		out = "-" + out
	}
	return out
}

// Money prefixes a formatted price with a currency symbol.
func Money(symbol string, p float64) string {
	return symbol + FormatPrice(p)
}
