package menu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"5.50":      5.5,
		"20":        20,
		"  12":      12,
		"\t3.25\n":  3.25,
		"7.5abc":    7.5,
		"1e3":       1000,
		"1e":        1,
		".5":        0.5,
		"5.":        5,
		"+2":        2,
		"-4.25":     -4.25,
		"0x10":      0,
		"1,50":      1,
		"Infinity":  math.Inf(1),
		"-Infinity": math.Inf(-1),
		"1e400":     math.Inf(1),
	}
	for in, want := range cases {
		require.Equal(t, want, ParsePrice(in), "input %q", in)
	}
}

func TestParsePriceNaN(t *testing.T) {
	for _, in := range []string{"", "abc", "   ", "$5", ".", "-", "e5", "inf", "NaN"} {
		require.True(t, math.IsNaN(ParsePrice(in)), "input %q", in)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{5.5, "5.50"},
		{25.5, "25.50"},
		{20, "20.00"},
		{0.125, "0.13"},
		{1.005, "1.00"},
		{2.675, "2.67"},
		{0.1 + 0.2, "0.30"},
		{-4.25, "-4.25"},
		{-0.001, "-0.00"},
		{math.Copysign(0, -1), "0.00"},
		{1234567.891, "1234567.89"},
		{1e21, "1e+21"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatPrice(tc.in), "input %v", tc.in)
	}
}

func TestMoney(t *testing.T) {
	require.Equal(t, "$5.50", Money("$", 5.5))
	require.Equal(t, "R20.00", Money("R", 20))
	require.Equal(t, "$NaN", Money("$", math.NaN()))
}
