package calculator

import (
	"math"
	"strings"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 10, want: "10"},
		{in: -2.5, want: "-2.5"},
		{in: 123456789012, want: "123456789012"},
		{in: math.Copysign(0, -1), want: "0"},
		{in: 0.000001, want: "0.000001"},
		{in: 1.5e-7, want: "1.5e-7"},
		{in: 1e20, want: "100000000000000000000"},
		{in: 1e21, want: "1e+21"},
		{in: -1.25e30, want: "-1.25e+30"},
		{in: math.Inf(1), want: "Infinity"},
		{in: math.Inf(-1), want: "-Infinity"},
		{in: math.NaN(), want: "NaN"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatNumber(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "0", want: 0},
		{in: "0.", want: 0},
		{in: "12.5", want: 12.5},
		{in: "1e+21", want: 1e21},
		{in: "1.5e-7", want: 1.5e-7},
		{in: "Infinity", want: math.Inf(1)},
		{in: "-Infinity", want: math.Inf(-1)},
		{in: strings.Repeat("9", 400), want: math.Inf(1)},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseNumber(tc.in); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	if got := ParseNumber("NaN"); !math.IsNaN(got) {
		t.Fatalf("expected NaN, got %v", got)
	}
	if got := ParseNumber("not a number"); !math.IsNaN(got) {
		t.Fatalf("expected NaN for garbage, got %v", got)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, v := range []float64{1, -7.25, 0.1, 1e-9, 3e25, 987654321.125} {
		if got := ParseNumber(FormatNumber(v)); got != v {
			t.Fatalf("round trip of %v gave %v", v, got)
		}
	}
}
