package calculator

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v the way the widgets have always shown results:
// shortest round-trip digits, plain notation between 1e-6 and 1e21, exponent
// notation outside it ("1e+21", "1.5e-7"), and Infinity/-Infinity/NaN for
// non-finite values. Negative zero shows as "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits; the display does not.
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
