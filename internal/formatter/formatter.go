// Package formatter renders conversion results and parses user input.
package formatter

import (
	"math"
	"strconv"
	"strings"
)

const (
	compactUpper = 1_000_000
	compactLower = 0.001

	// significant digits of the compact form and decimals of the scientific mantissa
	precision = 6
)

// Format renders a conversion result.
//
//   - zero renders as "0";
//   - scientific renders a trimmed mantissa with a signed two-digit exponent ("1.5e+06");
//   - magnitudes >= 1e6 or below 1e-3 render in compact %g form ("1.23457e+06", "0.0005");
//   - everything else renders with six decimals, trailing zeros and a bare point stripped.
func Format(value float64, scientific bool) string {
	if value == 0 {
		return "0"
	}
	if scientific {
		return formatScientific(value)
	}
	abs := math.Abs(value)
	if abs >= compactUpper || abs < compactLower {
		return strconv.FormatFloat(value, 'g', precision, 64)
	}
	return trimFixed(strconv.FormatFloat(value, 'f', precision, 64))
}

func formatScientific(value float64) string {
	s := strconv.FormatFloat(value, 'e', precision, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	return trimFixed(mantissa) + "e" + exp
}

func trimFixed(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ParseValue parses decimal input text. Empty, non-numeric and non-finite
// input reports false.
func ParseValue(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ToggleNegative flips the sign of the input text.
func ToggleNegative(text string) string {
	if strings.HasPrefix(text, "-") {
		return text[1:]
	}
	return "-" + text
}
