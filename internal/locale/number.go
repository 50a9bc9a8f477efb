package locale

import (
	"math"
	"strconv"
	"strings"
)

// maxExactScaled bounds the scaled-integer rounding path. Beyond this the
// float64 mantissa has no fractional resolution left anyway, so the strconv
// fallback cannot disagree on any representable digit.
const maxExactScaled = 1 << 53

// FormatNumber renders value with exactly digits fractional digits, a comma
// grouping every three integer digits, and round-half-away-from-zero
// rounding. Zero is rendered without a sign and output is never in
// scientific notation.
func FormatNumber(value float64, digits int) string {
	if digits < 0 {
		digits = 0
	}

	neg := value < 0
	abs := math.Abs(value)

	intPart, fracPart := splitRounded(abs, digits)

	// Rounding can collapse a small negative to zero; zero carries no sign.
	if neg && intPart == "0" && isAllZeros(fracPart) {
		neg = false
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart))
	if digits > 0 {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// splitRounded rounds abs half-away-from-zero at the requested precision and
// returns the integer and fractional digit strings.
func splitRounded(abs float64, digits int) (string, string) {
	pow := math.Pow10(digits)
	scaled := abs * pow

	if scaled < maxExactScaled {
		r := int64(math.Floor(scaled + 0.5))
		p := int64(pow)
		intPart := strconv.FormatInt(r/p, 10)
		fracPart := ""
		if digits > 0 {
			fracPart = padLeft(strconv.FormatInt(r%p, 10), digits)
		}
		return intPart, fracPart
	}

	s := strconv.FormatFloat(abs, 'f', digits, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		return s[:dot], s[dot+1:]
	}
	return s, ""
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3)

	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func isAllZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
