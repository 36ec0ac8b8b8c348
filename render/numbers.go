package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// formatInteger renders an integer in base (2…36), lowercase and without
// prefix. Other bases fall back to 10.
func formatInteger(v *big.Int, base int) string {
	if v == nil {
		return "0"
	}
	if base < 2 || base > 36 {
		base = 10
	}
	return v.Text(base)
}

// shortestDigits returns the shortest decimal digits d1…dk round-tripping
// |f| and the position n of the decimal point, with |f| = 0.d1…dk × 10^n.
func shortestDigits(f float64) (digits string, n int) {
	s := strconv.FormatFloat(math.Abs(f), 'e', -1, 64) // d.ddde±xx
	mant, exp := s, "0"
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mant, exp = s[:i], s[i+1:]
	}
	e, _ := strconv.Atoi(exp)
	digits = strings.Replace(mant, ".", "", 1)
	return digits, e + 1
}

func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	}
	return "", false
}

// formatDecimal renders a float as plain decimal with the shortest digits.
// Magnitudes ≥ 1e21 or < 1e-6 switch to exponential notation.
func formatDecimal(f float64) string {
	if s, ok := nonFinite(f); ok {
		return s
	}
	if f == 0 {
		return "0"
	}
	digits, n := shortestDigits(f)
	k := len(digits)
	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
	}
	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		writeExponential(&b, digits, n)
	}
	return b.String()
}

// formatScientific renders a float in exponential notation, e.g. 1e+5 or
// 5.4321e-3.
func formatScientific(f float64) string {
	if s, ok := nonFinite(f); ok {
		return s
	}
	if f == 0 {
		return "0e+0"
	}
	digits, n := shortestDigits(f)
	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
	}
	writeExponential(&b, digits, n)
	return b.String()
}

func writeExponential(b *strings.Builder, digits string, n int) {
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('e')
	if n-1 < 0 {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	exp := n - 1
	if exp < 0 {
		exp = -exp
	}
	b.WriteString(strconv.Itoa(exp))
}
