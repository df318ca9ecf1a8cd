package util

import (
	"math"
	"strconv"
	"strings"
)

func SafeDiv(n, d float64) float64 {
	const eps = 1e-12
	if d > eps || d < -eps {
		return n / d
	}
	return 0
}

// FmtFloat renders v with the fewest digits that round-trip, switching to
// exponent form below 1e-4 and from 1e16 on. Integral values keep a ".0".
func FmtFloat(v float64) string {
	if s, ok := special(v); ok {
		return s
	}
	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if v != 0 && (exp < -4 || exp >= 16) {
		return e
	}
	return pointed(strconv.FormatFloat(v, 'f', -1, 64))
}

// FmtSig renders v with at most sig significant digits, trailing zeros
// trimmed. Exponent form is used below 1e-4 and once the rounded exponent
// reaches sig-1. Fixed-point results always carry a decimal point.
func FmtSig(v float64, sig int) string {
	if s, ok := special(v); ok {
		return s
	}
	e := strconv.FormatFloat(v, 'e', sig-1, 64)
	i := strings.IndexByte(e, 'e')
	exp, _ := strconv.Atoi(e[i+1:])
	if exp < -4 || exp >= sig-1 {
		mant := e[:i]
		if strings.IndexByte(mant, '.') >= 0 {
			mant = strings.TrimRight(strings.TrimRight(mant, "0"), ".")
		}
		return mant + e[i:]
	}
	return pointed(strconv.FormatFloat(v, 'g', sig, 64))
}

func pointed(s string) string {
	if strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

func special(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "nan", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	}
	return "", false
}
