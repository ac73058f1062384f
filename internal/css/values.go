package css

import (
	"math"
	"strconv"

	"github.com/tdewolff/parse/v2/css"
)

// Auto is the keyword for a length resolved from content.
const Auto = "auto"

// Px formats a length in px, dropping trailing zeros.
func Px(v float64) string {
	return FormatNumber(v) + "px"
}

// FormatNumber formats v with at most three decimals.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	rounded := math.Round(v*1000) / 1000
	if rounded == 0 {
		rounded = 0 // normalise -0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// ParseLength parses "12px", "12" or "1.5px". It reports false for "auto",
// empty values and anything else it does not understand.
func ParseLength(value string) (float64, bool) {
	tok, ok := singleToken(value)
	if !ok {
		return 0, false
	}
	switch tok.typ {
	case css.NumberToken:
		f, err := number(tok)
		return f, err == nil
	case css.DimensionToken:
		f, unit, err := dimension(tok)
		if err != nil || unit != "px" {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// ParseNumber parses a unitless number such as an opacity or z-index.
func ParseNumber(value string) (float64, bool) {
	tok, ok := singleToken(value)
	if !ok {
		return 0, false
	}
	f, err := number(tok)
	return f, err == nil
}

func singleToken(value string) (token, bool) {
	toks, err := tokenize(value)
	if err != nil {
		return token{}, false
	}
	sig := significant(toks)
	if len(sig) != 1 {
		return token{}, false
	}
	return sig[0], true
}

// ParseValue parses value as the numeric type prop expects.
func ParseValue(prop, value string) (float64, bool) {
	if prop == Opacity {
		f, ok := ParseNumber(value)
		if !ok {
			return 0, false
		}
		return clamp01(f), true
	}
	return ParseLength(value)
}

// FormatValue formats v the way prop is written inline.
func FormatValue(prop string, v float64) string {
	if prop == Opacity {
		return FormatNumber(clamp01(v))
	}
	return Px(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
