package css

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tdewolff/parse/v2/css"
)

// All matches every animatable property in a transition list.
const All = "all"

// TransitionSpec is one entry of a transition shorthand.
type TransitionSpec struct {
	Property string
	Duration time.Duration
	Delay    time.Duration
	Timing   Easing
}

// TransitionList is a parsed transition shorthand.
type TransitionList []TransitionSpec

// For returns the entry governing prop. Later entries win, like in CSS.
func (l TransitionList) For(prop string) (TransitionSpec, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Property == prop || l[i].Property == All {
			return l[i], true
		}
	}
	return TransitionSpec{}, false
}

// FormatTransition renders a single-entry shorthand such as
// "opacity 250ms ease".
func FormatTransition(prop string, d time.Duration, timing string) string {
	return fmt.Sprintf("%s %dms %s", prop, d.Milliseconds(), timing)
}

// JoinTransitions joins shorthand entries with commas.
func JoinTransitions(entries ...string) string {
	return strings.Join(entries, ", ")
}

// ParseTransition parses a transition shorthand. Entries are comma
// separated; within an entry the property, durations and timing function may
// appear in any order. The first time value is the duration and the second the
// delay. A bare number is read as milliseconds.
func ParseTransition(value string) (TransitionList, error) {
	toks, err := tokenize(value)
	if err != nil {
		return nil, fmt.Errorf("transition %q: %w", strings.TrimSpace(value), err)
	}
	if sig := significant(toks); len(sig) == 0 ||
		(len(sig) == 1 && sig[0].typ == css.IdentToken && strings.EqualFold(sig[0].data, "none")) {
		return nil, nil
	}

	var list TransitionList
	for _, entry := range splitComma(toks) {
		if len(significant(entry)) == 0 {
			continue
		}
		spec, err := parseTransitionEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("transition %q: %w", joinTokens(entry), err)
		}
		list = append(list, spec)
	}
	return list, nil
}

func parseTransitionEntry(toks []token) (TransitionSpec, error) {
	spec := TransitionSpec{Property: All, Timing: Ease}
	var (
		times       int
		sawProperty bool
		sawTiming   bool
	)
	setTiming := func(e Easing) error {
		if sawTiming {
			return errors.New("duplicate timing function")
		}
		spec.Timing = e
		sawTiming = true
		return nil
	}

	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.typ {
		case css.WhitespaceToken:

		case css.NumberToken, css.DimensionToken:
			d, err := parseTime(tok)
			if err != nil {
				return spec, err
			}
			switch times {
			case 0:
				spec.Duration = d
			case 1:
				spec.Delay = d
			default:
				return spec, fmt.Errorf("unexpected time %q", tok.data)
			}
			times++

		case css.FunctionToken:
			end := closingParen(toks, i)
			if end < 0 {
				return spec, fmt.Errorf("unterminated %q", tok.data)
			}
			e, err := timingFunction(toks[i : end+1])
			if err != nil {
				return spec, err
			}
			if err := setTiming(e); err != nil {
				return spec, err
			}
			i = end

		case css.IdentToken:
			lower := strings.ToLower(tok.data)
			if e, ok := namedTimings[lower]; ok {
				if err := setTiming(e); err != nil {
					return spec, err
				}
				continue
			}
			if sawProperty {
				return spec, fmt.Errorf("unexpected token %q", tok.data)
			}
			spec.Property = lower
			sawProperty = true

		default:
			return spec, fmt.Errorf("unexpected token %q", tok.data)
		}
	}
	return spec, nil
}

// parseTime reads a time token. Unitless numbers are milliseconds.
func parseTime(tok token) (time.Duration, error) {
	var (
		f     float64
		scale = float64(time.Millisecond)
		err   error
	)
	if tok.typ == css.NumberToken {
		f, err = number(tok)
	} else {
		var unit string
		f, unit, err = dimension(tok)
		switch {
		case err != nil:
		case unit == "s":
			scale = float64(time.Second)
		case unit != "ms":
			err = fmt.Errorf("unexpected unit in %q", tok.data)
		}
	}
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("negative time %q", tok.data)
	}
	d := f * scale
	if d > math.MaxInt64 {
		return 0, fmt.Errorf("time %q out of range", tok.data)
	}
	return time.Duration(d), nil
}
