package css

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(float64) float64

// Standard CSS timing functions.
var (
	Linear    Easing = func(t float64) float64 { return clamp01(t) }
	Ease             = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn           = CubicBezier(0.42, 0, 1.0, 1.0)
	EaseOut          = CubicBezier(0, 0, 0.58, 1.0)
	EaseInOut        = CubicBezier(0.42, 0, 0.58, 1.0)
	StepStart Easing = func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		return 1
	}
	StepEnd Easing = func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		return 0
	}
)

var namedTimings = map[string]Easing{
	"linear":      Linear,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
	"step-start":  StepStart,
	"step-end":    StepEnd,
}

// ParseTimingFunction resolves a CSS timing function keyword or a
// cubic-bezier(x1, y1, x2, y2) expression.
func ParseTimingFunction(value string) (Easing, error) {
	toks, err := tokenize(value)
	if err != nil {
		return nil, fmt.Errorf("timing function %q: %w", value, err)
	}
	e, err := timingFunction(toks)
	if err != nil {
		return nil, fmt.Errorf("timing function %q: %w", strings.TrimSpace(value), err)
	}
	return e, nil
}

// timingFunction resolves a single keyword or function from its tokens.
func timingFunction(toks []token) (Easing, error) {
	sig := significant(toks)
	if len(sig) == 0 {
		return nil, errors.New("empty timing function")
	}

	head := sig[0]
	switch head.typ {
	case css.IdentToken:
		e, ok := namedTimings[strings.ToLower(head.data)]
		if !ok || len(sig) > 1 {
			return nil, fmt.Errorf("unknown timing function %q", joinTokens(toks))
		}
		return e, nil

	case css.FunctionToken:
		if !strings.EqualFold(head.data, "cubic-bezier(") {
			return nil, fmt.Errorf("unknown timing function %q", head.data)
		}
		if sig[len(sig)-1].typ != css.RightParenthesisToken {
			return nil, errors.New("cubic-bezier is not closed")
		}
		return cubicBezierArgs(sig[1 : len(sig)-1])
	}
	return nil, fmt.Errorf("unknown timing function %q", joinTokens(toks))
}

// cubicBezierArgs reads four comma separated numbers.
func cubicBezierArgs(args []token) (Easing, error) {
	var p []float64
	for i, arg := range splitComma(args) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("cubic-bezier argument %d is malformed", i+1)
		}
		f, err := number(arg[0])
		if err != nil {
			return nil, fmt.Errorf("cubic-bezier argument %d: %w", i+1, err)
		}
		p = append(p, f)
	}
	if len(p) != 4 {
		return nil, fmt.Errorf("cubic-bezier needs 4 arguments, got %d", len(p))
	}
	if p[0] < 0 || p[0] > 1 || p[2] < 0 || p[2] > 1 {
		return nil, errors.New("cubic-bezier x values must be within [0, 1]")
	}
	return CubicBezier(p[0], p[1], p[2], p[3]), nil
}

// CubicBezier returns an easing curve matching CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for range 8 {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierSample(y1, y2, clamp01(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton stalled; bisect instead.
		lo, hi := 0.0, 1.0
		u = clamp01(u)
		for range 16 {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezierSample(y1, y2, u)
	}
}

func bezierSample(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}
