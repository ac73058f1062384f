package transition

import "fmt"

// Phase names the stage a controller is in.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseHidden
	PhaseExitFadeOut
	PhaseExitShrink
	PhaseEnterOpen
	PhaseEnterGrow
	PhaseEnterFadeIn
	PhaseSwapPin
	PhaseSwapFadeOut
	PhaseSwapResize
	PhaseSwapFadeIn
	PhaseSettle
)

var phaseNames = map[Phase]string{
	PhaseIdle:        "idle",
	PhaseHidden:      "hidden",
	PhaseExitFadeOut: "exit-fade",
	PhaseExitShrink:  "exit-shrink",
	PhaseEnterOpen:   "enter-open",
	PhaseEnterGrow:   "enter-grow",
	PhaseEnterFadeIn: "enter-fade",
	PhaseSwapPin:     "swap-pin",
	PhaseSwapFadeOut: "swap-fade-out",
	PhaseSwapResize:  "swap-resize",
	PhaseSwapFadeIn:  "swap-fade-in",
	PhaseSettle:      "settled",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Animating reports whether p belongs to an in-flight transition.
func (p Phase) Animating() bool {
	return p != PhaseIdle && p != PhaseHidden
}

// Kind identifies which algorithm a content change selected.
type Kind int

const (
	KindNone Kind = iota
	KindExit
	KindEnter
	KindSwap
)

func (k Kind) String() string {
	switch k {
	case KindExit:
		return "exit"
	case KindEnter:
		return "enter"
	case KindSwap:
		return "swap"
	default:
		return "none"
	}
}

// Classify picks the algorithm for moving from shown to next content.
func Classify(shown, next string) Kind {
	switch {
	case next == shown:
		return KindNone
	case next == "":
		return KindExit
	case shown == "":
		return KindEnter
	default:
		return KindSwap
	}
}
