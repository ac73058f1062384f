package css

// Inline style properties written by the transition controller.
const (
	Transition    = "transition"
	BorderWidth   = "border-width"
	Height        = "height"
	MarginLeft    = "margin-left"
	MarginRight   = "margin-right"
	Opacity       = "opacity"
	PaddingLeft   = "padding-left"
	PaddingRight  = "padding-right"
	Width         = "width"
	Position      = "position"
	PointerEvents = "pointer-events"
	Visibility    = "visibility"
	MaxWidth      = "max-width"
	ZIndex        = "z-index"
)

// Animatable lists the numeric properties a transition can interpolate.
var Animatable = []string{
	BorderWidth,
	Height,
	MarginLeft,
	MarginRight,
	Opacity,
	PaddingLeft,
	PaddingRight,
	Width,
	MaxWidth,
}

// IsAnimatable reports whether prop is interpolated by transitions.
func IsAnimatable(prop string) bool {
	for _, p := range Animatable {
		if p == prop {
			return true
		}
	}
	return false
}
