// Package transition animates a text element between empty and non-empty
// content without layout jumps.
//
// # Overview
//
// A Controller binds three elements supplied by the host surface:
//
//   - Container: the box around the text. Its border, margins, padding and
//     width are animated so neighbouring layout contracts or expands smoothly.
//   - Display: the visible element showing the committed content.
//   - Probe: an off-flow copy of the latest content, used only to measure the
//     natural size new content will occupy.
//
// On each content change the controller compares the new content with what
// the Display currently shows and picks one of three staged algorithms:
//
//	shown     new        algorithm
//	-------   --------   ---------------------------------------------
//	"A"       ""         exit:  fade out, shrink container, hide it
//	""        "A"        enter: zero, commit, grow to probe size, fade in
//	"A"       "B"        swap:  fade out, resize to probe, commit, fade in
//	"A"       "A"        nothing
//
// Mounting with empty content hides the container synchronously instead of
// animating it away.
//
// # Staging
//
// Every algorithm is a list of stages. A stage runs immediately, on the next
// frame, or after a delay followed by a frame wait; the frame wait makes sure
// the host has committed one style write before the next one lands on the same
// property. All timers of the in-flight list belong to the controller; a new
// content change stops them and resets inline styles before the next list
// starts, so superseded stages never fire.
//
//	exit   total = fade + size
//	enter  total = size + fade
//	swap   total = 2*fade + size
//
// # Host capabilities
//
// The controller never measures or paints. It relies on:
//
//   - Element: inline style writes and text updates.
//   - Geometry: the computed box of an element as currently rendered, and the
//     natural box the stylesheet alone would produce.
//   - Scheduler: cancellable delays and next-frame callbacks
//     (see package timeline).
//
// The controller is single-threaded: every method and every scheduled stage
// must run on the goroutine that owns the elements.
package transition
