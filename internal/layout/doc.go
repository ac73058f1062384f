// Package layout is the terminal surface a transition.Controller drives.
//
// A Document owns three elements (container, display and probe), each with
// a declared stylesheet (Rules) and inline overrides. Inline writes behave
// like the browser's: when the element's current transition list covers a
// changed property with a positive duration, the property animates from the
// value rendered at the moment of the write to the new value, on the
// document's clock.
//
// Units are terminal cells. Horizontal lengths are columns and height is rows;
// a border is drawn once its width rounds to one cell. Width and height may be
// "auto", in which case they resolve from content: the display and probe
// measure their text, the container wraps the display.
//
// Render draws the container with lipgloss. Opacity fades text and border
// colours toward the surface colour in Lab space.
package layout
