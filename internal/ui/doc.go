// Package ui provides the interactive terminal demo for segue.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. The Model owns a form of inputs and a
// stage; the stage wires a transition.Controller to a layout.Document
// through a virtual timeline.Timeline. A tea.Tick frame loop advances that
// timeline to wall-clock time while anything is pending or animating, and
// stops once the document is at rest.
//
// # Package Structure
//
//   - app.go: Model, message handling, and the Run function
//   - form.go: fade/size/short/long inputs, focus order, form rendering
//   - stage.go: status selection, controller wiring, stage rendering
//   - header.go: status bar
//   - help.go: keyboard shortcut overlay
//   - keys.go: key bindings (bubbles/key), also rendered by bubbles/help
//   - theme.go: color themes and Lipgloss styles
//   - style_helpers.go, strings.go: rendering helpers
//
// # Behavior
//
// Toggling moves the status from Empty, Short or Long to one of the two
// others at random. The shown text is "" for Empty and the contents of the
// matching input otherwise, so editing the active input starts a new
// transition immediately. Duration edits apply to the next transition.
// Every edit and theme change is persisted to the prefs file.
//
// # Key Bindings
//
//   - tab / shift+tab: move between inputs and the Toggle button
//   - enter / space: press Toggle when focused
//   - ctrl+t: toggle from anywhere
//   - f2: cycle theme
//   - f1: help overlay
//   - ctrl+c: quit
package ui
