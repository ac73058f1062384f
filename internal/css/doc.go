// Package css holds the small slice of CSS vocabulary the transition
// controller and its host surface share: property names, length and number
// values, the transition shorthand, and timing functions.
//
// Lengths are expressed in px. On the terminal surface one px is one cell
// (a column for horizontal lengths, a row for heights). Values are lexed as
// CSS component values, so "nanms" is an identifier and not a time.
package css
