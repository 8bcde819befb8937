// Package dotpad provides a Bubble Tea component for editing a single
// braille cell dot by dot.
//
// Keys 1..8 toggle the matching dot; the view shows the physical dot grid
// next to the resulting pattern character and its byte value.
package dotpad
