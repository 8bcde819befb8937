package cell

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// blockStart is the first code point of the Unicode Braille Patterns block.
const blockStart rune = 0x2800

// Rune returns the Unicode braille pattern character for c.
//
// The mapping is a bijection between the 256 cell values and
// U+2800..U+28FF, and is the canonical interchange form for braille text.
func (c Cell) Rune() rune {
	return blockStart + rune(c)
}

// String returns Rune as a one-character string.
func (c Cell) String() string {
	return string(c.Rune())
}

// IsPattern reports whether r lies in the Braille Patterns block.
func IsPattern(r rune) bool {
	return r >= blockStart && r <= blockStart+0xFF
}

// FromRune returns the cell whose pattern character is r, or false when r
// is outside the Braille Patterns block.
func FromRune(r rune) (Cell, bool) {
	if !IsPattern(r) {
		return Empty, false
	}
	return Cell(r - blockStart), true
}

// FromString parses a single braille pattern character.
//
// It accepts exactly one user-perceived character: strings holding more
// than one grapheme cluster are rejected, as is a pattern rune followed by
// combining marks.
func FromString(s string) (Cell, bool) {
	if uniseg.GraphemeClusterCount(s) != 1 {
		return Empty, false
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return Empty, false
	}
	return FromRune(r)
}
