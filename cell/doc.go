// Package cell implements the braille cell: an immutable 8-bit value
// recording which of the eight dots in one cell are raised.
//
// Bit n-1 of the value holds dot n, so the 256 possible cells map
// one-to-one onto the Unicode Braille Patterns block (U+2800..U+28FF).
package cell
