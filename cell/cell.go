package cell

import "math/bits"

// Cell is one braille cell: eight dots, each raised or flat.
//
// Cells are plain values. Every operation returns a new Cell, == compares
// dot patterns, and a Cell can be used directly as a map key. The zero
// value is Empty.
type Cell uint8

const (
	// Empty is the cell with no dots raised.
	Empty Cell = 0x00
	// Full is the cell with all eight dots raised.
	Full Cell = 0xFF
)

// Single-dot cells, one per physical dot position.
const (
	Dot1 Cell = 1 << iota
	Dot2
	Dot3
	Dot4
	Dot5
	Dot6
	Dot7
	Dot8
)

const (
	minDot = 1
	maxDot = 8
)

// FromValue builds a cell from the low 8 bits of v. Higher bits are
// discarded silently: raw byte import never fails, unlike the dot-indexed
// operations, which validate strictly.
func FromValue(v int) Cell {
	return Cell(uint8(v))
}

// FromDots builds a cell with exactly the named dots raised. The first dot
// outside [1, 8] aborts construction with *InvalidDotNumberError and no
// dots applied. Repeating a dot is harmless.
func FromDots(dots ...int) (Cell, error) {
	for _, d := range dots {
		if !validDot(d) {
			return Empty, &InvalidDotNumberError{Dot: d}
		}
	}
	c := Empty
	for _, d := range dots {
		c |= dotMask(d)
	}
	return c, nil
}

// MustDots is FromDots for dot lists known to be valid; it panics on an
// invalid dot number. Intended for package-level pattern constants.
func MustDots(dots ...int) Cell {
	c, err := FromDots(dots...)
	if err != nil {
		panic(err)
	}
	return c
}

// Value returns the raw byte. The byte doubles as a collision-free hash
// over the 256 possible cells.
func (c Cell) Value() uint8 {
	return uint8(c)
}

// DotRaised reports whether the given dot (1..8) is raised.
func (c Cell) DotRaised(dot int) (bool, error) {
	if !validDot(dot) {
		return false, &InvalidDotNumberError{Dot: dot}
	}
	return c&dotMask(dot) != 0, nil
}

// Dots returns the raised dot numbers in ascending order, nil for Empty.
func (c Cell) Dots() []int {
	if c == Empty {
		return nil
	}
	out := make([]int, 0, c.Count())
	for d := minDot; d <= maxDot; d++ {
		if c&dotMask(d) != 0 {
			out = append(out, d)
		}
	}
	return out
}

// Count returns the number of raised dots.
func (c Cell) Count() int {
	return bits.OnesCount8(uint8(c))
}

func validDot(dot int) bool {
	return dot >= minDot && dot <= maxDot
}

func dotMask(dot int) Cell {
	return Cell(1) << (dot - 1)
}
