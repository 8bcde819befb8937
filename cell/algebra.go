package cell

// Merge returns a cell with every dot raised in either c or o.
//
// Merge is commutative and associative; Empty is its identity and Full
// absorbs everything.
func (c Cell) Merge(o Cell) Cell {
	return c | o
}

// Flatten returns c with every dot raised in o lowered. Dots raised in o
// but already flat in c have no effect, so Flatten is not commutative:
// Flatten(x, x) is Empty while Flatten(Empty, x) stays Empty.
func (c Cell) Flatten(o Cell) Cell {
	return c &^ o
}

// RaiseDot returns c with the given dot (1..8) raised.
func (c Cell) RaiseDot(dot int) (Cell, error) {
	if !validDot(dot) {
		return c, &InvalidDotNumberError{Dot: dot}
	}
	return c | dotMask(dot), nil
}

// LowerDot returns c with the given dot (1..8) lowered.
func (c Cell) LowerDot(dot int) (Cell, error) {
	if !validDot(dot) {
		return c, &InvalidDotNumberError{Dot: dot}
	}
	return c &^ dotMask(dot), nil
}

// Compare orders cells by byte value: negative when a sorts before b, zero
// when equal, positive otherwise. The order carries no braille meaning; it
// exists for sorting and ordered containers.
func Compare(a, b Cell) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
