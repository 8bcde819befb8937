package cell

import "fmt"

// InvalidDotNumberError reports a dot index outside the valid range [1, 8].
//
// It always signals a caller bug: dot arguments are rejected up front,
// never clamped or guessed at.
type InvalidDotNumberError struct {
	Dot int
}

func (e *InvalidDotNumberError) Error() string {
	return fmt.Sprintf("braille: invalid dot number %d (want 1..8)", e.Dot)
}
