// Package dotgrid renders one braille cell as its physical dot layout:
// four rows of two dots, left column 1-2-3-7, right column 4-5-6-8.
package dotgrid

import "github.com/iw2rmb/braille/cell"

// Markers for raised and flat dots.
const (
	Raised = "●"
	Flat   = "·"
)

var layout = [4][2]int{{1, 4}, {2, 5}, {3, 6}, {7, 8}}

// Layout returns the dot numbers in physical order, top row first.
func Layout() [4][2]int {
	return layout
}

// Render returns the four display rows for c, top to bottom. Each row is
// the left and right markers separated by a space.
func Render(c cell.Cell) [4]string {
	var out [4]string
	for i, row := range layout {
		out[i] = marker(c, row[0]) + " " + marker(c, row[1])
	}
	return out
}

func marker(c cell.Cell, dot int) string {
	// Layout dots are always in range.
	raised, _ := c.DotRaised(dot)
	if raised {
		return Raised
	}
	return Flat
}
