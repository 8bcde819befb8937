package dotpad

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/braille/cell"
	"github.com/iw2rmb/braille/internal/dotgrid"
)

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func TestView_PlainGridMatchesDotgrid(t *testing.T) {
	m := New(Config{Cell: cell.MustDots(1, 4, 5)})

	lines := splitLines(m.View())
	want := dotgrid.Render(cell.MustDots(1, 4, 5))
	if len(lines) != len(want) {
		t.Fatalf("view has %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestView_GlyphReadout(t *testing.T) {
	m := New(Config{Cell: cell.MustDots(1, 4, 5), ShowGlyph: true})

	lines := splitLines(m.View())
	if len(lines) != 6 {
		t.Fatalf("view has %d lines, want 6", len(lines))
	}
	if got, want := lines[5], "⠙ 0x19 dots [1 4 5]"; got != want {
		t.Fatalf("readout = %q, want %q", got, want)
	}
}

func TestView_StyledDots(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{
		Raised: r.NewStyle().Bold(true),
		Flat:   r.NewStyle().Faint(true),
	}
	m := New(Config{Cell: cell.MustDots(1), Style: st})

	lines := splitLines(m.View())
	if got, want := lines[0], st.Raised.Render(dotgrid.Raised)+" "+st.Flat.Render(dotgrid.Flat); got != want {
		t.Fatalf("styled row:\n got: %q\nwant: %q", got, want)
	}
	if got, want := lines[1], st.Flat.Render(dotgrid.Flat)+" "+st.Flat.Render(dotgrid.Flat); got != want {
		t.Fatalf("flat row:\n got: %q\nwant: %q", got, want)
	}
}

func TestView_CropsToSize(t *testing.T) {
	m := New(Config{Cell: cell.Full, ShowGlyph: true}).SetSize(1, 3)

	lines := splitLines(m.View())
	if len(lines) != 3 {
		t.Fatalf("view has %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if lipgloss.Width(line) > 1 {
			t.Fatalf("line %d wider than 1 cell: %q", i, line)
		}
	}
}
