package dotpad

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/braille/internal/dotgrid"
)

func (m Model) View() string {
	st := m.cfg.Style

	lines := make([]string, 0, 6)
	for _, row := range dotgrid.Layout() {
		left := m.renderDot(row[0], st)
		right := m.renderDot(row[1], st)
		lines = append(lines, left+" "+right)
	}

	if m.cfg.ShowGlyph {
		glyph := st.Glyph.Render(m.cell.String())
		label := st.Label.Render(fmt.Sprintf("0x%02X dots %v", m.cell.Value(), m.cell.Dots()))
		lines = append(lines, "", glyph+" "+label)
	}

	return m.crop(lines)
}

func (m Model) renderDot(dot int, st Style) string {
	// Layout dots are always in range.
	raised, _ := m.cell.DotRaised(dot)
	if raised {
		return st.Raised.Render(dotgrid.Raised)
	}
	return st.Flat.Render(dotgrid.Flat)
}

// crop fits the rendered lines into the configured size: rows beyond the
// height are dropped, overwide plain lines truncated. Styled lines are
// left intact; hosts that need hard clipping place the pad in their own
// viewport.
func (m Model) crop(lines []string) string {
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	if m.width > 0 {
		for i, line := range lines {
			if lipgloss.Width(line) > m.width && !strings.ContainsRune(line, '\x1b') {
				lines[i] = runewidth.Truncate(line, m.width, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}
