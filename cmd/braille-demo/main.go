package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/braille/cell"
	"github.com/iw2rmb/braille/dotpad"
)

type model struct {
	pad dotpad.Model
}

func newModel() model {
	cfg := dotpad.Config{
		Cell:      cell.MustDots(1, 4, 5),
		ShowGlyph: true,
		Style:     dotpad.DefaultStyle(),
	}
	return model{pad: dotpad.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.pad = m.pad.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.pad, cmd = m.pad.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.pad.View() }

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
