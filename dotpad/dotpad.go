package dotpad

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/braille/cell"
)

// Config configures the dotpad Model.
type Config struct {
	// Initial cell to edit.
	Cell cell.Cell

	// ShowGlyph adds the pattern character and value readout under the grid.
	ShowGlyph bool

	Keys  KeyMap // zero value means DefaultKeyMap
	Style Style
}

// Model is a Bubble Tea component editing a single braille cell.
//
// Like the cell it wraps, the model is a value: Update and the setters
// return a new Model.
type Model struct {
	cfg  Config
	cell cell.Cell

	focused       bool
	width, height int
}

func New(cfg Config) Model {
	if len(cfg.Keys.Clear.Keys()) == 0 {
		cfg.Keys = DefaultKeyMap()
	}
	return Model{
		cfg:     cfg,
		cell:    cfg.Cell,
		focused: true,
	}
}

// Cell returns the cell being edited.
func (m Model) Cell() cell.Cell { return m.cell }

// SetCell replaces the cell being edited.
func (m Model) SetCell(c cell.Cell) Model {
	m.cell = c
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg), nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	km := m.cfg.Keys
	switch {
	case key.Matches(msg, km.Clear):
		m.cell = cell.Empty
	case key.Matches(msg, km.Fill):
		m.cell = cell.Full
	case key.Matches(msg, km.Invert):
		m.cell = cell.Full.Flatten(m.cell)
	default:
		for i := range km.Dots {
			if key.Matches(msg, km.Dots[i]) {
				m.cell = toggleDot(m.cell, i+1)
				break
			}
		}
	}
	return m
}

func toggleDot(c cell.Cell, dot int) cell.Cell {
	raised, err := c.DotRaised(dot)
	if err != nil {
		// Bindings only cover dots 1..8.
		return c
	}
	if raised {
		next, _ := c.LowerDot(dot)
		return next
	}
	next, _ := c.RaiseDot(dot)
	return next
}
