package dotpad

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the dotpad key bindings.
type KeyMap struct {
	Dots   [8]key.Binding // Dots[n-1] toggles dot n
	Clear  key.Binding
	Fill   key.Binding
	Invert key.Binding
}

func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Clear:  key.NewBinding(key.WithKeys("c", "0"), key.WithHelp("c", "clear")),
		Fill:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fill")),
		Invert: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invert")),
	}
	for d := 1; d <= 8; d++ {
		k := strconv.Itoa(d)
		km.Dots[d-1] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, "toggle dot "+k))
	}
	return km
}
