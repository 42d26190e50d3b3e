package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	logout     key.Binding
	newItem    key.Binding
	reload     key.Binding
	edit       key.Binding
	delete     key.Binding
	water      key.Binding
	manualTemp key.Binding
	savedTemp  key.Binding
	outdoor    key.Binding
	link       key.Binding
	unlink     key.Binding
	settings   key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	left:       key.NewBinding(key.WithKeys("left")),
	right:      key.NewBinding(key.WithKeys("right", " ")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab", "down")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:       key.NewBinding(key.WithKeys("q")),
	logout:     key.NewBinding(key.WithKeys("L")),
	newItem:    key.NewBinding(key.WithKeys("a")),
	reload:     key.NewBinding(key.WithKeys("r")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	water:      key.NewBinding(key.WithKeys("w")),
	manualTemp: key.NewBinding(key.WithKeys("t")),
	savedTemp:  key.NewBinding(key.WithKeys("c")),
	outdoor:    key.NewBinding(key.WithKeys("o")),
	link:       key.NewBinding(key.WithKeys("g")),
	unlink:     key.NewBinding(key.WithKeys("x")),
	settings:   key.NewBinding(key.WithKeys("s")),
	yes:        key.NewBinding(key.WithKeys("y", "s")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
}
