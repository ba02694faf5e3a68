package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	prevPage  key.Binding
	nextPage  key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	quit      key.Binding
	filter    key.Binding
	refresh   key.Binding
	rename    key.Binding
	editDesc  key.Binding
	saveDesc  key.Binding
	delete    key.Binding
	copyID    key.Binding
	menu      key.Binding
	yes       key.Binding
	no        key.Binding
	buildInfo key.Binding
	forceQuit key.Binding
	backspace key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	prevPage:  key.NewBinding(key.WithKeys("left", "h")),
	nextPage:  key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	filter:    key.NewBinding(key.WithKeys("/")),
	refresh:   key.NewBinding(key.WithKeys("ctrl+r")),
	rename:    key.NewBinding(key.WithKeys("r")),
	editDesc:  key.NewBinding(key.WithKeys("e")),
	saveDesc:  key.NewBinding(key.WithKeys("ctrl+s")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copyID:    key.NewBinding(key.WithKeys("c")),
	menu:      key.NewBinding(key.WithKeys("m")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	backspace: key.NewBinding(key.WithKeys("backspace")),
}
