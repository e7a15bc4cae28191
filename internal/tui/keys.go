package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	logout    key.Binding
	newEntry  key.Binding
	accept    key.Binding
	decline   key.Binding
	swipe     key.Binding
	copy      key.Binding
	settings  key.Binding
	invite    key.Binding
	remove    key.Binding
	deleteAll key.Binding
	leave     key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("ctrl+l")),
	newEntry:  key.NewBinding(key.WithKeys("n")),
	accept:    key.NewBinding(key.WithKeys("a")),
	decline:   key.NewBinding(key.WithKeys("x")),
	swipe:     key.NewBinding(key.WithKeys("d", "left")),
	copy:      key.NewBinding(key.WithKeys("c")),
	settings:  key.NewBinding(key.WithKeys("s")),
	invite:    key.NewBinding(key.WithKeys("i")),
	remove:    key.NewBinding(key.WithKeys("r")),
	deleteAll: key.NewBinding(key.WithKeys("D")),
	leave:     key.NewBinding(key.WithKeys("L")),
	info:      key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
