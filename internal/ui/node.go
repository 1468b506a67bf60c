package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node types understood by the engine. Interactive types are drawn with raygui.
const (
	TypePanel       = "panel"
	TypeLabel       = "label"
	TypeHeader      = "header"
	TypeDivider     = "divider"
	TypeSlider      = "slider"
	TypeCheckbox    = "checkbox"
	TypeButton      = "button"
	TypeColorPicker = "colorpicker"
)

// SliderSteps is the raw slider scale: widgets report positions in [0, SliderSteps].
const SliderSteps = 100

// Input is one low-level widget event. Only the field matching the node type is meaningful:
// Value for sliders (raw, 0..SliderSteps), Checked for checkboxes, Color for color pickers.
// Buttons send the zero Input.
type Input struct {
	Value   float32
	Checked bool
	Color   rl.Color
}

type listener struct {
	id int
	fn func(Input)
}

// Node is a single UI element: panel, label, header, or a widget. It has optional class and id
// for CSS matching, bounds (position and size), optional text, and the widget state it shows.
type Node struct {
	Type   string // see Type* constants
	Class  string // e.g. "menu" for .menu
	ID     string // e.g. "main" for #main
	Bounds rl.Rectangle
	Text   string // label, header text, or widget caption

	Value   float32  // slider position in [0, SliderSteps]
	Readout string   // text drawn right of a slider
	Checked bool     // checkbox state
	Color   rl.Color // color picker state

	listeners []listener
	nextID    int
}

// NewNode creates a node with type and optional class, id, and text.
// An empty class defaults to the type so ".slider" etc. match without extra markup.
func NewNode(typ, class, id, text string) *Node {
	if class == "" {
		class = typ
	}
	return &Node{
		Type:   typ,
		Class:  class,
		ID:     id,
		Text:   text,
		Bounds: rl.Rectangle{X: 0, Y: 0, Width: 0, Height: 0},
	}
}

// OnInput attaches fn to the node and returns a function that detaches it again.
// Each call adds a new listener; the detach func only removes its own.
func (n *Node) OnInput(fn func(Input)) (detach func()) {
	n.nextID++
	id := n.nextID
	n.listeners = append(n.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of attached input listeners.
func (n *Node) Listeners() int {
	return len(n.listeners)
}

// Emit delivers in to every attached listener, in attach order.
// The renderer calls it when a widget reports a change; tests call it to simulate input.
func (n *Node) Emit(in Input) {
	for _, l := range append([]listener(nil), n.listeners...) {
		l.fn(in)
	}
}

// Interactive reports whether the node is drawn as a raygui widget.
func (n *Node) Interactive() bool {
	switch n.Type {
	case TypeSlider, TypeCheckbox, TypeButton, TypeColorPicker:
		return true
	}
	return false
}
