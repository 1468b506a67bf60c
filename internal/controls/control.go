// Package controls implements the parameter widgets shown in the control panel (slider,
// checkbox, button, color picker) and the registry that groups them into categories.
package controls

import (
	"fmt"

	"scene-lab/internal/ui"
)

// Kind tags the widget variant of a Control.
type Kind int

const (
	KindSlider Kind = iota
	KindCheckbox
	KindButton
	KindColorPicker
)

func (k Kind) String() string {
	switch k {
	case KindSlider:
		return "slider"
	case KindCheckbox:
		return "checkbox"
	case KindButton:
		return "button"
	case KindColorPicker:
		return "color"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// nodeType maps a Kind to the panel node type that draws it.
func nodeType(k Kind) string {
	switch k {
	case KindSlider:
		return ui.TypeSlider
	case KindCheckbox:
		return ui.TypeCheckbox
	case KindButton:
		return ui.TypeButton
	case KindColorPicker:
		return ui.TypeColorPicker
	}
	panic(fmt.Sprintf("controls: unhandled kind %v", k))
}

// Host is the panel mount point controls render into. *ui.Engine implements it.
type Host interface {
	Append(n *ui.Node)
	Remove(n *ui.Node) bool
	Clear()
}

// Control is one labelled widget in the panel.
//
// Render mounts exactly one node and attaches exactly one input listener. Calling Render
// twice without Destroy in between leaves the first node mounted and listening; callers
// must Destroy first. Destroy detaches the listener and unmounts the node, and is a no-op
// when the control is not rendered.
type Control interface {
	Label() string
	Kind() Kind
	Category() Category
	Render(host Host)
	Destroy()
}

// callbacks is an ordered list of change handlers.
type callbacks[T any] []func(T)

func (c *callbacks[T]) add(fn func(T)) {
	*c = append(*c, fn)
}

func (c callbacks[T]) fire(v T) {
	for _, fn := range c {
		fn(v)
	}
}

// base carries what every variant shares: identity, category and the mounted widget.
type base struct {
	label    string
	category Category
	kind     Kind

	host   Host
	node   *ui.Node
	detach func()
}

func (b *base) Label() string      { return b.label }
func (b *base) Kind() Kind         { return b.kind }
func (b *base) Category() Category { return b.category }

// Node returns the mounted node, or nil when not rendered.
func (b *base) Node() *ui.Node { return b.node }

// mount creates the node for this variant, attaches onInput and appends the node to host.
func (b *base) mount(host Host, onInput func(ui.Input)) *ui.Node {
	n := ui.NewNode(nodeType(b.kind), "", "", b.label)
	b.host = host
	b.node = n
	b.detach = n.OnInput(onInput)
	host.Append(n)
	return n
}

// Destroy detaches the listener and removes the node. Safe to call repeatedly.
func (b *base) Destroy() {
	if b.node == nil {
		return
	}
	b.detach()
	b.host.Remove(b.node)
	b.node = nil
	b.host = nil
	b.detach = nil
}
