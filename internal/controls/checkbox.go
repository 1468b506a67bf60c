package controls

import "scene-lab/internal/ui"

// Checkbox edits a bool.
type Checkbox struct {
	base
	value    bool
	onChange callbacks[bool]
}

// NewCheckbox creates a checkbox with the given initial state.
func NewCheckbox(label string, category Category, initial bool) *Checkbox {
	return &Checkbox{
		base:  base{label: label, category: category, kind: KindCheckbox},
		value: initial,
	}
}

// AddCallback registers fn to receive the new state on every toggle.
func (c *Checkbox) AddCallback(fn func(bool)) {
	c.onChange.add(fn)
}

// Value returns the current state.
func (c *Checkbox) Value() bool {
	return c.value
}

// SetValue changes the state without firing callbacks.
func (c *Checkbox) SetValue(v bool) {
	c.value = v
	if c.node != nil {
		c.node.Checked = v
	}
}

// Render mounts the checkbox widget into host.
func (c *Checkbox) Render(host Host) {
	n := c.mount(host, c.handleInput)
	n.Checked = c.value
}

func (c *Checkbox) handleInput(in ui.Input) {
	c.SetValue(in.Checked)
	c.onChange.fire(c.value)
}
