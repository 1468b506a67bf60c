package controls

import "scene-lab/internal/ui"

// Button fires its callbacks on every click and keeps no value.
type Button struct {
	base
	onClick []func()
}

// NewButton creates a button.
func NewButton(label string, category Category) *Button {
	return &Button{base: base{label: label, category: category, kind: KindButton}}
}

// AddCallback registers fn to run on every click.
func (b *Button) AddCallback(fn func()) {
	b.onClick = append(b.onClick, fn)
}

// Render mounts the button widget into host.
func (b *Button) Render(host Host) {
	b.mount(host, b.handleInput)
}

func (b *Button) handleInput(ui.Input) {
	for _, fn := range b.onClick {
		fn()
	}
}
