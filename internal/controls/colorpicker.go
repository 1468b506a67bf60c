package controls

import (
	"errors"
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-lab/internal/ui"
)

// ErrInvalidColor is returned for a color that is not #rgb, #rrggbb or #rrggbbaa.
var ErrInvalidColor = errors.New("controls: invalid hex color")

// ColorPicker edits a color, exchanged as a hex string. A picker created from an
// eight-digit value keeps and emits the alpha channel; otherwise it emits #rrggbb.
type ColorPicker struct {
	base
	color    rl.Color
	alpha    bool
	onChange callbacks[string]
}

// NewColorPicker creates a picker starting at hex.
func NewColorPicker(label string, category Category, hex string) (*ColorPicker, error) {
	p := &ColorPicker{base: base{label: label, category: category, kind: KindColorPicker}}
	if err := p.SetHex(hex); err != nil {
		return nil, fmt.Errorf("color picker %q: %w", label, err)
	}
	return p, nil
}

// AddCallback registers fn to receive the hex value on every change.
func (p *ColorPicker) AddCallback(fn func(string)) {
	p.onChange.add(fn)
}

// Hex returns the current color as #rrggbb or #rrggbbaa.
func (p *ColorPicker) Hex() string {
	return ui.FormatHexColor(p.color, p.alpha)
}

// Color returns the current color.
func (p *ColorPicker) Color() rl.Color {
	return p.color
}

// SetHex changes the color without firing callbacks.
func (p *ColorPicker) SetHex(hex string) error {
	c, ok := ui.ParseHexColor(hex)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	p.color = c
	p.alpha = len(strings.TrimSpace(hex)) == 9
	if p.node != nil {
		p.node.Color = c
	}
	return nil
}

// Render mounts the color picker widget into host.
func (p *ColorPicker) Render(host Host) {
	n := p.mount(host, p.handleInput)
	n.Color = p.color
}

func (p *ColorPicker) handleInput(in ui.Input) {
	c := in.Color
	if !p.alpha {
		c.A = 255
	}
	p.color = c
	p.node.Color = c
	p.onChange.fire(p.Hex())
}
