package params

import (
	"fmt"
	"log/slog"

	"scene-lab/internal/controls"
	"scene-lab/internal/ui"
)

// Bound maps descriptor targets to the controls created for them.
type Bound map[string]controls.Control

// Slider returns the slider bound to target.
func (b Bound) Slider(target string) (*controls.Slider, bool) {
	s, ok := b[target].(*controls.Slider)
	return s, ok
}

// Bind creates one control per descriptor, in order, pushes each default into sink, wires the
// control's callbacks to write into sink under the descriptor's target, and registers the
// control with reg.
func Bind(descs []Descriptor, reg *controls.Registry, sink Sink, log *slog.Logger) (Bound, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	bound := make(Bound, len(descs))
	for _, d := range descs {
		c, err := newControl(d, sink)
		if err != nil {
			return nil, err
		}
		reg.Register(c)
		bound[d.Target] = c
		log.Debug("bound parameter", "target", d.Target, "kind", c.Kind().String(), "category", c.Category().String())
	}
	return bound, nil
}

func newControl(d Descriptor, sink Sink) (controls.Control, error) {
	kind, err := d.Kind()
	if err != nil {
		return nil, err
	}
	cat := controls.ParseCategory(d.Category)
	target := d.Target
	switch kind {
	case controls.KindSlider:
		initial, ok := d.Float()
		if !ok && d.Default != nil {
			return nil, mismatch(d)
		}
		var opts []controls.SliderOption
		if d.Range != nil {
			opts = append(opts, controls.WithRange(d.Range.Min, d.Range.Max))
		}
		if d.Display != nil {
			opts = append(opts, controls.WithDisplay(d.Display.Min, d.Display.Max))
		}
		s, err := controls.NewSlider(d.Label, cat, initial, opts...)
		if err != nil {
			return nil, fmt.Errorf("params: %s: %w", target, err)
		}
		sink.SetFloat(target, s.Value())
		s.AddCallback(func(v float32) { sink.SetFloat(target, v) })
		return s, nil
	case controls.KindCheckbox:
		initial, ok := d.Default.(bool)
		if !ok && d.Default != nil {
			return nil, mismatch(d)
		}
		c := controls.NewCheckbox(d.Label, cat, initial)
		sink.SetBool(target, initial)
		c.AddCallback(func(v bool) { sink.SetBool(target, v) })
		return c, nil
	case controls.KindButton:
		b := controls.NewButton(d.Label, cat)
		b.AddCallback(func() { sink.Trigger(target) })
		return b, nil
	case controls.KindColorPicker:
		hex, ok := d.Default.(string)
		if !ok && d.Default != nil {
			return nil, mismatch(d)
		}
		if hex == "" {
			hex = "#ffffff"
		}
		p, err := controls.NewColorPicker(d.Label, cat, hex)
		if err != nil {
			return nil, fmt.Errorf("params: %s: %w", target, err)
		}
		sink.SetColor(target, p.Color())
		p.AddCallback(func(hex string) {
			if c, ok := ui.ParseHexColor(hex); ok {
				sink.SetColor(target, c)
			}
		})
		return p, nil
	}
	return nil, fmt.Errorf("%w %v for %s", ErrUnknownType, kind, target)
}

// mismatch reports a default whose type does not fit the declared control type.
func mismatch(d Descriptor) error {
	return fmt.Errorf("%w: %s default %v (%T) for %s", ErrUnknownType, d.Type, d.Default, d.Default, d.Target)
}
