package controls

import (
	"fmt"
	"strconv"

	"scene-lab/internal/rangemap"
	"scene-lab/internal/ui"
)

// Slider edits a float. Internally it holds a position in [0,1]; Value and callbacks see the
// external value mapped through Range, while the readout uses Display.
type Slider struct {
	base
	pos      float32
	rng      rangemap.Range
	display  rangemap.DisplayRange
	onChange callbacks[float32]
}

// SliderOption configures a Slider at construction.
type SliderOption func(*Slider)

// WithRange sets the external range. max < min is allowed and inverts the slider.
func WithRange(min, max float32) SliderOption {
	return func(s *Slider) { s.rng = rangemap.Range{Min: min, Max: max} }
}

// WithDisplay sets the range used for the numeric readout.
func WithDisplay(min, max float32) SliderOption {
	return func(s *Slider) { s.display = rangemap.DisplayRange{Min: min, Max: max} }
}

// NewSlider creates a slider starting at the external value initial.
// It returns rangemap.ErrDegenerateRange if the range has min == max.
func NewSlider(label string, category Category, initial float32, opts ...SliderOption) (*Slider, error) {
	s := &Slider{
		base:    base{label: label, category: category, kind: KindSlider},
		rng:     rangemap.DefaultRange,
		display: rangemap.DefaultDisplayRange,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.rng.Validate(); err != nil {
		return nil, fmt.Errorf("slider %q: %w", label, err)
	}
	s.pos = rangemap.Clamp01(s.rng.ToInternal(initial))
	return s, nil
}

// AddCallback registers fn to receive the external value on every change.
func (s *Slider) AddCallback(fn func(float32)) {
	s.onChange.add(fn)
}

// Value returns the external value.
func (s *Slider) Value() float32 {
	return s.rng.ToExternal(s.pos)
}

// Position returns the internal position in [0,1].
func (s *Slider) Position() float32 {
	return s.pos
}

// Range returns the external range.
func (s *Slider) Range() rangemap.Range {
	return s.rng
}

// Readout returns the text shown next to the slider.
func (s *Slider) Readout() string {
	return strconv.Itoa(s.display.Value(s.pos))
}

// SetValue moves the slider to the external value v without firing callbacks.
func (s *Slider) SetValue(v float32) {
	s.pos = rangemap.Clamp01(s.rng.ToInternal(v))
	s.sync()
}

// Render mounts the slider widget into host.
func (s *Slider) Render(host Host) {
	s.mount(host, s.handleInput)
	s.sync()
}

// handleInput takes a raw widget position in [0, ui.SliderSteps].
func (s *Slider) handleInput(in ui.Input) {
	s.pos = rangemap.Clamp01(in.Value / ui.SliderSteps)
	s.sync()
	s.onChange.fire(s.Value())
}

func (s *Slider) sync() {
	if s.node == nil {
		return
	}
	s.node.Value = s.pos * ui.SliderSteps
	s.node.Readout = s.Readout()
}
