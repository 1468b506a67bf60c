package params

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"scene-lab/internal/controls"
)

// ErrUnknownType is returned for a descriptor whose type tag or default value has no control.
var ErrUnknownType = errors.New("params: unknown control type")

//go:embed descriptors.yaml
var defaultDescriptors []byte

// Bounds is a min/max pair. Max may be below Min.
type Bounds struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// Descriptor declares one tunable parameter and the control that edits it.
// Target names the value in the sink. Type is slider, checkbox, button or color; when empty
// it is inferred from Default (number: slider, bool: checkbox, "#..." string: color,
// no default: button).
type Descriptor struct {
	Target   string  `yaml:"target"`
	Label    string  `yaml:"label"`
	Type     string  `yaml:"type,omitempty"`
	Default  any     `yaml:"default,omitempty"`
	Category string  `yaml:"category,omitempty"`
	Range    *Bounds `yaml:"range,omitempty"`
	Display  *Bounds `yaml:"display,omitempty"`
}

// Kind resolves the control kind for d.
func (d Descriptor) Kind() (controls.Kind, error) {
	switch strings.ToLower(d.Type) {
	case "slider":
		return controls.KindSlider, nil
	case "checkbox":
		return controls.KindCheckbox, nil
	case "button":
		return controls.KindButton, nil
	case "color":
		return controls.KindColorPicker, nil
	case "":
	default:
		return 0, fmt.Errorf("%w %q for %s", ErrUnknownType, d.Type, d.Target)
	}
	switch v := d.Default.(type) {
	case nil:
		return controls.KindButton, nil
	case bool:
		return controls.KindCheckbox, nil
	case int, int64, float32, float64:
		return controls.KindSlider, nil
	case string:
		if strings.HasPrefix(strings.TrimSpace(v), "#") {
			return controls.KindColorPicker, nil
		}
	}
	return 0, fmt.Errorf("%w: cannot infer from default %v (%T) for %s", ErrUnknownType, d.Default, d.Default, d.Target)
}

// Float returns Default as a float32; ok is false when it is not a number.
func (d Descriptor) Float() (float32, bool) {
	switch v := d.Default.(type) {
	case int:
		return float32(v), true
	case int64:
		return float32(v), true
	case float32:
		return v, true
	case float64:
		return float32(v), true
	}
	return 0, false
}

// ParseDescriptors decodes a YAML list of descriptors.
func ParseDescriptors(data []byte) ([]Descriptor, error) {
	var descs []Descriptor
	if err := yaml.Unmarshal(data, &descs); err != nil {
		return nil, fmt.Errorf("params: decode descriptors: %w", err)
	}
	for i, d := range descs {
		if d.Target == "" {
			return nil, fmt.Errorf("params: descriptor %d has no target", i)
		}
		if d.Label == "" {
			descs[i].Label = d.Target
		}
	}
	return descs, nil
}

// DefaultDescriptors returns the built-in panel definition.
func DefaultDescriptors() ([]Descriptor, error) {
	return ParseDescriptors(defaultDescriptors)
}

// LoadDescriptors reads descriptors from path. An empty path yields the built-in set.
func LoadDescriptors(path string) ([]Descriptor, error) {
	if path == "" {
		return DefaultDescriptors()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	return ParseDescriptors(data)
}
