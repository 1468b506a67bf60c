package rangemap

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrDegenerateRange is returned when a range has Min == Max, which would divide by zero
// when mapping an external value back to a slider position.
var ErrDegenerateRange = errors.New("rangemap: min and max must differ")

// Range maps a normalized slider position t in [0,1] to an external value in [Min,Max].
// Max < Min is allowed and inverts the direction (t=0 gives Min, t=1 gives Max).
type Range struct {
	Min float32
	Max float32
}

// DisplayRange maps a slider position to the integer shown next to the slider.
// It is independent of Range: the readout can say 0..100 while callbacks receive 0..1.
type DisplayRange struct {
	Min float32
	Max float32
}

// Default ranges used when a slider is created without explicit ones.
var (
	DefaultRange        = Range{Min: 0, Max: 1}
	DefaultDisplayRange = DisplayRange{Min: 0, Max: 100}
)

// NewRange returns a Range after checking it is not degenerate.
func NewRange(min, max float32) (Range, error) {
	r := Range{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Validate reports ErrDegenerateRange for Min == Max.
func (r Range) Validate() error {
	if r.Min == r.Max {
		return ErrDegenerateRange
	}
	return nil
}

// ToInternal converts an external value to a slider position. Values outside the range
// map outside [0,1]; callers clamp if they need to.
func (r Range) ToInternal(external float32) float32 {
	return (external - r.Min) / (r.Max - r.Min)
}

// ToExternal converts a slider position to the external value.
func (r Range) ToExternal(internal float32) float32 {
	return r.Min + internal*(r.Max-r.Min)
}

// Value returns the floored display value for a slider position.
func (d DisplayRange) Value(internal float32) int {
	return int(math32.Floor(d.Min + internal*(d.Max-d.Min)))
}

// Clamp01 clamps t into [0,1].
func Clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
