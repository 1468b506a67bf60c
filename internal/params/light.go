package params

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-lab/internal/controls"
)

// LightRig derives a light direction from an azimuth and an elevation angle (radians) and
// pushes it to a sink whenever either angle changes.
type LightRig struct {
	Azimuth   float32
	Elevation float32
	target    string
	sink      Sink
}

// NewLightRig returns a rig that writes its direction to target on sink.
func NewLightRig(sink Sink, target string) *LightRig {
	return &LightRig{target: target, sink: sink}
}

// Direction returns the unit vector pointing toward the light. Elevation is measured from
// the XZ plane, azimuth around +Y starting at +X.
func (l *LightRig) Direction() rl.Vector3 {
	ce := math32.Cos(l.Elevation)
	return rl.NewVector3(ce*math32.Cos(l.Azimuth), math32.Sin(l.Elevation), ce*math32.Sin(l.Azimuth))
}

// Attach reads the current angles from both sliders, pushes the direction once, and
// re-pushes it from either slider's callback.
func (l *LightRig) Attach(azimuth, elevation *controls.Slider) {
	l.Azimuth = azimuth.Value()
	l.Elevation = elevation.Value()
	azimuth.AddCallback(func(v float32) {
		l.Azimuth = v
		l.push()
	})
	elevation.AddCallback(func(v float32) {
		l.Elevation = v
		l.push()
	})
	l.push()
}

func (l *LightRig) push() {
	l.sink.SetVec3(l.target, l.Direction())
}
