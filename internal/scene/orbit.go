package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	orbitSensitivity = 0.005 // radians per pixel
	zoomStep         = 0.9
	minDistance      = 2
	maxDistance      = 60
	maxPitch         = 1.5
)

// orbit is a yaw/pitch/distance rig around a target point.
type orbit struct {
	yaw, pitch, distance float32
}

// orbitFrom derives the rig that places the camera at pos looking at target.
func orbitFrom(pos, target rl.Vector3) orbit {
	off := rl.Vector3Subtract(pos, target)
	d := rl.Vector3Length(off)
	if d == 0 {
		return orbit{distance: minDistance}
	}
	return orbit{
		yaw:      math32.Atan2(off.X, off.Z),
		pitch:    math32.Asin(off.Y / d),
		distance: d,
	}
}

// rotate applies a mouse delta in pixels.
func (o *orbit) rotate(delta rl.Vector2) {
	o.yaw -= delta.X * orbitSensitivity
	o.pitch = rl.Clamp(o.pitch+delta.Y*orbitSensitivity, -maxPitch, maxPitch)
}

// zoom applies wheel steps; positive moves closer.
func (o *orbit) zoom(steps float32) {
	if steps == 0 {
		return
	}
	o.distance = rl.Clamp(o.distance*math32.Pow(zoomStep, steps), minDistance, maxDistance)
}

// position returns the camera position for target.
func (o orbit) position(target rl.Vector3) rl.Vector3 {
	cp := math32.Cos(o.pitch)
	return rl.NewVector3(
		target.X+o.distance*cp*math32.Sin(o.yaw),
		target.Y+o.distance*math32.Sin(o.pitch),
		target.Z+o.distance*cp*math32.Cos(o.yaw),
	)
}
