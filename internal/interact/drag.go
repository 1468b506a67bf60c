package interact

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Baseline tells whether a drag has a previous pointer point to measure motion against.
type Baseline int

const (
	// BaselineNotStarted: grabbed, but no pointer move yet. The next move only records a point.
	BaselineNotStarted Baseline = iota
	// BaselineActive: moves translate the object by the difference to the last point.
	BaselineActive
)

// DragSession is the state of one grab, from pointer down to pointer up.
type DragSession struct {
	Object Object
	// Anchor is the camera distance captured at grab time. Drag points stay at this distance.
	Anchor   float32
	baseline Baseline
	last     rl.Vector3
}

func newDragSession(obj Object, anchor float32) *DragSession {
	return &DragSession{Object: obj, Anchor: anchor, baseline: BaselineNotStarted}
}

// Baseline returns the session's baseline state.
func (d *DragSession) Baseline() Baseline {
	return d.baseline
}

// Advance records p as the current drag point and moves the object by the motion since the
// previous point. The first call after the grab only records p and returns moved false.
func (d *DragSession) Advance(p rl.Vector3) (delta rl.Vector3, moved bool) {
	if d.baseline == BaselineActive {
		delta = rl.Vector3Subtract(p, d.last)
		d.Object.SetPosition(rl.Vector3Add(d.Object.Position(), delta))
		moved = true
	}
	d.last = p
	d.baseline = BaselineActive
	return delta, moved
}

// dragPoint is the point at distance anchor from the camera along the pointer ray.
func dragPoint(vp Viewport, ndc rl.Vector2, anchor float32) rl.Vector3 {
	cam := vp.CameraPosition()
	dir := rl.Vector3Normalize(rl.Vector3Subtract(vp.Unproject(ndc, 0), cam))
	return rl.Vector3Add(cam, rl.Vector3Scale(dir, anchor))
}
