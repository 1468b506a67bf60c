package interact

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Controller is the pointer state machine over a Viewport's objects.
// All methods run on the render thread; it is not safe for concurrent use.
type Controller struct {
	vp      Viewport
	log     *slog.Logger
	state   State
	hovered Object
	session *DragSession
}

// New returns an idle controller. A nil log discards debug output.
func New(vp Viewport, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Controller{vp: vp, log: log.With("component", "interact")}
}

// State returns the current pointer state.
func (c *Controller) State() State {
	return c.state
}

// Hovered returns the object under the pointer after the last move, or nil.
func (c *Controller) Hovered() Object {
	return c.hovered
}

// Grabbed returns the grabbed object, or nil.
func (c *Controller) Grabbed() Object {
	if c.session == nil {
		return nil
	}
	return c.session.Object
}

// Session returns the active drag session, or nil.
func (c *Controller) Session() *DragSession {
	return c.session
}

// PointerMove updates hover and, while grabbing, drags the grabbed object.
// Hover is resolved before the drag is applied.
func (c *Controller) PointerMove(px, py, width, height float32) {
	ndc := NDC(px, py, width, height)
	c.updateHover(ndc)
	if c.session == nil {
		return
	}
	p := dragPoint(c.vp, ndc, c.session.Anchor)
	c.session.Advance(p)
}

// PointerDown grabs the nearest object under the pointer. It reports whether a grab started.
// While a grab is active it does nothing: only one object can be grabbed.
func (c *Controller) PointerDown(px, py, width, height float32) bool {
	if c.session != nil {
		return false
	}
	hits := c.vp.CastRay(NDC(px, py, width, height))
	if len(hits) == 0 {
		return false
	}
	hit := hits[0]
	anchor := rl.Vector3Distance(hit.Object.Position(), c.vp.CameraPosition())
	c.session = newDragSession(hit.Object, anchor)
	hit.Object.SetGrabbed(true)
	c.vp.SetOrbitEnabled(false)
	c.vp.SetCursor(CursorGrab)
	c.setState(Grabbing)
	c.log.Debug("grab", "distance", hit.Distance, "anchor", anchor)
	return true
}

// PointerUp ends the drag. Hover is not retested; the next move refreshes it.
func (c *Controller) PointerUp() {
	if c.session == nil {
		return
	}
	c.session.Object.SetGrabbed(false)
	c.session = nil
	c.vp.SetOrbitEnabled(true)
	if c.hovered != nil {
		c.vp.SetCursor(CursorPointer)
		c.setState(Hovering)
	} else {
		c.vp.SetCursor(CursorDefault)
		c.setState(Idle)
	}
	c.log.Debug("release")
}

// PointerLeave clears hover when the pointer leaves the viewport (for example onto the panel).
// An active drag is unaffected.
func (c *Controller) PointerLeave() {
	if c.hovered == nil {
		return
	}
	for _, obj := range c.vp.Objects() {
		obj.SetHovered(false)
	}
	c.hovered = nil
	if c.session == nil {
		c.vp.SetCursor(CursorDefault)
		c.setState(Idle)
	}
}

// updateHover flags the nearest hit object as hovered and clears every other object.
func (c *Controller) updateHover(ndc rl.Vector2) {
	var next Object
	if hits := c.vp.CastRay(ndc); len(hits) > 0 {
		next = hits[0].Object
	}
	for _, obj := range c.vp.Objects() {
		obj.SetHovered(obj == next)
	}
	c.hovered = next
	if c.session != nil {
		return
	}
	if next != nil {
		c.vp.SetCursor(CursorPointer)
		c.setState(Hovering)
	} else {
		c.vp.SetCursor(CursorDefault)
		c.setState(Idle)
	}
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	c.log.Debug("state", "from", c.state.String(), "to", s.String())
	c.state = s
}
