package main

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-lab/internal/clock"
	"scene-lab/internal/controls"
	"scene-lab/internal/debug"
	"scene-lab/internal/engineconfig"
	"scene-lab/internal/fonts"
	"scene-lab/internal/interact"
	"scene-lab/internal/params"
	"scene-lab/internal/primitives"
	"scene-lab/internal/scene"
	"scene-lab/internal/ui"
)

// Targets handled outside the uniform store.
const (
	targetTimeScale = "time_scale"
	targetFPS       = "fps"
	targetAzimuth   = "light_azimuth"
	targetElevation = "light_elevation"
)

type app struct {
	prefs engineconfig.EnginePrefs
	log   *slog.Logger

	scene     *scene.Scene
	uniforms  *params.Uniforms
	clock     *clock.Clock
	dbg       *debug.Debug
	registry  *controls.Registry
	router    *params.Router
	bound     params.Bound
	static    []controls.Control
	spheres   params.Bound
	panel     *ui.Engine
	overlay   *ui.Engine
	inspector *ui.Inspector
	pointer   *interact.Controller
	renderer  *primitives.Renderer

	// pressOnPanel is true while a left press that started on the panel is held.
	pressOnPanel bool
	// rebuildPending is set when the sphere set changed during this frame's panel draw.
	rebuildPending bool
}

// newApp wires the scene, the parameter sinks and the control panel. It does not touch the window.
func newApp(prefs engineconfig.EnginePrefs, log *slog.Logger) (*app, error) {
	order, err := controls.ParseOrder(prefs.CategoryOrder)
	if err != nil {
		log.Warn("falling back to numeric category order", "err", err)
		order = controls.OrderNumeric
	}
	descs, err := params.LoadDescriptors(prefs.Descriptors)
	if err != nil {
		return nil, fmt.Errorf("load descriptors: %w", err)
	}
	applyPrefs(descs, prefs)

	a := &app{
		prefs:     prefs,
		log:       log,
		scene:     scene.New(prefs.Objects),
		uniforms:  params.NewUniforms(),
		clock:     clock.New(),
		dbg:       debug.New(),
		registry:  controls.NewRegistry(order),
		panel:     ui.NewPanel(),
		overlay:   ui.New(),
		inspector: ui.NewInspector(),
		renderer:  primitives.NewRenderer(),
	}
	a.overlay.SetStylesheet(ui.DefaultStylesheet())
	if prefs.PanelCSS != "" {
		if err := a.panel.LoadCSS(prefs.PanelCSS); err != nil {
			log.Warn("panel stylesheet not loaded", "path", prefs.PanelCSS, "err", err)
		}
	}
	a.dbg.RightInset = a.panel.PanelWidth()

	router := params.NewRouter(a.uniforms)
	a.router = router
	router.Route(a.scene, scene.TargetScale, scene.TargetGrid, scene.TargetTint, scene.TargetReset, scene.TargetAdd)
	router.Route(params.Funcs{
		Float: func(_ string, v float32) { a.clock.SetScale(v) },
	}.Sink(), targetTimeScale)
	router.Route(params.Funcs{
		Bool: func(_ string, v bool) {
			a.dbg.SetShowFPS(v)
			a.dbg.ShowStatus = v
		},
	}.Sink(), targetFPS)

	a.bound, err = params.Bind(descs, a.registry, router, log)
	if err != nil {
		return nil, fmt.Errorf("bind parameters: %w", err)
	}
	az, okAz := a.bound.Slider(targetAzimuth)
	el, okEl := a.bound.Slider(targetElevation)
	if okAz && okEl {
		params.NewLightRig(router, primitives.UniformLightDir).Attach(az, el)
	}

	a.static = a.registry.Controls()
	a.uniforms.SetLogger(log)

	a.pointer = interact.New(a.scene, log)
	if err := a.rebuildPanel(); err != nil {
		return nil, fmt.Errorf("bind sphere parameters: %w", err)
	}
	a.scene.OnChange(func() { a.rebuildPending = true })
	log.Info("ready", "controls", a.registry.Len(), "objects", len(a.scene.World()), "order", order.String())
	return a, nil
}

// rebuildPanel binds a fresh set of per-sphere controls next to the static ones and renders
// the panel again. It must not run while the panel is drawing: widget callbacks fire from
// inside the draw loop.
func (a *app) rebuildPanel() error {
	descs := a.scene.Descriptors()
	for _, d := range descs {
		a.router.Route(a.scene, d.Target)
	}
	a.registry.Teardown(a.panel)
	for _, c := range a.static {
		a.registry.Register(c)
	}
	spheres, err := params.Bind(descs, a.registry, a.router, a.log)
	if err != nil {
		return err
	}
	a.spheres = spheres
	a.registry.Build(a.panel)
	a.pointer.PointerLeave()
	return nil
}

// flushRebuild rebuilds the panel if the sphere set changed since the last call.
func (a *app) flushRebuild() {
	if !a.rebuildPending {
		return
	}
	a.rebuildPending = false
	if err := a.rebuildPanel(); err != nil {
		a.log.Error("panel rebuild failed", "err", err)
		return
	}
	a.log.Debug("panel rebuilt", "objects", len(a.scene.World()), "controls", a.registry.Len())
}

// applyPrefs seeds descriptor defaults from the saved engine preferences.
func applyPrefs(descs []params.Descriptor, prefs engineconfig.EnginePrefs) {
	for i := range descs {
		switch descs[i].Target {
		case scene.TargetGrid:
			descs[i].Default = prefs.GridVisible
		case targetFPS:
			descs[i].Default = prefs.ShowFPS
		}
	}
}

// setup runs once the window exists: theme, then the optional font shared by panel, inspector
// and debug overlay.
func (a *app) setup() {
	ui.ApplyTheme()
	if a.prefs.Font == "" {
		return
	}
	path, err := fonts.Resolve(a.prefs.Font)
	if err == nil {
		err = a.panel.LoadFont(path)
	}
	if err != nil {
		a.log.Warn("font not loaded", "font", a.prefs.Font, "err", err)
		return
	}
	a.overlay.ShareFont(a.panel.Font())
	a.dbg.SetFont(a.panel.Font())
	a.log.Info("font loaded", "path", path)
}

func (a *app) update() {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	a.scene.SetViewportSize(w, h)

	if rl.IsKeyPressed(rl.KeySpace) {
		paused := a.clock.TogglePause()
		a.log.Info("clock", "paused", paused)
	}

	mouse := rl.GetMousePosition()
	overPanel := a.panel.Contains(mouse)
	pressed := rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	a.handlePointer(mouse, w, h, overPanel, pressed, rl.IsMouseButtonReleased(rl.MouseButtonLeft))

	held := rl.IsMouseButtonDown(rl.MouseButtonLeft) || rl.IsMouseButtonDown(rl.MouseButtonRight)
	var delta rl.Vector2
	if held {
		delta = rl.GetMouseDelta()
	}
	a.orbitInput(delta, rl.GetMouseWheelMove(), overPanel, held)
	a.scene.ApplyCursor()

	a.clock.Tick(rl.GetFrameTime())
	a.uniforms.SetFloat(primitives.UniformTime, a.clock.Elapsed())
}

// handlePointer routes one frame of pointer input to the controller. Input over the panel goes
// to the widgets, except that an active drag keeps following the pointer.
func (a *app) handlePointer(mouse rl.Vector2, w, h float32, overPanel, pressed, released bool) {
	if pressed {
		a.pressOnPanel = overPanel
	}
	grabbing := a.pointer.State() == interact.Grabbing
	if overPanel && !grabbing {
		a.pointer.PointerLeave()
	} else {
		a.pointer.PointerMove(mouse.X, mouse.Y, w, h)
	}
	if pressed && !overPanel {
		a.pointer.PointerDown(mouse.X, mouse.Y, w, h)
	}
	if released {
		a.pointer.PointerUp()
		a.pressOnPanel = false
	}
}

// orbitInput applies one frame of camera input. A press that started on the panel belongs to
// the widgets until release, even once the pointer leaves the panel. A drag that started in
// the viewport keeps orbiting over the panel.
func (a *app) orbitInput(delta rl.Vector2, wheel float32, overPanel, held bool) {
	if a.pressOnPanel || (overPanel && !held) {
		return
	}
	a.scene.Orbit(delta, wheel)
}

func (a *app) draw() {
	snap := a.uniforms.Snapshot()
	a.scene.Draw(a.renderer, primitives.UniformsFrom(snap, a.scene.CameraPosition()))
	a.panel.Draw()
	a.flushRebuild()

	focus := a.scene.Focus()
	var sel ui.Selection
	if focus != nil {
		sel = focus.Selection()
		sel.Radius *= a.scene.Scale()
	}
	a.overlay.SetNodes(a.inspector.AppendNodes(nil, focus != nil, sel))
	a.overlay.Draw()

	a.dbg.Draw(debug.Status{Paused: a.clock.Paused(), Pointer: a.pointer.State().String()})
}
