package params

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
)

// Sink receives parameter values by target name. Implementations ignore targets they do
// not know.
type Sink interface {
	SetFloat(target string, v float32)
	SetBool(target string, v bool)
	SetColor(target string, c rl.Color)
	SetVec3(target string, v rl.Vector3)
	Trigger(target string)
}

// Values is a plain copy of every uniform value, read by the renderer once per frame.
type Values struct {
	Floats map[string]float32
	Bools  map[string]bool
	Colors map[string]rl.Color
	Vecs   map[string]rl.Vector3
}

// Float returns the named float or fallback.
func (v Values) Float(name string, fallback float32) float32 {
	if f, ok := v.Floats[name]; ok {
		return f
	}
	return fallback
}

// Bool returns the named bool or fallback.
func (v Values) Bool(name string, fallback bool) bool {
	if b, ok := v.Bools[name]; ok {
		return b
	}
	return fallback
}

// Color returns the named color or fallback.
func (v Values) Color(name string, fallback rl.Color) rl.Color {
	if c, ok := v.Colors[name]; ok {
		return c
	}
	return fallback
}

// Vec3 returns the named vector or fallback.
func (v Values) Vec3(name string, fallback rl.Vector3) rl.Vector3 {
	if p, ok := v.Vecs[name]; ok {
		return p
	}
	return fallback
}

// Uniforms is the in-memory uniform store the controls write into.
type Uniforms struct {
	values   Values
	triggers map[string][]func()
	log      *slog.Logger
}

// NewUniforms returns an empty store.
func NewUniforms() *Uniforms {
	return &Uniforms{
		values: Values{
			Floats: make(map[string]float32),
			Bools:  make(map[string]bool),
			Colors: make(map[string]rl.Color),
			Vecs:   make(map[string]rl.Vector3),
		},
		triggers: make(map[string][]func()),
		log:      slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets where snapshot failures are reported. Nil discards them.
func (u *Uniforms) SetLogger(log *slog.Logger) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	u.log = log
}

func (u *Uniforms) SetFloat(target string, v float32)   { u.values.Floats[target] = v }
func (u *Uniforms) SetBool(target string, v bool)       { u.values.Bools[target] = v }
func (u *Uniforms) SetColor(target string, c rl.Color)  { u.values.Colors[target] = c }
func (u *Uniforms) SetVec3(target string, v rl.Vector3) { u.values.Vecs[target] = v }

// OnTrigger registers fn to run when a button bound to target is pressed.
func (u *Uniforms) OnTrigger(target string, fn func()) {
	u.triggers[target] = append(u.triggers[target], fn)
}

// Trigger runs the handlers registered for target.
func (u *Uniforms) Trigger(target string) {
	for _, fn := range u.triggers[target] {
		fn()
	}
}

// Snapshot returns a deep copy of the current values. Later writes do not affect it.
// A failed copy is logged and leaves the result with whatever was copied.
func (u *Uniforms) Snapshot() Values {
	var out Values
	if err := copier.CopyWithOption(&out, &u.values, copier.Option{DeepCopy: true}); err != nil {
		u.log.Warn("uniform snapshot incomplete", "err", err)
	}
	return out
}

// Router sends each target to the sink routed for it, and everything else to a fallback.
type Router struct {
	routes   map[string]Sink
	fallback Sink
}

// NewRouter returns a router that defaults to fallback.
func NewRouter(fallback Sink) *Router {
	return &Router{routes: make(map[string]Sink), fallback: fallback}
}

// Route sends the given targets to s instead of the fallback.
func (r *Router) Route(s Sink, targets ...string) {
	for _, t := range targets {
		r.routes[t] = s
	}
}

func (r *Router) sink(target string) Sink {
	if s, ok := r.routes[target]; ok {
		return s
	}
	return r.fallback
}

func (r *Router) SetFloat(target string, v float32)   { r.sink(target).SetFloat(target, v) }
func (r *Router) SetBool(target string, v bool)       { r.sink(target).SetBool(target, v) }
func (r *Router) SetColor(target string, c rl.Color)  { r.sink(target).SetColor(target, c) }
func (r *Router) SetVec3(target string, v rl.Vector3) { r.sink(target).SetVec3(target, v) }
func (r *Router) Trigger(target string)               { r.sink(target).Trigger(target) }

// Funcs adapts plain functions to a Sink. Nil fields ignore their values.
type Funcs struct {
	Float func(target string, v float32)
	Bool  func(target string, v bool)
	Color func(target string, c rl.Color)
	Vec3  func(target string, v rl.Vector3)
	Press func(target string)
}

// Sink returns f as a Sink.
func (f Funcs) Sink() Sink { return funcSink(f) }

type funcSink Funcs

func (f funcSink) SetFloat(target string, v float32) {
	if f.Float != nil {
		f.Float(target, v)
	}
}

func (f funcSink) SetBool(target string, v bool) {
	if f.Bool != nil {
		f.Bool(target, v)
	}
}

func (f funcSink) SetColor(target string, c rl.Color) {
	if f.Color != nil {
		f.Color(target, c)
	}
}

func (f funcSink) SetVec3(target string, v rl.Vector3) {
	if f.Vec3 != nil {
		f.Vec3(target, v)
	}
}

func (f funcSink) Trigger(target string) {
	if f.Press != nil {
		f.Press(target)
	}
}
