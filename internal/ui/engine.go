package ui

import (
	_ "embed"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	defaultFontSize   = 20
	defaultPanelWidth = 320
	rowGap            = 6
	// readoutWidth is the space kept right of a slider bar for its numeric readout.
	readoutWidth = 48
	// hueBarWidth is the space raygui's color picker uses right of the square for its hue bar.
	hueBarWidth = 30
)

//go:embed panel.css
var defaultCSS string

// Layout selects how the engine positions nodes.
type Layout int

const (
	// LayoutAbsolute positions each node from its CSS left/top/width/height (overlays).
	LayoutAbsolute Layout = iota
	// LayoutStack stacks nodes top to bottom in a right-hand side panel (control panel).
	LayoutStack
)

// Engine holds the current stylesheet and nodes, and draws them with raylib and raygui.
// Node order is document order: drawn first to last, and stacked top to bottom in LayoutStack.
// Resolved styles are cached and only recomputed when sheet or nodes change to avoid per-frame allocations.
// If font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default (pixel) font is used.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	panelStyle   ComputedStyle
	cacheValid   bool
	font         rl.Font
	layout       Layout
	panel        rl.Rectangle // panel bounds from the last stacked Draw
}

// New creates an empty engine that positions nodes absolutely (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{layout: LayoutAbsolute}
}

// NewPanel creates an empty engine that stacks nodes in a side panel, styled by the built-in sheet.
func NewPanel() *Engine {
	e := &Engine{layout: LayoutStack}
	if sheet, err := ParseCSS(defaultCSS); err == nil {
		e.sheet = sheet
	}
	return e
}

// DefaultStylesheet returns the built-in control panel stylesheet.
func DefaultStylesheet() *Stylesheet {
	sheet, _ := ParseCSS(defaultCSS)
	return sheet
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded or merged CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// LoadFont loads a TTF font from path for text rendering and for raygui widgets.
// If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	gui.SetFont(f)
	return nil
}

// Font returns the loaded font; its texture ID is 0 when none is loaded.
func (e *Engine) Font() rl.Font {
	return e.font
}

// ShareFont draws text with a font loaded by another engine. It is not unloaded by this engine.
func (e *Engine) ShareFont(f rl.Font) {
	e.font = f
}

// Append adds n at the end of the document.
func (e *Engine) Append(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

// Remove deletes n from the document. It reports false if n was not mounted.
func (e *Engine) Remove(n *Node) bool {
	for i, m := range e.nodes {
		if m == n {
			e.nodes = append(e.nodes[:i], e.nodes[i+1:]...)
			e.cacheValid = false
			return true
		}
	}
	return false
}

// Clear removes every node.
func (e *Engine) Clear() {
	e.nodes = nil
	e.cacheValid = false
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// Nodes returns the mounted nodes in document order.
func (e *Engine) Nodes() []*Node {
	out := make([]*Node, len(e.nodes))
	copy(out, e.nodes)
	return out
}

// Contains reports whether p lies inside the stacked panel drawn last frame.
// Absolute engines never capture the pointer.
func (e *Engine) Contains(p rl.Vector2) bool {
	if e.layout != LayoutStack {
		return false
	}
	return rl.CheckCollisionPointRec(p, e.panel)
}

// PanelWidth returns the stacked panel width from the stylesheet. Absolute engines report 0.
func (e *Engine) PanelWidth() int32 {
	if e.layout != LayoutStack {
		return 0
	}
	e.ensureStyles()
	if e.panelStyle.Width > 0 {
		return e.panelStyle.Width
	}
	return defaultPanelWidth
}

// resolveProps returns merged properties for a node (type, class and id matched; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		if !matches(rule.Selector, n) {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

func (e *Engine) ensureStyles() {
	if e.cacheValid {
		return
	}
	e.cachedStyles = make([]ComputedStyle, len(e.nodes))
	for i, n := range e.nodes {
		e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
		if e.layout == LayoutAbsolute {
			resolveBounds(n, e.cachedStyles[i])
		}
	}
	e.panelStyle = ResolveProps(e.resolveProps(&Node{Type: TypePanel, Class: TypePanel}))
	e.cacheValid = true
}

// resolveBounds sets n.Bounds from style (left, top, width, height). If style has zero size, Bounds is unchanged.
func resolveBounds(n *Node, style ComputedStyle) {
	if style.Width > 0 {
		n.Bounds.Width = float32(style.Width)
	}
	if style.Height > 0 {
		n.Bounds.Height = float32(style.Height)
	}
	n.Bounds.X = float32(style.Left)
	n.Bounds.Y = float32(style.Top)
}

// rowHeight is the stacked height of a node type when its style sets none.
func rowHeight(typ string) int32 {
	switch typ {
	case TypeHeader:
		return 26
	case TypeDivider:
		return 8
	case TypeSlider:
		return 40
	case TypeColorPicker:
		return 128
	}
	return 24
}

// Draw draws all nodes for this frame. Call after EndMode3D so the panel sits on top of the scene.
func (e *Engine) Draw() {
	e.ensureStyles()
	if e.layout == LayoutStack {
		e.drawStack()
		return
	}
	e.drawAbsolute()
}

func (e *Engine) drawStack() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	ps := e.panelStyle
	w := ps.Width
	if w <= 0 {
		w = defaultPanelWidth
	}
	x := screenW - w
	e.panel = rl.NewRectangle(float32(x), 0, float32(w), float32(screenH))
	if ps.Background.A > 0 {
		rl.DrawRectangle(x, 0, w, screenH, ps.Background)
	}
	pad := ps.Padding
	y := pad
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		h := style.Height
		if h <= 0 {
			h = rowHeight(n.Type)
		}
		n.Bounds = rl.NewRectangle(float32(x+pad), float32(y), float32(w-2*pad), float32(h))
		e.drawWidget(n, style)
		y += h + rowGap
	}
}

// drawWidget draws one stacked node and turns widget changes into input events.
func (e *Engine) drawWidget(n *Node, style ComputedStyle) {
	b := n.Bounds
	fs := style.FontSize
	switch n.Type {
	case TypeHeader, TypeLabel:
		e.drawText(n.Text, int32(b.X), int32(b.Y), fs, style.Color)
	case TypeDivider:
		mid := int32(b.Y + b.Height/2)
		rl.DrawLine(int32(b.X), mid, int32(b.X+b.Width), mid, style.Color)
	case TypeSlider:
		e.drawText(n.Text, int32(b.X), int32(b.Y), fs, style.Color)
		bar := rl.NewRectangle(b.X, b.Y+float32(fs)+2, b.Width-readoutWidth, b.Height-float32(fs)-2)
		v := gui.Slider(bar, "", n.Readout, n.Value, 0, SliderSteps)
		if v != n.Value {
			n.Emit(Input{Value: v})
		}
	case TypeCheckbox:
		box := rl.NewRectangle(b.X, b.Y+2, b.Height-4, b.Height-4)
		checked := gui.CheckBox(box, n.Text, n.Checked)
		if checked != n.Checked {
			n.Emit(Input{Checked: checked})
		}
	case TypeButton:
		if gui.Button(b, n.Text) {
			n.Emit(Input{})
		}
	case TypeColorPicker:
		e.drawText(n.Text, int32(b.X), int32(b.Y), fs, style.Color)
		top := float32(fs) + 4
		side := b.Height - top
		if side > b.Width-hueBarWidth {
			side = b.Width - hueBarWidth
		}
		c := gui.ColorPicker(rl.NewRectangle(b.X, b.Y+top, side, side), "", n.Color)
		if c != n.Color {
			n.Emit(Input{Color: c})
		}
	}
}

func (e *Engine) drawAbsolute() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		w := int32(n.Bounds.Width)
		h := int32(n.Bounds.Height)
		x := int32(n.Bounds.X)
		y := int32(n.Bounds.Y)
		if style.LeftPct >= 0 {
			x = (screenW - w) * style.LeftPct / 100
		}
		if style.TopPct >= 0 {
			y = (screenH - h) * style.TopPct / 100
		}

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		// Border (1px)
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			e.drawText(n.Text, x+style.Padding, y+style.Padding, style.FontSize, style.Color)
		}
	}
}

func (e *Engine) drawText(text string, x, y, size int32, c rl.Color) {
	if text == "" {
		return
	}
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
		return
	}
	rl.DrawText(text, x, y, size, c)
}

// ApplyTheme sets a dark raygui theme that matches the panel background.
// Call once after the window exists.
func ApplyTheme() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(rl.NewColor(30, 30, 35, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(45, 45, 50, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(60, 60, 70, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(rl.NewColor(70, 80, 90, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(200, 200, 200, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(80, 80, 90, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(100, 100, 120, 255)))
}
