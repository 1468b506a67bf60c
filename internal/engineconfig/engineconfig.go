package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"scene-lab/internal/env"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.yaml"

// ObjectDef describes one world sphere placed at startup.
type ObjectDef struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Radius   float32    `yaml:"radius"`
	Color    string     `yaml:"color"`
}

// Window holds the window size, title and frame cap.
type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

// EnginePrefs holds engine preferences. UI state (slider positions etc.) is not persisted.
type EnginePrefs struct {
	Window        Window      `yaml:"window"`
	ShowFPS       bool        `yaml:"show_fps"`
	GridVisible   bool        `yaml:"grid_visible"`
	CategoryOrder string      `yaml:"category_order"`
	Descriptors   string      `yaml:"descriptors,omitempty"`
	PanelCSS      string      `yaml:"panel_css,omitempty"`
	Font          string      `yaml:"font,omitempty"`
	LogLevel      string      `yaml:"log_level"`
	Objects       []ObjectDef `yaml:"objects"`
}

// DefaultObjects is the starting layout: three spheres in a row.
func DefaultObjects() []ObjectDef {
	return []ObjectDef{
		{Name: "left", Position: [3]float32{-2.5, 1, 0}, Radius: 0.75, Color: "#d65f4f"},
		{Name: "center", Position: [3]float32{0, 1, 0}, Radius: 0.75, Color: "#4f8fd6"},
		{Name: "right", Position: [3]float32{2.5, 1, 0}, Radius: 0.75, Color: "#6fbf5a"},
	}
}

// Default returns default engine preferences (FPS overlay off, grid on, numeric category order).
func Default() EnginePrefs {
	return EnginePrefs{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "scene-lab",
			TargetFPS: 60,
		},
		ShowFPS:       false,
		GridVisible:   true,
		CategoryOrder: "numeric",
		LogLevel:      "info",
		Objects:       DefaultObjects(),
	}
}

// Load reads engine preferences from config/engine.yaml. A missing file returns Default()
// and no error, and no file is created. An unreadable or invalid file returns Default()
// together with the error. Fields absent from the file keep their defaults.
func Load() (EnginePrefs, error) {
	return LoadFile(EngineConfigPath)
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("engineconfig: %w", err)
	}
	p := Default()
	p.Objects = nil
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: parse %s: %w", path, err)
	}
	p.normalize()
	return p, nil
}

// normalize fills zero values a partial file leaves behind.
func (p *EnginePrefs) normalize() {
	d := Default()
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		p.Window.Width, p.Window.Height = d.Window.Width, d.Window.Height
	}
	if p.Window.Title == "" {
		p.Window.Title = d.Window.Title
	}
	if p.Window.TargetFPS <= 0 {
		p.Window.TargetFPS = d.Window.TargetFPS
	}
	if len(p.Objects) == 0 {
		p.Objects = d.Objects
	}
	for i := range p.Objects {
		if p.Objects[i].Radius <= 0 {
			p.Objects[i].Radius = 0.5
		}
		if p.Objects[i].Name == "" {
			p.Objects[i].Name = fmt.Sprintf("object-%d", i)
		}
	}
}

// ApplyEnv overrides fields from SCENE_LAB_* environment variables (see env.Load):
// LOG_LEVEL, CATEGORY_ORDER, DESCRIPTORS, PANEL_CSS and FONT.
func (p *EnginePrefs) ApplyEnv() {
	for name, field := range map[string]*string{
		"LOG_LEVEL":      &p.LogLevel,
		"CATEGORY_ORDER": &p.CategoryOrder,
		"DESCRIPTORS":    &p.Descriptors,
		"PANEL_CSS":      &p.PanelCSS,
		"FONT":           &p.Font,
	} {
		if v, ok := env.Lookup(name); ok {
			*field = v
		}
	}
}

// Save writes engine preferences to config/engine.yaml, creating the config directory if needed.
func Save(p EnginePrefs) error {
	return SaveFile(EngineConfigPath, p)
}

// SaveFile is Save for an explicit path.
func SaveFile(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode engine config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
