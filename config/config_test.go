package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"scrollkit"
	"scrollkit/events"
	"scrollkit/geometry"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Frame != Default().Frame {
		t.Errorf("missing file should keep defaults, frame = %+v", cfg.Frame)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	data := `
fps = 60
drag_buttons = ["left", "middle"]

[frame]
width = 80
height = 24

[acceleration]
mass = 2.5

[bars]
horizontal = false
vertical = true
thickness = 2
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FPS != 60 {
		t.Errorf("fps = %v", cfg.FPS)
	}
	if cfg.FrameVec() != (geometry.Vector2{X: 80, Y: 24}) {
		t.Errorf("frame = %v", cfg.FrameVec())
	}
	if got := cfg.AccelerationSettings(); got.Mass != 2.5 || got.Acceleration != 0 {
		t.Errorf("acceleration = %+v", got)
	}
	if got := cfg.Buttons(); len(got) != 2 || got[1] != events.ButtonMiddle {
		t.Errorf("buttons = %v", got)
	}
	styles := cfg.BarStyles()
	if styles == nil || styles.Horizontal || !styles.Vertical || styles.Thickness != 2 {
		t.Errorf("bar styles = %+v", styles)
	}
	// Hotkeys keep their defaults when the file does not mention them.
	if got := cfg.HotkeySettings(); got.Up != "up" {
		t.Errorf("hotkeys = %+v", got)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	if err := os.WriteFile(path, []byte("frames = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, scrollkit.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		tweak func(*Config)
	}{
		{"zero frame", func(c *Config) { c.Frame.Width = 0 }},
		{"negative content", func(c *Config) { c.Content.Height = -1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"bad drag button", func(c *Config) { c.DragButtons = []string{"fourth"} }},
	}
	for _, test := range tests {
		cfg := Default()
		test.tweak(&cfg)
		if err := cfg.Validate(); !errors.Is(err, scrollkit.ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", test.name, err)
		}
	}
}

func TestBarStylesNilWhenDisabled(t *testing.T) {
	cfg := Default()
	cfg.Bars.Horizontal = false
	cfg.Bars.Vertical = false
	if cfg.BarStyles() != nil {
		t.Error("no bars requested should yield nil styles")
	}
}
