// Package config loads the demo's TOML configuration and maps it onto
// component settings.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"scrollkit"
	"scrollkit/events"
	"scrollkit/geometry"
	"scrollkit/hotkeys"
	"scrollkit/physics"
	"scrollkit/scrollbar"
)

type Config struct {
	Frame        Size         `toml:"frame"`
	Content      Box          `toml:"content"`
	Position     Point        `toml:"position"`
	FPS          float64      `toml:"fps"`
	LogLevel     string       `toml:"log_level"`
	LogFile      string       `toml:"log_file"`
	DragButtons  []string     `toml:"drag_buttons"`
	Acceleration Acceleration `toml:"acceleration"`
	Hotkeys      Hotkeys      `toml:"hotkeys"`
	Bars         Bars         `toml:"bars"`
}

type Size struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Point struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

type Box struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Acceleration struct {
	Acceleration    float64 `toml:"acceleration"`
	Mass            float64 `toml:"mass"`
	CounterPressure float64 `toml:"counter_pressure"`
}

type Hotkeys struct {
	Up    string `toml:"up"`
	Down  string `toml:"down"`
	Left  string `toml:"left"`
	Right string `toml:"right"`
}

type Bars struct {
	Horizontal bool    `toml:"horizontal"`
	Vertical   bool    `toml:"vertical"`
	Buttons    bool    `toml:"buttons"`
	Thickness  float64 `toml:"thickness"`
	Radius     float64 `toml:"radius"`
}

// Default is a fully working configuration: large content behind a
// small frame, both bars on, hotkeys on the arrows.
func Default() Config {
	return Config{
		Frame:    Size{Width: 60, Height: 20},
		Content:  Box{Width: 200, Height: 120},
		FPS:      30,
		LogLevel: "info",
		LogFile:  "scrolldemo.log",
		Hotkeys:  Hotkeys{Up: "up", Down: "down", Left: "left", Right: "right"},
		Bars:     Bars{Horizontal: true, Vertical: true, Buttons: true, Thickness: 1, Radius: 0},
	}
}

// Load reads a TOML file over the defaults. A missing path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config: %s: unknown key %q: %w", path, undecoded[0].String(), scrollkit.ErrInvalidInput)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		return fmt.Errorf("config: frame %gx%g: %w", c.Frame.Width, c.Frame.Height, scrollkit.ErrInvalidInput)
	}
	if c.Content.Width <= 0 || c.Content.Height <= 0 {
		return fmt.Errorf("config: content %gx%g: %w", c.Content.Width, c.Content.Height, scrollkit.ErrInvalidInput)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps %g: %w", c.FPS, scrollkit.ErrInvalidInput)
	}
	if _, err := c.buttons(); err != nil {
		return err
	}
	return nil
}

func (c Config) buttons() ([]events.Button, error) {
	buttons := make([]events.Button, 0, len(c.DragButtons))
	for _, name := range c.DragButtons {
		switch name {
		case "left":
			buttons = append(buttons, events.ButtonLeft)
		case "middle":
			buttons = append(buttons, events.ButtonMiddle)
		case "right":
			buttons = append(buttons, events.ButtonRight)
		default:
			return nil, fmt.Errorf("config: drag button %q: %w", name, scrollkit.ErrInvalidInput)
		}
	}
	return buttons, nil
}

// FrameVec returns the frame size as a vector.
func (c Config) FrameVec() geometry.Vector2 {
	return geometry.Vector2{X: c.Frame.Width, Y: c.Frame.Height}
}

// ContentRect returns the content box as a rectangle.
func (c Config) ContentRect() geometry.Rect {
	return geometry.Rect{X: c.Content.X, Y: c.Content.Y, Width: c.Content.Width, Height: c.Content.Height}
}

// AccelerationSettings maps onto the physics settings; zero fields
// stay zero and take the physics defaults.
func (c Config) AccelerationSettings() physics.Settings {
	return physics.Settings{
		Acceleration:    c.Acceleration.Acceleration,
		Mass:            c.Acceleration.Mass,
		CounterPressure: c.Acceleration.CounterPressure,
	}
}

func (c Config) HotkeySettings() hotkeys.Settings {
	return hotkeys.Settings{Up: c.Hotkeys.Up, Down: c.Hotkeys.Down, Left: c.Hotkeys.Left, Right: c.Hotkeys.Right}
}

// BarStyles returns nil when no bar is enabled.
func (c Config) BarStyles() *scrollbar.PairStyles {
	if !c.Bars.Horizontal && !c.Bars.Vertical {
		return nil
	}
	bar := scrollbar.DefaultStyles()
	bar.Buttons = c.Bars.Buttons
	bar.Radius = c.Bars.Radius
	return &scrollbar.PairStyles{
		Horizontal: c.Bars.Horizontal,
		Vertical:   c.Bars.Vertical,
		Thickness:  c.Bars.Thickness,
		Bar:        bar,
	}
}

// Buttons converts the configured drag button names. Validate has
// already rejected unknown names by the time callers use this.
func (c Config) Buttons() []events.Button {
	buttons, _ := c.buttons()
	return buttons
}
