// Scrolldemo runs the scroll core against the terminal renderer:
// drag the content or the scrollbars, use the arrow keys, throw and
// watch it coast.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"scrollkit/config"
	"scrollkit/content"
	"scrollkit/events"
	"scrollkit/geometry"
	"scrollkit/graph"
	"scrollkit/lifecycle"
	"scrollkit/logging"
	"scrollkit/renderer/tcell"
	"scrollkit/scrollable"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		fps        float64
	)
	cmd := &cobra.Command{
		Use:   "scrolldemo",
		Short: "Interactive demo of the scroll interaction core",
		Long: "Scrolldemo opens a scrollable viewport in the terminal.\n" +
			"Drag the content with the left mouse button, scroll with the\n" +
			"wheel or the arrow keys, and drag or click the scrollbars.\n" +
			"Ctrl+C quits.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("fps") {
				cfg.FPS = fps
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "scrolldemo.toml", "config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	cmd.Flags().Float64Var(&fps, "fps", 0, "animation ticks per second")
	return cmd
}

func run(cfg config.Config) error {
	if termenv.ColorProfile() == termenv.Ascii {
		fmt.Fprintln(os.Stderr, "warning: terminal reports no color support")
	}

	log, closeLog, err := logging.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	lines := sampleLines(cfg.ContentRect())
	box := content.Measure(lines)
	contentRect := cfg.ContentRect()
	if box.Width > contentRect.Width {
		contentRect.Width = box.Width
	}
	if box.Height > contentRect.Height {
		contentRect.Height = box.Height
	}

	accel := cfg.AccelerationSettings()
	keys := cfg.HotkeySettings()
	s, err := scrollable.New(
		scrollable.Settings{Frame: cfg.FrameVec(), Content: contentRect},
		scrollable.Styles{
			ID:           "demo",
			Position:     geometry.Vector2{X: cfg.Position.X, Y: cfg.Position.Y},
			FPS:          cfg.FPS,
			Acceleration: &accel,
			Hotkeys:      &keys,
			DragButtons:  cfg.Buttons(),
			Bars:         cfg.BarStyles(),
			Translate:    geometry.Vector2{X: 1, Y: 1},
			Children:     content.Nodes(lines, graph.Style{FG: 252, BG: 17}),
		},
		scrollable.Deps{Log: log},
	)
	if err != nil {
		return err
	}

	lc := lifecycle.New()
	r, err := tcell.New(lc, s.Mailbox(), log)
	if err != nil {
		return err
	}
	s.AttachDevice(r)

	done := s.Start()
	// Kick the first frame; after this every event redraws.
	s.Mailbox().Push(events.Tick{})

	<-done
	r.Stop()
	lc.Stop()
	log.Info().Msg("bye")
	return nil
}

// sampleLines fills the content box with numbered rulers so scrolling
// is visible on both axes.
func sampleLines(box geometry.Rect) []string {
	height := int(box.Height)
	width := int(box.Width)
	lines := make([]string, 0, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		fmt.Fprintf(&b, "%4d ", y)
		for x := b.Len(); x < width; x++ {
			if x%10 == 0 {
				b.WriteByte('|')
			} else if (x+y)%7 == 0 {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
