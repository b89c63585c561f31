// Mandelbrot is an interactive fractal explorer driven by touch and mouse
// gestures: drag to pan, hold still to zoom in, tap then hold to zoom out.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom"
)

type options struct {
	configFile string
	verbose    bool
	title      string
	width      int
	height     int
	fullscreen bool
	hud        bool
	script     string
	shotDir    string
	determ     bool
	exitAfter  bool
}

func main() {
	logrus.SetOutput(os.Stderr)
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Explore the Mandelbrot set with pan and zoom gestures",
		Long: `Opens a window rendering the Mandelbrot set.

Drag to pan. Press and hold still for a second to zoom in. Tap, then press
and hold again within a second to zoom out. Release to stop.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			panzoom.SetLogger(logrus.StandardLogger())

			cfg, err := resolveConfig(cmd, o)
			if err != nil {
				return err
			}
			s, err := panzoom.NewSurfaceFromConfig(cfg)
			if err != nil {
				return err
			}
			return panzoom.Run(s, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.configFile, "config", "c", "", "YAML config file")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Log every gesture state change")
	f.StringVar(&o.title, "title", "", "Window title")
	f.IntVar(&o.width, "width", 0, "Initial window width in pixels")
	f.IntVar(&o.height, "height", 0, "Initial window height in pixels")
	f.BoolVar(&o.fullscreen, "fullscreen", false, "Start fullscreen")
	f.BoolVar(&o.hud, "hud", false, "Show the stats panel and gesture banner")
	f.StringVar(&o.script, "script", "", "Gesture script (YAML or JSON) to play on start")
	f.StringVar(&o.shotDir, "screenshot-dir", "", "Directory for script screenshots")
	f.BoolVar(&o.determ, "deterministic", false, "Advance time in fixed frame steps")
	f.BoolVar(&o.exitAfter, "exit-after-script", false, "Close the window when the script finishes")
	return cmd
}

// resolveConfig loads the config file, if any, and applies flags the user
// set explicitly on top of it.
func resolveConfig(cmd *cobra.Command, o options) (panzoom.RunConfig, error) {
	cfg := panzoom.DefaultRunConfig()
	if o.configFile != "" {
		var err error
		if cfg, err = panzoom.LoadRunConfig(o.configFile); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("title") {
		cfg.Title = o.title
	}
	if f.Changed("width") {
		cfg.Width = o.width
	}
	if f.Changed("height") {
		cfg.Height = o.height
	}
	if f.Changed("fullscreen") {
		cfg.Fullscreen = o.fullscreen
	}
	if f.Changed("hud") {
		cfg.ShowHUD = o.hud
	}
	if f.Changed("script") {
		cfg.Script = o.script
	}
	if f.Changed("screenshot-dir") {
		cfg.ScreenshotDir = o.shotDir
	}
	if f.Changed("deterministic") {
		cfg.Deterministic = o.determ
	}
	if f.Changed("exit-after-script") {
		cfg.ExitOnScriptEnd = o.exitAfter
	}
	return cfg, cfg.Validate()
}
