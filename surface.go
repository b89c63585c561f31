package panzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SurfaceOptions configures a Surface. Zero values select defaults.
type SurfaceOptions struct {
	// Clock is the time source for gestures and frame deltas. Defaults to a
	// new SystemClock.
	Clock Clock
	// Source supplies real contact events. Defaults to an EbitenSource.
	Source PointerSource
	// FixedStep, when positive and Clock is a *ManualClock, advances the
	// clock by this many seconds at the start of every Update. Scripted runs
	// use it for frame-rate independent, reproducible timing.
	FixedStep float64
	// ShowHUD draws the stats panel and state banner.
	ShowHUD bool
	// ScreenshotDir receives screenshots. Defaults to "screenshots".
	ScreenshotDir string
	// ExitOnScriptEnd ends the game loop once an attached script is done.
	ExitOnScriptEnd bool
}

// Surface is an interactive Mandelbrot view. It implements ebiten.Game:
// Update dispatches input and ticks the Recognizer, Draw renders the
// fractal with the current TransformState.
type Surface struct {
	recognizer *Recognizer
	clock      Clock
	source     PointerSource
	fixedStep  float64

	viewport Size
	lastTick float64
	started  bool

	injectQueue     []syntheticPointerEvent
	runner          *ScriptRunner
	exitOnScriptEnd bool
	screenshotQueue []string
	screenshotDir   string

	observers []StateObserver
	hud       *hud

	events   []PointerEvent
	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions
}

// NewSurface creates a surface of the given initial size in pixels.
func NewSurface(width, height int, opts SurfaceOptions) *Surface {
	if opts.Clock == nil {
		opts.Clock = NewSystemClock()
	}
	if opts.Source == nil {
		opts.Source = NewEbitenSource()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = "screenshots"
	}
	s := &Surface{
		recognizer:      NewRecognizer(opts.Clock),
		clock:           opts.Clock,
		source:          opts.Source,
		fixedStep:       opts.FixedStep,
		viewport:        Size{Width: float32(width), Height: float32(height)},
		screenshotDir:   opts.ScreenshotDir,
		exitOnScriptEnd: opts.ExitOnScriptEnd,
		uniforms:        make(map[string]any, 5),
	}
	if opts.ShowHUD {
		s.hud = newHUD()
	}
	s.recognizer.SetObserver(s)
	return s
}

// Recognizer returns the gesture recognizer owned by the surface.
func (s *Surface) Recognizer() *Recognizer { return s.recognizer }

// Viewport returns the current viewport size in pixels.
func (s *Surface) Viewport() Size { return s.viewport }

// AddObserver registers o to receive state changes after the HUD.
func (s *Surface) AddObserver(o StateObserver) {
	s.observers = append(s.observers, o)
}

// SetScriptRunner attaches a script. Its step runs at the start of every
// Update, before input.
func (s *Surface) SetScriptRunner(r *ScriptRunner) {
	s.runner = r
}

// StateChanged fans a recognizer transition out to the HUD and observers.
func (s *Surface) StateChanged(c StateChange) {
	if s.hud != nil {
		s.hud.StateChanged(c)
	}
	for _, o := range s.observers {
		o.StateChanged(c)
	}
}

// Update runs one frame of the control flow: script, input, then the
// recognizer tick. Returns ebiten.Termination once an attached script is
// done and ExitOnScriptEnd was set.
func (s *Surface) Update() error {
	if mc, ok := s.clock.(*ManualClock); ok && s.fixedStep > 0 {
		mc.Advance(s.fixedStep)
	}
	now := s.clock.Now()
	dt := 0.0
	if s.started {
		dt = now - s.lastTick
	}
	s.lastTick = now
	s.started = true

	if s.runner != nil {
		s.runner.step(s, now)
	}

	if !s.processInjectedInput(now) {
		s.events = s.source.Poll(now, s.events[:0])
		for _, ev := range s.events {
			s.recognizer.HandleEvent(ev, s.viewport)
		}
	}

	s.recognizer.Tick(dt, s.viewport)

	if s.hud != nil {
		s.hud.update(dt)
	}

	if s.exitOnScriptEnd && s.runner != nil && s.runner.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the fractal, the optional HUD and any queued screenshots.
func (s *Surface) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	t := s.recognizer.Transform()
	t.KageUniforms(s.uniforms)
	s.uniforms["Resolution"] = []float32{float32(b.Dx()), float32(b.Dy())}
	s.shaderOp.Uniforms = s.uniforms
	screen.DrawRectShader(b.Dx(), b.Dy(), ensureMandelbrotShader(), &s.shaderOp)

	if s.hud != nil {
		s.hud.draw(screen, s.recognizer.State(), t)
	}
	s.flushScreenshots(screen)
}

// Layout tracks the outside size so the viewport follows window resizes.
func (s *Surface) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.viewport = Size{Width: float32(outsideWidth), Height: float32(outsideHeight)}
	return outsideWidth, outsideHeight
}
