// Package panzoom turns single-contact pointer and touch input into pan and
// zoom gestures for an interactive 2D view, and renders a Mandelbrot
// explorer with [Ebitengine].
//
// # Quick start
//
//	cfg := panzoom.DefaultRunConfig()
//	cfg.ShowHUD = true
//	s, err := panzoom.NewSurfaceFromConfig(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Fatal(panzoom.Run(s, cfg))
//
// [Surface] implements [ebiten.Game], so it can also be embedded in an
// existing game loop.
//
// # Gestures
//
// A [Recognizer] owns one [InteractionState] and a [TransformState]:
//
//   - drag: pans, proportional to the current scale
//   - press and hold still for more than [DoubleTapTimeout]: zoom in
//   - tap (shorter than [PreTapWindow]) then press again within
//     [DoubleTapTimeout]: zoom out while held
//   - release: always returns to Idle; dragging during a zoom turns it
//     into a pan
//
// Zooming is continuous: every frame the scale is multiplied (zoom in) or
// divided (zoom out) by [ZoomSpeed] raised to the frame delta.
//
// Time comes from an injected [Clock]. Use [ManualClock] in tests to drive
// exact timing:
//
//	clk := panzoom.NewManualClock(0)
//	r := panzoom.NewRecognizer(clk)
//	r.PointerDown(10, 10)
//	clk.Advance(1.1)
//	r.Tick(1.1, panzoom.Size{Width: 720, Height: 720}) // now ZoomingIn
//
// # Rendering contract
//
// [TransformState.MarshalBinary] produces the 32-byte uniform block
// (translation, cursor, scale, aspect ratio, padding) shared with shaders;
// [TransformState.KageUniforms] fills the equivalent Kage uniform map.
//
// # Logging
//
// panzoom is silent by default. Install a logrus logger with [SetLogger].
//
// [Ebitengine]: https://ebitengine.org
package panzoom
