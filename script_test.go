package panzoom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoadScript(t *testing.T, src string) *ScriptRunner {
	t.Helper()
	r, err := LoadScript([]byte(src))
	require.NoError(t, err)
	return r
}

func TestLoadScriptYAML(t *testing.T) {
	r := mustLoadScript(t, `
steps:
  - action: drag
    fromX: 10
    fromY: 20
    toX: 30
    toY: 40
    moves: 5
  - action: wait
    seconds: 1.5
  - action: screenshot
    label: after drag
`)
	require.Len(t, r.steps, 3)
	assert.Equal(t, scriptStep{Action: "drag", FromX: 10, FromY: 20, ToX: 30, ToY: 40, Moves: 5}, r.steps[0])
	assert.Equal(t, 1.5, r.steps[1].Seconds)
	assert.Equal(t, "after drag", r.steps[2].Label)
}

func TestLoadScriptJSON(t *testing.T) {
	r := mustLoadScript(t, `{"steps": [{"action": "tap", "x": 5, "y": 6}, {"action": "wait", "frames": 3}]}`)
	require.Len(t, r.steps, 2)
	assert.Equal(t, float32(5), r.steps[0].X)
	assert.Equal(t, 3, r.steps[1].Frames)
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"malformed", "steps: [", "parse script"},
		{"empty", "steps: []", "no steps"},
		{"missing steps", "title: nothing", "no steps"},
		{"unknown action", "steps:\n  - action: pinch\n", "validate script"},
		{"missing action", "steps:\n  - x: 1\n", "validate script"},
		{"negative frames", "steps:\n  - action: wait\n    frames: -1\n", "validate script"},
		{"negative seconds", "steps:\n  - action: wait\n    seconds: -0.5\n", "validate script"},
		{"wait without duration", "steps:\n  - action: wait\n", "wait_duration"},
		{"wait of zero frames", "steps:\n  - action: tap\n  - action: wait\n    frames: 0\n", "wait_duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.src))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestScriptWaitFrames(t *testing.T) {
	s := newTestSurface(nil)
	s.SetScriptRunner(mustLoadScript(t, `
steps:
  - action: wait
    frames: 3
  - action: press
    x: 50
    y: 50
`))

	// Frames 1-3 wait; frame 4 queues and consumes the press.
	runFrames(t, s, 3)
	if _, ok := s.recognizer.State().(Idle); !ok {
		t.Fatalf("State = %v after wait, want Idle", s.recognizer.State())
	}
	runFrames(t, s, 1)
	if _, ok := s.recognizer.State().(PressIdle); !ok {
		t.Errorf("State = %v, want PressIdle", s.recognizer.State())
	}
}

func TestScriptWaitSecondsHoldsToZoom(t *testing.T) {
	s := newTestSurface(nil)
	runner := mustLoadScript(t, `
steps:
  - action: press
    x: 300
    y: 200
  - action: wait
    seconds: 1.2
  - action: release
`)
	s.SetScriptRunner(runner)

	var sawZoom bool
	for frame := 0; frame < 200 && !runner.Done(); frame++ {
		runFrames(t, s, 1)
		if s.recognizer.State() == (ZoomingIn{}) {
			sawZoom = true
		}
	}
	if !runner.Done() {
		t.Fatal("script did not finish")
	}
	if !sawZoom {
		t.Error("hold never reached ZoomingIn")
	}
	if s.recognizer.State() != (Idle{}) {
		t.Errorf("State = %v, want Idle{}", s.recognizer.State())
	}
	if s.recognizer.Transform().Scale >= DefaultScale {
		t.Errorf("Scale = %v, want zoomed in", s.recognizer.Transform().Scale)
	}
}

func TestScriptScreenshotQueued(t *testing.T) {
	s := newTestSurface(nil)
	s.SetScriptRunner(mustLoadScript(t, "steps:\n  - action: screenshot\n    label: start\n"))
	runFrames(t, s, 1)
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "start" {
		t.Errorf("screenshotQueue = %v, want [start]", s.screenshotQueue)
	}
}

func TestScriptDoneAfterDrain(t *testing.T) {
	s := newTestSurface(nil)
	runner := mustLoadScript(t, "steps:\n  - action: drag\n    toX: 100\n    moves: 2\n")
	s.SetScriptRunner(runner)

	// Drag takes four frames to drain; done is set on the next step.
	runFrames(t, s, 4)
	if runner.Done() {
		t.Fatal("Done before the drag drained")
	}
	runFrames(t, s, 1)
	if !runner.Done() {
		t.Error("Done = false after the drag drained")
	}
}
