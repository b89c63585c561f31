package panzoom

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action  string  `yaml:"action" validate:"required,oneof=press move release tap drag wait screenshot"`
	Label   string  `yaml:"label,omitempty"`
	X       float32 `yaml:"x,omitempty"`
	Y       float32 `yaml:"y,omitempty"`
	FromX   float32 `yaml:"fromX,omitempty"`
	FromY   float32 `yaml:"fromY,omitempty"`
	ToX     float32 `yaml:"toX,omitempty"`
	ToY     float32 `yaml:"toY,omitempty"`
	Moves   int     `yaml:"moves,omitempty" validate:"gte=0"`
	Frames  int     `yaml:"frames,omitempty" validate:"gte=0"`
	Seconds float64 `yaml:"seconds,omitempty" validate:"gte=0"`
}

// validateScriptStep enforces rules spanning several fields: a wait must
// last at least one frame or a positive number of seconds.
func validateScriptStep(sl validator.StructLevel) {
	st := sl.Current().Interface().(scriptStep)
	if st.Action == "wait" && st.Frames == 0 && st.Seconds == 0 {
		sl.ReportError(st.Frames, "Frames", "frames", "wait_duration", "")
	}
}

// script is the top-level document. JSON documents parse as well, since
// JSON is a subset of YAML.
type script struct {
	Steps []scriptStep `yaml:"steps" validate:"required,min=1,dive"`
}

// ScriptRunner sequences injected gestures, waits and screenshots across
// frames. Attach it to a Surface with SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	waitUntil float64
	waiting   bool
	done      bool
}

// LoadScript parses and validates a YAML or JSON gesture script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	if err := validateStruct(sc); err != nil {
		return nil, fmt.Errorf("validate script: %w", err)
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has run and all injected events drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Surface.Update before
// input is processed.
func (r *ScriptRunner) step(s *Surface, now float64) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.waiting {
		if now < r.waitUntil {
			return
		}
		r.waiting = false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	Logger().Debugf("script step %d: %s", r.cursor, st.Action)

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "tap":
		s.InjectTap(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Moves)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		if st.Seconds > 0 {
			r.waiting = true
			r.waitUntil = now + st.Seconds
		}
	case "screenshot":
		s.Screenshot(st.Label)
	}
}
