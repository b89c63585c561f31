package panzoom

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// StateChange describes one interaction state transition.
type StateChange struct {
	From, To InteractionState
	// At is the clock reading that caused the transition.
	At float64
}

// StateObserver receives every state transition of a Recognizer, in order,
// on the goroutine that drives it.
type StateObserver interface {
	StateChanged(StateChange)
}

// Recognizer turns raw contact events and frame ticks into interaction
// states and applies them to a TransformState.
//
// A Recognizer tracks a single contact. It is not safe for concurrent use:
// events and ticks must be delivered from one goroutine, in arrival order.
type Recognizer struct {
	clock     Clock
	state     InteractionState
	transform TransformState

	cursor Vec2 // latest raw cursor position, pixels
	last   Vec2 // sample the next move delta is measured from

	observer StateObserver
}

// NewRecognizer returns a Recognizer in Idle with the initial transform.
// All timing is read from clock.
func NewRecognizer(clock Clock) *Recognizer {
	return &Recognizer{
		clock:     clock,
		state:     Idle{},
		transform: NewTransformState(),
	}
}

// State returns the current interaction state.
func (r *Recognizer) State() InteractionState { return r.state }

// Transform returns a copy of the current view transform.
func (r *Recognizer) Transform() TransformState { return r.transform }

// Cursor returns the latest raw cursor position in pixels.
func (r *Recognizer) Cursor() Vec2 { return r.cursor }

// SetObserver installs o to receive state changes. Pass nil to remove it.
func (r *Recognizer) SetObserver(o StateObserver) { r.observer = o }

// PointerDown handles a contact press at (x, y) pixels, stamped with the
// recognizer's clock. A second press while a contact is held is ignored but
// still re-arms delta tracking at the new position.
func (r *Recognizer) PointerDown(x, y float32) {
	r.down(x, y, r.clock.Now())
}

// PointerUp handles a contact release, stamped with the recognizer's clock.
func (r *Recognizer) PointerUp() {
	r.up(r.clock.Now())
}

// PointerMove handles a cursor or contact move to (x, y) pixels. Deltas are
// normalized by viewport.
func (r *Recognizer) PointerMove(x, y float32, viewport Size) {
	r.move(x, y, viewport, r.clock.Now())
}

// HandleEvent applies ev using its own timestamp.
func (r *Recognizer) HandleEvent(ev PointerEvent, viewport Size) {
	switch ev.Kind {
	case PointerDown:
		r.down(ev.X, ev.Y, ev.Timestamp)
	case PointerUp:
		r.up(ev.Timestamp)
	case PointerMove:
		r.move(ev.X, ev.Y, viewport, ev.Timestamp)
	}
}

// Tick advances the recognizer by one frame of dt seconds: a held press may
// start zooming in, active zooms integrate into the scale, and the
// normalized cursor and aspect ratio are refreshed from viewport.
func (r *Recognizer) Tick(dt float64, viewport Size) {
	now := r.clock.Now()
	r.setState(NextOnTick(r.state, now), now)

	switch r.state.(type) {
	case ZoomingIn:
		r.transform.zoom(dt)
	case ZoomingOut:
		r.transform.zoom(-dt)
	case Idle, PressIdle, Panning:
	default:
		panic(fmt.Sprintf("panzoom: unknown interaction state %T", r.state))
	}

	r.transform.refresh(r.cursor, viewport)
}

func (r *Recognizer) down(x, y float32, now float64) {
	r.cursor = Vec2{x, y}
	r.last = r.cursor
	r.setState(NextOnDown(r.state, now), now)
}

func (r *Recognizer) up(now float64) {
	r.setState(NextOnUp(r.state, now), now)
}

func (r *Recognizer) move(x, y float32, viewport Size, now float64) {
	r.cursor = Vec2{x, y}
	if r.cursor == r.last {
		return
	}
	if holding(r.state) && viewport.valid() {
		dx := (r.cursor.X - r.last.X) / viewport.Width
		dy := (r.cursor.Y - r.last.Y) / viewport.Height
		r.transform.pan(dx, dy)
		r.setState(NextOnMove(r.state, dx, dy), now)
	}
	r.last = r.cursor
}

func (r *Recognizer) setState(next InteractionState, now float64) {
	prev := r.state
	if next == prev {
		return
	}
	r.state = next

	log := Logger()
	log.WithFields(logrus.Fields{
		"from": prev.String(),
		"to":   next.String(),
		"at":   now,
	}).Debug("interaction state changed")
	switch next.(type) {
	case ZoomingIn:
		log.Infof("started zooming in at %.3f", now)
	case ZoomingOut:
		log.Infof("started zooming out at %.3f", now)
	}

	if r.observer != nil {
		r.observer.StateChanged(StateChange{From: prev, To: next, At: now})
	}
}
