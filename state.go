package panzoom

import "fmt"

// InteractionState is the current interaction mode. The set of variants is
// closed: Idle, PressIdle, Panning, ZoomingIn and ZoomingOut are the only
// implementations, and every transition site switches over all of them.
type InteractionState interface {
	fmt.Stringer
	interactionState()
}

// Idle means no contact is held. When PreTapped is set, a recent tap at
// PreTappedAt armed the double-tap zoom-out window.
type Idle struct {
	PreTapped   bool
	PreTappedAt float64
}

// PressIdle means a contact is held without dragging and the hold-to-zoom
// delay has not yet elapsed.
type PressIdle struct {
	PressedDownAt float64
}

// Panning means a contact is held and dragging.
type Panning struct{}

// ZoomingIn means a contact was held still past DoubleTapTimeout; the scale
// shrinks every frame.
type ZoomingIn struct{}

// ZoomingOut means a contact was pressed shortly after a tap; the scale grows
// every frame.
type ZoomingOut struct{}

func (Idle) interactionState()       {}
func (PressIdle) interactionState()  {}
func (Panning) interactionState()    {}
func (ZoomingIn) interactionState()  {}
func (ZoomingOut) interactionState() {}

func (s Idle) String() string {
	if s.PreTapped {
		return fmt.Sprintf("Idle{pre_tapped_at: %g}", s.PreTappedAt)
	}
	return "Idle{pre_tapped_at: none}"
}

func (s PressIdle) String() string {
	return fmt.Sprintf("PressIdle{pressed_down_at: %g}", s.PressedDownAt)
}

func (Panning) String() string    { return "Panning" }
func (ZoomingIn) String() string  { return "ZoomingIn" }
func (ZoomingOut) String() string { return "ZoomingOut" }

// holding reports whether s has a contact held down.
func holding(s InteractionState) bool {
	switch s.(type) {
	case Idle:
		return false
	case PressIdle, Panning, ZoomingIn, ZoomingOut:
		return true
	default:
		panic(fmt.Sprintf("panzoom: unknown interaction state %T", s))
	}
}

// NextOnDown returns the state that follows a contact press at now.
// A press while a contact is already held leaves the state unchanged.
func NextOnDown(s InteractionState, now float64) InteractionState {
	switch s := s.(type) {
	case Idle:
		if s.PreTapped && now-s.PreTappedAt < DoubleTapTimeout {
			return ZoomingOut{}
		}
		return PressIdle{PressedDownAt: now}
	case PressIdle, Panning, ZoomingIn, ZoomingOut:
		return s
	default:
		panic(fmt.Sprintf("panzoom: unknown interaction state %T", s))
	}
}

// NextOnUp returns the state that follows a contact release at now. A short
// press arms a tap; releasing a pan or zoom never does.
func NextOnUp(s InteractionState, now float64) InteractionState {
	switch s := s.(type) {
	case Idle:
		return s
	case PressIdle:
		if now-s.PressedDownAt < PreTapWindow {
			return Idle{PreTapped: true, PreTappedAt: s.PressedDownAt}
		}
		return Idle{}
	case Panning, ZoomingIn, ZoomingOut:
		return Idle{}
	default:
		panic(fmt.Sprintf("panzoom: unknown interaction state %T", s))
	}
}

// NextOnTick returns the state after the frame tick at now. Only a held,
// stationary press changes: it becomes ZoomingIn once DoubleTapTimeout has
// strictly elapsed.
func NextOnTick(s InteractionState, now float64) InteractionState {
	switch s := s.(type) {
	case PressIdle:
		if now-s.PressedDownAt > DoubleTapTimeout {
			return ZoomingIn{}
		}
		return s
	case Idle, Panning, ZoomingIn, ZoomingOut:
		return s
	default:
		panic(fmt.Sprintf("panzoom: unknown interaction state %T", s))
	}
}

// NextOnMove returns the state after a move of (dx, dy) normalized units.
// Movement beyond WiggleTolerance on either axis while held starts a pan,
// cancelling any zoom in progress.
func NextOnMove(s InteractionState, dx, dy float32) InteractionState {
	switch s := s.(type) {
	case Idle:
		return s
	case PressIdle, Panning, ZoomingIn, ZoomingOut:
		if abs32(dx) >= WiggleTolerance || abs32(dy) >= WiggleTolerance {
			return Panning{}
		}
		return s
	default:
		panic(fmt.Sprintf("panzoom: unknown interaction state %T", s))
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
