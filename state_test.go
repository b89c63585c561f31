package panzoom

import "testing"

var allStates = []InteractionState{
	Idle{},
	Idle{PreTapped: true, PreTappedAt: 2.5},
	PressIdle{PressedDownAt: 1},
	Panning{},
	ZoomingIn{},
	ZoomingOut{},
}

func TestStateStrings(t *testing.T) {
	tests := []struct {
		state InteractionState
		want  string
	}{
		{Idle{}, "Idle{pre_tapped_at: none}"},
		{Idle{PreTapped: true, PreTappedAt: 2.5}, "Idle{pre_tapped_at: 2.5}"},
		{Idle{PreTapped: true}, "Idle{pre_tapped_at: 0}"},
		{PressIdle{PressedDownAt: 1.25}, "PressIdle{pressed_down_at: 1.25}"},
		{Panning{}, "Panning"},
		{ZoomingIn{}, "ZoomingIn"},
		{ZoomingOut{}, "ZoomingOut"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestHolding(t *testing.T) {
	for _, s := range allStates {
		_, idle := s.(Idle)
		if holding(s) == idle {
			t.Errorf("holding(%v) = %v", s, holding(s))
		}
	}
}

// Every transition function is total over the variants.
func TestTransitionsTotal(t *testing.T) {
	for _, s := range allStates {
		for _, next := range []InteractionState{
			NextOnDown(s, 3),
			NextOnUp(s, 3),
			NextOnTick(s, 3),
			NextOnMove(s, 0.5, 0),
		} {
			if next == nil {
				t.Errorf("transition from %v returned nil", s)
			}
		}
	}
}

func TestNextOnDownHeldUnchanged(t *testing.T) {
	for _, s := range allStates[2:] {
		if got := NextOnDown(s, 10); got != s {
			t.Errorf("NextOnDown(%v) = %v, want unchanged", s, got)
		}
	}
}

func TestNextOnDownArmedBoundary(t *testing.T) {
	armed := Idle{PreTapped: true, PreTappedAt: 2}
	if got := NextOnDown(armed, 2.999); got != (ZoomingOut{}) {
		t.Errorf("inside window: got %v, want ZoomingOut", got)
	}
	if got := NextOnDown(armed, 3); got != (PressIdle{PressedDownAt: 3}) {
		t.Errorf("at window edge: got %v, want PressIdle{3}", got)
	}
}

func TestNextOnUpPreTapRecordsPressTime(t *testing.T) {
	got := NextOnUp(PressIdle{PressedDownAt: 7}, 7.1)
	want := Idle{PreTapped: true, PreTappedAt: 7}
	if got != want {
		t.Errorf("NextOnUp = %v, want %v", got, want)
	}
}

func TestNextOnTickOnlyPressIdleChanges(t *testing.T) {
	for _, s := range allStates {
		got := NextOnTick(s, 100)
		if _, ok := s.(PressIdle); ok {
			if got != (ZoomingIn{}) {
				t.Errorf("NextOnTick(%v) = %v, want ZoomingIn", s, got)
			}
			continue
		}
		if got != s {
			t.Errorf("NextOnTick(%v) = %v, want unchanged", s, got)
		}
	}
}

func TestNextOnMoveTolerance(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float32
		pan    bool
	}{
		{"zero", 0, 0, false},
		{"below both", 0.0009, -0.0009, false},
		{"x at tolerance", WiggleTolerance, 0, true},
		{"y at tolerance", 0, WiggleTolerance, true},
		{"negative x", -0.002, 0, true},
		{"negative y", 0, -0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOnMove(ZoomingIn{}, tt.dx, tt.dy)
			_, panning := got.(Panning)
			if panning != tt.pan {
				t.Errorf("NextOnMove(%v, %v) = %v, want panning=%v", tt.dx, tt.dy, got, tt.pan)
			}
		})
	}
}

func TestNextOnMoveIdleIgnored(t *testing.T) {
	for _, s := range allStates[:2] {
		if got := NextOnMove(s, 1, 1); got != s {
			t.Errorf("NextOnMove(%v) = %v, want unchanged", s, got)
		}
	}
}

type bogusState struct{}

func (bogusState) String() string    { return "bogus" }
func (bogusState) interactionState() {}

func TestUnknownStatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on unknown state")
		}
	}()
	NextOnTick(bogusState{}, 0)
}
