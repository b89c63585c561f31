package panzoom

// Gesture timing and movement constants. They are fixed at build time.
const (
	// PreTapWindow is the longest press, in seconds, that still counts as a tap.
	PreTapWindow = 0.3
	// DoubleTapTimeout is the longest gap, in seconds, between an armed tap and
	// the next press for that press to start a zoom-out. The same delay is the
	// hold time before a stationary press starts zooming in.
	DoubleTapTimeout = 1.0
	// WiggleTolerance is the per-axis normalized movement that separates a
	// drag from input jitter.
	WiggleTolerance = 0.001
	// ZoomSpeed is the exponential base of the per-second scale change.
	ZoomSpeed = 0.5
	// DefaultScale is the scale a new TransformState starts with.
	DefaultScale = 4.0
	// MinScale and MaxScale bound continuous zooming. They stay well inside
	// the normal float32 range so a long hold never reaches 0 or +Inf.
	MinScale = 1e-30
	MaxScale = 1e30
)

// Vec2 is a 2D vector in pixel or normalized coordinates.
type Vec2 struct {
	X, Y float32
}

// Size is a viewport size in pixels.
type Size struct {
	Width, Height float32
}

// valid reports whether both dimensions are positive. Degenerate sizes occur
// while a window is minimized.
func (s Size) valid() bool {
	return s.Width > 0 && s.Height > 0
}

// PointerKind identifies a raw contact event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota // contact started (mouse press, touch start)
	PointerUp                      // contact ended (mouse release, touch end)
	PointerMove                    // contact or hover moved
)

// String returns the lower-case name of the kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerMove:
		return "move"
	default:
		return "unknown"
	}
}

// PointerEvent is a single raw contact event in viewport pixels. Timestamp is
// in seconds on the same clock the Recognizer was built with.
type PointerEvent struct {
	Kind      PointerKind
	X, Y      float32
	Timestamp float64
}
