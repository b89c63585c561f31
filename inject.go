package panzoom

// syntheticPointerEvent is a single injected contact event in screen pixels.
// It is stamped with the clock when consumed, not when queued.
type syntheticPointerEvent struct {
	kind PointerKind
	x, y float32
}

// InjectPress queues a contact press at the given screen coordinates. Queued
// events are consumed one per frame, in order, in place of real input.
func (s *Surface) InjectPress(x, y float32) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{kind: PointerDown, x: x, y: y})
}

// InjectMove queues a move to the given screen coordinates.
func (s *Surface) InjectMove(x, y float32) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{kind: PointerMove, x: x, y: y})
}

// InjectRelease queues a contact release. The position is informational;
// a release never moves the cursor.
func (s *Surface) InjectRelease(x, y float32) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{kind: PointerUp, x: x, y: y})
}

// InjectTap queues a press followed by a release at the same point. At
// normal frame rates the pair is short enough to arm a double tap.
func (s *Surface) InjectTap(x, y float32) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), moves interpolated moves
// ending exactly at (toX, toY), and a release there. The sequence consumes
// moves+2 frames. Minimum moves is 1.
func (s *Surface) InjectDrag(fromX, fromY, toX, toY float32, moves int) {
	if moves < 1 {
		moves = 1
	}
	s.InjectPress(fromX, fromY)
	for i := 1; i <= moves; i++ {
		t := float32(i) / float32(moves)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput pops one queued event and feeds it to the recognizer.
// Returns true if an event was consumed so real input is skipped this frame.
func (s *Surface) processInjectedInput(now float64) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	Logger().Debugf("injected %s at (%g, %g)", evt.kind, evt.x, evt.y)
	s.recognizer.HandleEvent(PointerEvent{Kind: evt.kind, X: evt.x, Y: evt.y, Timestamp: now}, s.viewport)
	return true
}
