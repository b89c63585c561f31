package panzoom

import "time"

// Clock reports monotonic seconds since an arbitrary fixed epoch. Now must
// never decrease between calls; every duration comparison in the Recognizer
// assumes it. A clock that goes backwards produces undefined transitions.
type Clock interface {
	Now() float64
}

// SystemClock measures wall time since it was created, using the monotonic
// reading carried by time.Time.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock whose epoch is the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the seconds elapsed since the clock was created.
func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock is a Clock that only moves when told to. Tests and scripted
// runs use it to drive exact time sequences.
type ManualClock struct {
	t float64
}

// NewManualClock returns a clock reading start.
func NewManualClock(start float64) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the current reading.
func (c *ManualClock) Now() float64 { return c.t }

// Set moves the clock to t. Values below the current reading are ignored so
// the clock stays monotonic.
func (c *ManualClock) Set(t float64) {
	if t > c.t {
		c.t = t
	}
}

// Advance moves the clock forward by dt seconds. Negative dt is ignored.
func (c *ManualClock) Advance(dt float64) {
	if dt > 0 {
		c.t += dt
	}
}
