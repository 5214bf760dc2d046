package viewstate

import "math"

// Recognizer phases. The machine only ever moves forward within one
// touch; End resets it.
type swipePhase int

const (
	phaseIdle swipePhase = iota
	phaseMeasuring
	phaseHorizontal
	phaseVertical
	phaseCommitted
)

// SwipeDirection is the outcome of a committed horizontal swipe.
type SwipeDirection int

const (
	SwipeNone  SwipeDirection = 0
	SwipeLeft  SwipeDirection = -1
	SwipeRight SwipeDirection = 1
)

const (
	// axisLockDistance is how far a touch travels before the gesture
	// locks to one axis.
	axisLockDistance = 10.0
	// commitDistance is the horizontal travel that commits a page
	// change.
	commitDistance = 80.0
)

// SwipeRecognizer is the subpage pager's gesture machine: Idle →
// MeasuringAxis → Horizontal | Vertical → Committed. A vertical lock
// hands the gesture to the scroller; a touch starting inside a
// horizontally scrollable ancestor never starts the machine at all.
type SwipeRecognizer struct {
	phase     swipePhase
	startX    float64
	startY    float64
	direction SwipeDirection
}

// Begin starts tracking a touch. insideScrollable reports whether the
// touch landed inside a horizontally scrollable ancestor; that scan
// happens once, here, never during the move.
func (r *SwipeRecognizer) Begin(x, y float64, insideScrollable bool) {
	if insideScrollable {
		r.phase = phaseIdle
		return
	}
	r.phase = phaseMeasuring
	r.startX = x
	r.startY = y
	r.direction = SwipeNone
}

// Move feeds a touch position. Once travel exceeds the lock distance
// the gesture binds to the dominant axis; horizontal gestures commit
// after the commit distance and stay committed.
func (r *SwipeRecognizer) Move(x, y float64) {
	dx := x - r.startX
	dy := y - r.startY

	switch r.phase {
	case phaseMeasuring:
		if math.Abs(dx) < axisLockDistance && math.Abs(dy) < axisLockDistance {
			return
		}
		if math.Abs(dx) >= math.Abs(dy) {
			r.phase = phaseHorizontal
		} else {
			r.phase = phaseVertical
		}
		r.Move(x, y)
	case phaseHorizontal:
		if math.Abs(dx) < commitDistance {
			return
		}
		r.phase = phaseCommitted
		if dx < 0 {
			r.direction = SwipeLeft
		} else {
			r.direction = SwipeRight
		}
	}
}

// End finishes the touch and returns the committed direction, SwipeNone
// when the gesture never committed. The machine resets either way.
func (r *SwipeRecognizer) End() SwipeDirection {
	direction := SwipeNone
	if r.phase == phaseCommitted {
		direction = r.direction
	}
	r.phase = phaseIdle
	r.direction = SwipeNone
	return direction
}

// Tracking reports whether the machine is following a touch.
func (r *SwipeRecognizer) Tracking() bool {
	return r.phase != phaseIdle
}

// Horizontal reports whether the gesture locked to the pager's axis.
func (r *SwipeRecognizer) Horizontal() bool {
	return r.phase == phaseHorizontal || r.phase == phaseCommitted
}
