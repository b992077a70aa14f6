// Package handoff provides the single-value exchange cell that a coroutine
// and its driver use to pass values across suspension points.
package handoff

const (
	holdsNone = iota
	holdsResume
	holdsYield
)

// Slot is a one-value cell shared by the two sides of a coroutine: the driver
// deposits resume values of type C, the body deposits yield values of type Y,
// and each side takes what the other deposited. The slot holds at most one
// value at a time; under the resume/yield protocol every put is followed by
// exactly one take before the next put.
//
// A Slot must not be accessed from both sides at once. The coroutine's
// control transfer protocol guarantees that only one side runs at any moment,
// which is the only synchronization a Slot gets.
//
// The zero value is an empty slot ready for use.
type Slot[Y, C any] struct {
	state  int
	yield  Y
	resume C
}

// PutResume deposits the value carried by a resume. It panics if the slot is
// occupied, which means a previous value was deposited and never consumed.
func (s *Slot[Y, C]) PutResume(v C) {
	if s.state != holdsNone {
		panic("resume value deposited in an occupied slot")
	}
	s.state = holdsResume
	s.resume = v
}

// TakeResume removes and returns a deposited resume value. It reports false
// if the slot does not hold one, and leaves the slot untouched in that case.
func (s *Slot[Y, C]) TakeResume() (C, bool) {
	var zero C
	if s.state != holdsResume {
		return zero, false
	}
	v := s.resume
	s.resume = zero
	s.state = holdsNone
	return v, true
}

// PutYield deposits the value carried by a yield. It panics if the slot is
// occupied.
func (s *Slot[Y, C]) PutYield(v Y) {
	if s.state != holdsNone {
		panic("yield value deposited in an occupied slot")
	}
	s.state = holdsYield
	s.yield = v
}

// TakeYield removes and returns a deposited yield value. It reports false if
// the slot does not hold one.
func (s *Slot[Y, C]) TakeYield() (Y, bool) {
	var zero Y
	if s.state != holdsYield {
		return zero, false
	}
	v := s.yield
	s.yield = zero
	s.state = holdsNone
	return v, true
}

// Empty reports whether the slot holds no value.
func (s *Slot[Y, C]) Empty() bool {
	return s.state == holdsNone
}
