package coro

import "fmt"

// State is the outcome of one resume: either the coroutine suspended at a
// yield point, carrying the yielded value, or its body returned, carrying the
// final result. Exactly one of the two holds.
type State[Y, R any] struct {
	yielded  Y
	result   R
	complete bool
}

// IsYield reports whether the coroutine suspended at a yield point.
func (s State[Y, R]) IsYield() bool {
	return !s.complete
}

// IsComplete reports whether the coroutine ran to completion.
func (s State[Y, R]) IsComplete() bool {
	return s.complete
}

// Yielded returns the yielded value. It reports false when the state is a
// completion, in which case the value is the zero value of Y.
func (s State[Y, R]) Yielded() (Y, bool) {
	return s.yielded, !s.complete
}

// Completed returns the final result. It reports false when the state is a
// suspension, in which case the value is the zero value of R.
func (s State[Y, R]) Completed() (R, bool) {
	return s.result, s.complete
}

// String formats the state as Yield(v) or Complete(r).
func (s State[Y, R]) String() string {
	if s.complete {
		return fmt.Sprintf("Complete(%v)", s.result)
	}
	return fmt.Sprintf("Yield(%v)", s.yielded)
}
