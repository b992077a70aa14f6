// Package coro implements symmetric value-passing coroutines: computations
// that pause at points chosen by their own body, receive a value from the
// caller on every resume, and eventually produce a final result.
//
// A coroutine is created with New from a body function. The body receives a
// Handle, whose Yield method is its only way to suspend: Yield hands a value
// out to the caller and returns the value supplied to the next ResumeWith.
// The caller observes each step as a State, either a yielded value or the
// body's final result:
//
//	c := coro.New(func(h *coro.Handle[string, int], n int) int {
//		for n > 0 {
//			n = h.Yield(strconv.Itoa(n))
//		}
//		return n
//	})
//
// Everything is cooperative and synchronous. Construction runs no body code;
// each ResumeWith runs the body exactly up to its next yield point, or to
// completion, and returns with control handed back. The body runs on its own
// goroutine, but only one side is ever running: the caller is blocked while
// the body runs and vice versa, so body and caller never race on values they
// exchange. Distinct coroutines are independent and may be driven from
// different goroutines; a single coroutine must not be.
//
// A coroutine abandoned between yields keeps its goroutine, and whatever
// resources the body acquired, alive. Stop unwinds the body, running its
// deferred functions; Run drives a coroutine to completion with that cleanup
// built in.
//
// Body panics surface from ResumeWith as a *PanicError. Resuming after
// completion, however the coroutine completed, fails with ErrCompleted.
package coro
