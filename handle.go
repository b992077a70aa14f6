package coro

import "github.com/yieldpoint/coro/internal/handoff"

// parker is the suspension primitive behind Yield: park the body's goroutine
// once, resume on the driver's next advance.
type parker interface {
	Park()
}

// Handle is a coroutine body's capability to yield. New passes one to the
// body; it shares the coroutine's exchange slot and is only valid while the
// body runs. A handle must not be stored beyond the body's lifetime or used
// from another goroutine (the corovet analyzer reports both).
type Handle[Y, C any] struct {
	slot *handoff.Slot[Y, C]
	task parker
}

// Yield hands v to the caller of ResumeWith, suspends the body until the next
// resume, and returns the value that resume carried.
//
// To the body this is an ordinary blocking call: control transfers to the
// caller and comes back, with no scheduling in between. If the coroutine is
// stopped while suspended here, Yield never returns; the goroutine unwinds,
// running the body's deferred functions.
func (h *Handle[Y, C]) Yield(v Y) C {
	h.slot.PutYield(v)
	h.task.Park()
	r, ok := h.slot.TakeResume()
	if !ok {
		panic("coroutine resumed without a resume value")
	}
	return r
}
