// Package step implements the control transfer machinery underneath
// coroutines: a Task runs a function on its own goroutine and parks it at
// suspension points, and a Driver advances the task one suspension at a time.
//
// Control moves between the driver's goroutine and the task's goroutine
// through a single unbuffered channel. Exactly one side runs at any moment;
// the other is blocked on the channel. Each transfer is a send matched by the
// other side's receive, and completion is signaled by closing the channel, so
// all writes made by one side before handing over control are visible to the
// other side when it resumes.
package step

import (
	"runtime"
	"runtime/debug"
)

// Task is a suspendable computation. Spawn starts its goroutine in a parked
// state; each Poll hands control to the task until it parks again or
// finishes.
type Task[R any] struct {
	// transfer moves control between the driver and the task. Closed when
	// the task's goroutine is done, whether it returned, panicked, or was
	// unwound by a stop.
	transfer chan struct{}

	// stop tells a parked task to unwind instead of resuming. Written by
	// the driver before handing over control.
	stop bool

	// The fields below are written by the task's goroutine before it closes
	// transfer, and must only be read after observing the close.
	finished bool
	result   R
	failure  *PanicError
}

// Spawn starts the goroutine that will run entry and parks it immediately:
// entry does not begin until the first Poll.
func Spawn[R any](entry func() R) *Task[R] {
	t := &Task[R]{transfer: make(chan struct{})}
	go t.run(entry)
	return t
}

func (t *Task[R]) run(entry func() R) {
	defer func() {
		if v := recover(); v != nil {
			t.failure = newPanicError(v)
		}
		t.finished = true
		close(t.transfer)
	}()

	// Initial park. A stop that arrives before the first poll skips entry
	// entirely; only the deferred close runs.
	<-t.transfer

	if !t.stop {
		t.result = entry()
	}
}

// Park suspends the calling goroutine, handing control back to the driver,
// and returns when the driver polls again. It must only be called from the
// task's own goroutine.
//
// If the driver stopped the task, Park never returns: the goroutine exits
// through runtime.Goexit, running the deferred functions of every frame
// between entry and the suspension point. A deferred function that calls Park
// during that unwind panics instead, as does any call after the task
// finished.
func (t *Task[R]) Park() {
	if t.stop {
		panic("cannot yield from a coroutine that is stopping")
	}
	if t.finished {
		panic("cannot yield from a coroutine that has completed")
	}
	t.transfer <- struct{}{}
	<-t.transfer
	if t.stop {
		runtime.Goexit()
	}
}

// Poll hands control to the task until it parks again or finishes. It
// reports true if the task parked and false if its goroutine is done.
func (t *Task[R]) Poll() bool {
	t.transfer <- struct{}{}
	_, ok := <-t.transfer
	return ok
}

// Interrupt marks the task to unwind instead of resuming body code. It only
// takes effect on the next Poll, which the caller must still perform to drive
// the unwind; the task parked before the poll observes the mark when it wakes.
func (t *Task[R]) Interrupt() {
	t.stop = true
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}
