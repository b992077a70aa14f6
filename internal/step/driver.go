package step

import "errors"

// ErrCompleted is returned by Advance when the task already completed.
// Advancing again keeps returning it.
var ErrCompleted = errors.New("coroutine resumed after completion")

// Driver advances a task one suspension point at a time from the caller's
// goroutine. Its only mutable state is the completion flag; everything else
// lives in the task.
//
// A Driver is not safe for concurrent use.
type Driver[R any] struct {
	task *Task[R]
	done bool
}

// NewDriver returns a driver for t. A task must have exactly one driver.
func NewDriver[R any](t *Task[R]) *Driver[R] {
	return &Driver[R]{task: t}
}

// Advance runs the task until it parks at its next suspension point or
// finishes. It reports suspended=true if the task parked. On completion it
// reports false with a nil error if the task returned normally, or with a
// *PanicError if the task's goroutine panicked. Once the task completed,
// every further Advance fails with ErrCompleted.
func (d *Driver[R]) Advance() (suspended bool, err error) {
	if d.done {
		return false, ErrCompleted
	}
	if d.task.Poll() {
		return true, nil
	}
	d.done = true
	if d.task.failure != nil {
		return false, d.task.failure
	}
	return false, nil
}

// Result returns the task's return value. It is only meaningful after an
// Advance reported normal completion.
func (d *Driver[R]) Result() R {
	return d.task.result
}

// Done reports whether the task completed: returned, panicked, or stopped.
func (d *Driver[R]) Done() bool {
	return d.done
}

// Stop unwinds a suspended task without resuming it. The task's goroutine
// exits, running its deferred functions, before Stop returns. Stopping a
// completed task is a no-op.
//
// A task that panics while unwinding, from a deferred function, propagates
// that panic to the caller of Stop as a *PanicError.
func (d *Driver[R]) Stop() {
	if d.done {
		return
	}
	d.task.Interrupt()
	d.task.Poll()
	d.done = true
	if f := d.task.failure; f != nil {
		panic(f)
	}
}
