package coro

import (
	"github.com/yieldpoint/coro/internal/handoff"
	"github.com/yieldpoint/coro/internal/step"
)

// Coroutine is a computation that pauses at points chosen by its own body,
// receives a value of type C from its caller on every resume, yields values
// of type Y at each pause, and eventually produces a final result of type R.
//
// A Coroutine must not be resumed from more than one goroutine at a time; the
// caller is responsible for that discipline. Distinct coroutines are fully
// independent.
type Coroutine[Y, R, C any] struct {
	slot *handoff.Slot[Y, C]
	drv  *step.Driver[R]
}

// New instantiates a coroutine from its body function. The body receives a
// handle, its one capability to yield, and the value carried by the first
// resume. No body code runs until ResumeWith is called.
//
// The returned coroutine holds a parked goroutine until it completes or is
// stopped; a coroutine abandoned mid-flight keeps that goroutine, and
// whatever resources the body acquired, alive. Call Stop, or drive with Run,
// when a coroutine might not be resumed to completion.
func New[Y, R, C any](body func(*Handle[Y, C], C) R) *Coroutine[Y, R, C] {
	slot := new(handoff.Slot[Y, C])
	h := &Handle[Y, C]{slot: slot}
	task := step.Spawn(func() R {
		first, ok := slot.TakeResume()
		if !ok {
			panic("coroutine started without a resume value")
		}
		return body(h, first)
	})
	h.task = task
	return &Coroutine[Y, R, C]{slot: slot, drv: step.NewDriver(task)}
}

// ResumeWith hands v to the coroutine and runs its body until the next yield
// point or completion. The returned State reports which of the two happened
// and carries the yielded value or the final result.
//
// When the body panics instead of returning, ResumeWith returns a *PanicError
// carrying the panic value. Once the coroutine completed, for any reason,
// every further ResumeWith fails with ErrCompleted and v is discarded; the
// body never observes it. The State is meaningless when the error is non-nil.
func (c *Coroutine[Y, R, C]) ResumeWith(v C) (State[Y, R], error) {
	if c.drv.Done() {
		return State[Y, R]{}, ErrCompleted
	}
	c.slot.PutResume(v)
	suspended, err := c.drv.Advance()
	if err != nil {
		return State[Y, R]{}, err
	}
	if suspended {
		y, ok := c.slot.TakeYield()
		if !ok {
			panic("coroutine suspended without a yield value")
		}
		return State[Y, R]{yielded: y}, nil
	}
	return State[Y, R]{result: c.drv.Result(), complete: true}, nil
}

// Stop destroys a suspended coroutine without resuming it: the body never
// observes another resume value, its goroutine unwinds, and every deferred
// function between the suspension point and the body's entry runs before
// Stop returns. Stopping a completed or already stopped coroutine is a no-op.
//
// A body that panics while unwinding, from one of those deferred functions,
// propagates the panic to the caller of Stop.
func (c *Coroutine[Y, R, C]) Stop() {
	c.drv.Stop()
}

// Done reports whether the coroutine completed: its body returned, panicked,
// or was stopped.
func (c *Coroutine[Y, R, C]) Done() bool {
	return c.drv.Done()
}

// Run drives c to completion, resuming first with init and then with f's
// result for each yielded value. It returns the body's final result.
//
// If f panics, or an error interrupts the drive, the coroutine is stopped on
// the way out so the body's deferred functions run.
func Run[Y, R, C any](c *Coroutine[Y, R, C], init C, f func(Y) C) (R, error) {
	defer func() {
		if !c.Done() {
			c.Stop()
		}
	}()

	st, err := c.ResumeWith(init)
	for {
		if err != nil {
			var zero R
			return zero, err
		}
		y, ok := st.Yielded()
		if !ok {
			r, _ := st.Completed()
			return r, nil
		}
		st, err = c.ResumeWith(f(y))
	}
}
