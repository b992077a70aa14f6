package coro

import "github.com/yieldpoint/coro/internal/step"

// ErrCompleted is returned by ResumeWith when the coroutine has already
// completed, whether its body returned, panicked, or was stopped. The resume
// value is discarded and resuming again keeps failing the same way.
var ErrCompleted = step.ErrCompleted

// PanicError is the error returned by ResumeWith when the coroutine body
// panics. Value holds the panic value and Stack the body goroutine's stack at
// the point of recovery. It unwraps to Value when the body panicked with an
// error.
type PanicError = step.PanicError
