package step

import "fmt"

// PanicError carries a panic raised on a task's goroutine across to its
// driver, along with the stack captured at the recovery site.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("coroutine panicked: %v", e.Value)
}

// Unwrap returns the panic value if the task panicked with an error, so that
// errors.Is and errors.As see through the capture. It returns nil otherwise.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
