package coro

// Generator is a coroutine whose caller passes nothing back at yield points:
// each Resume advances the body to its next yield or to completion.
type Generator[Y, R any] struct {
	co *Coroutine[Y, R, struct{}]
}

// NewGenerator instantiates a generator from its body function. Like New, no
// body code runs until the first Resume, and an abandoned generator keeps its
// goroutine alive until stopped.
func NewGenerator[Y, R any](body func(*Handle[Y, struct{}]) R) *Generator[Y, R] {
	return &Generator[Y, R]{
		co: New(func(h *Handle[Y, struct{}], _ struct{}) R {
			return body(h)
		}),
	}
}

// Resume runs the body until its next yield point or completion. It has the
// error behavior of ResumeWith: a *PanicError when the body panics, and
// ErrCompleted for every resume past completion.
func (g *Generator[Y, R]) Resume() (State[Y, R], error) {
	return g.co.ResumeWith(struct{}{})
}

// Stop destroys a suspended generator, unwinding its body. See Coroutine.Stop.
func (g *Generator[Y, R]) Stop() {
	g.co.Stop()
}

// Done reports whether the generator completed.
func (g *Generator[Y, R]) Done() bool {
	return g.co.Done()
}
