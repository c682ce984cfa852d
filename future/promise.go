package future

// Unit is the value type for promises that carry completion only.
type Unit = struct{}

// Promise is the exclusive producer handle of one shared state. It hands
// out its Future at most once and performs at most one terminal write.
//
// A Promise must not be copied. The zero value refers to no state; every
// operation on it reports ErrNoState.
type Promise[T any] struct {
	state *state[T]
}

// NewPromise creates a Promise with a fresh pending state.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{state: newState[T]()}
}

// Future returns the consumer handle of the Promise's state. It succeeds
// exactly once; a second call reports ErrFutureAlreadyRetrieved.
func (p *Promise[T]) Future() (*Future[T], error) {
	if p == nil || p.state == nil {
		return nil, newError(CodeNoState)
	}
	if err := p.state.markRetrieved(); err != nil {
		return nil, err
	}
	return &Future[T]{state: p.state}, nil
}

// SetValue completes the state with val. It reports
// ErrPromiseAlreadySatisfied if an outcome already exists. A chained
// continuation, if any, runs synchronously on the calling goroutine before
// SetValue returns.
func (p *Promise[T]) SetValue(val T) error {
	if p == nil || p.state == nil {
		return newError(CodeNoState)
	}
	return p.state.complete(val, nil)
}

// SetError completes the state with err. The failure is stored opaquely
// and resurfaces from Get on the consumer side. Like SetValue, it runs a
// chained continuation synchronously and reports ErrPromiseAlreadySatisfied
// on a second terminal write.
func (p *Promise[T]) SetError(err error) error {
	if p == nil || p.state == nil {
		return newError(CodeNoState)
	}
	var zero T
	return p.state.complete(zero, err)
}

// Close abandons the Promise. A still-pending state is completed with
// ErrBrokenPromise, which unblocks waiters and runs any chained
// continuation with that failure. Closing an already completed or already
// closed Promise does nothing. After Close the Promise refers to no state.
func (p *Promise[T]) Close() error {
	if p == nil || p.state == nil {
		return nil
	}
	s := p.state
	p.state = nil

	var zero T
	// Reports promise_already_satisfied when an outcome exists, meaning
	// there is nothing to abandon.
	_ = s.complete(zero, newError(CodeBrokenPromise))
	return nil
}
