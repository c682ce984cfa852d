package future

import (
	"github.com/tclib/futures/callable"
	"github.com/tclib/futures/routine"
)

// Future is the single-use consumer handle of one shared state. Get, Share
// and Then consume the handle; afterwards Valid reports false and every
// operation reports ErrNoState. The zero value is an already consumed
// handle.
type Future[T any] struct {
	state *state[T]
}

// Get blocks until the terminal outcome exists and returns it, consuming
// the handle. A failure stored through SetError is returned as-is.
func (f *Future[T]) Get() (T, error) {
	if f == nil || f.state == nil {
		var zero T
		return zero, newError(CodeNoState)
	}
	s := f.state
	f.state = nil
	return s.value()
}

// Wait blocks until the outcome exists, without consuming the handle.
func (f *Future[T]) Wait() error {
	if f == nil || f.state == nil {
		return newError(CodeNoState)
	}
	f.state.wait()
	return nil
}

// Valid reports whether the handle still refers to a state.
func (f *Future[T]) Valid() bool {
	return f != nil && f.state != nil
}

// Share consumes the handle and returns a copyable multi-use view of the
// same state.
func (f *Future[T]) Share() (*SharedFuture[T], error) {
	if f == nil || f.state == nil {
		return nil, newError(CodeNoState)
	}
	s := f.state
	f.state = nil
	return &SharedFuture[T]{state: s}, nil
}

// Then chains fn to run once f's state completes, consuming f. The Future
// for fn's result is returned immediately — usually before the original
// outcome exists.
//
// The continuation runs on whichever goroutine performs the completing
// transition, or on the calling goroutine right away if the state has
// already completed. fn receives a fresh single-use handle to the original
// state. A value returned by fn, an error returned by it, a panic raised
// inside it, or a failure already stored in the original outcome all end
// up in the returned Future; nothing escapes the completing call.
//
// Each link pairs a fresh promise/future with the previous state, so
// Then(Then(f, g), h) composes link by link.
func Then[T, R any](f *Future[T], fn func(*Future[T]) (R, error)) (*Future[R], error) {
	if f == nil || f.state == nil {
		return nil, newError(CodeNoState)
	}

	next := NewPromise[R]()
	out, err := next.Future()
	if err != nil {
		return nil, err
	}

	s := f.state
	f.state = nil
	s.setContinuation(callable.Of(func() {
		val, err := invokeChained(fn, &Future[T]{state: s})
		if err != nil {
			_ = next.SetError(err)
			return
		}
		_ = next.SetValue(val)
	}))
	return out, nil
}

// ThenValue is Then for continuations that want the outcome itself rather
// than the handle.
func ThenValue[T, R any](f *Future[T], fn func(T, error) (R, error)) (*Future[R], error) {
	return Then(f, func(in *Future[T]) (R, error) {
		return fn(in.Get())
	})
}

// invokeChained is the failure-capturing boundary around a continuation: a
// panic inside fn becomes the downstream outcome instead of unwinding the
// goroutine that completed the upstream state.
func invokeChained[T, R any](fn func(*Future[T]) (R, error), in *Future[T]) (val R, err error) {
	defer routine.Recover(func(r any) {
		err = routine.NewRecovered(3, r).AsError()
	})
	return fn(in)
}
