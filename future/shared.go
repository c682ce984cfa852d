package future

// SharedFuture is the copyable multi-use consumer handle of one shared
// state, obtained through Future.Share. Copies may call Get and Wait any
// number of times and from any number of goroutines: the outcome is
// immutable once written, so the copies need no synchronization between
// them.
//
// The zero value refers to no state and reports ErrNoState.
type SharedFuture[T any] struct {
	state *state[T]
}

// Get blocks until the terminal outcome exists and returns it. Unlike
// Future.Get it does not consume the handle.
func (f *SharedFuture[T]) Get() (T, error) {
	if f == nil || f.state == nil {
		var zero T
		return zero, newError(CodeNoState)
	}
	return f.state.value()
}

// Wait blocks until the outcome exists.
func (f *SharedFuture[T]) Wait() error {
	if f == nil || f.state == nil {
		return newError(CodeNoState)
	}
	f.state.wait()
	return nil
}

// Valid reports whether the handle refers to a state.
func (f *SharedFuture[T]) Valid() bool {
	return f != nil && f.state != nil
}
