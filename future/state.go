package future

import (
	"sync"
	"sync/atomic"

	"github.com/tclib/futures/callable"
)

// state is the synchronized single-assignment slot shared by one Promise
// and its descendant Future/SharedFuture handles and continuations.
//
// The outcome (val, err) is written at most once, under mu. done flips
// Pending -> Completed exactly once and never reverses; it is atomic so
// that handles can skip the lock once the transition has been observed —
// a completed outcome is immutable. At most one continuation is pending
// at a time, and it fires exactly once: either by the completing
// goroutine or, when installed after completion, by the installer.
type state[T any] struct {
	noCopy noCopy

	done      atomic.Bool
	retrieved atomic.Bool

	mu   sync.Mutex
	cond *sync.Cond

	val  T
	err  error
	cont callable.Func
}

func newState[T any]() *state[T] {
	s := &state[T]{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// complete records the terminal outcome. The continuation slot is emptied
// while still holding the lock; waiters are woken before the continuation
// runs so blocked Get/Wait calls are never starved behind it, and the
// continuation runs outside the lock so it may touch this same state
// without deadlocking.
func (s *state[T]) complete(val T, err error) error {
	s.mu.Lock()
	if s.done.Load() {
		s.mu.Unlock()
		return newError(CodePromiseAlreadySatisfied)
	}
	s.val = val
	s.err = err
	s.done.Store(true)
	cont := s.cont.Take()
	s.mu.Unlock()

	s.cond.Broadcast()
	if !cont.Empty() {
		cont.Invoke()
	}
	return nil
}

// setContinuation installs f to run when the state completes. If the state
// has already completed, f runs immediately on the calling goroutine. While
// still pending, a later install replaces an earlier one; the replaced
// callable is dropped without running.
func (s *state[T]) setContinuation(f callable.Func) {
	s.mu.Lock()
	done := s.done.Load()
	if !done {
		s.cont.Swap(&f)
	}
	s.mu.Unlock()

	if done && !f.Empty() {
		f.Invoke()
	}
}

// resetContinuation clears any pending continuation without running it.
func (s *state[T]) resetContinuation() {
	s.mu.Lock()
	s.cont.Reset()
	s.mu.Unlock()
}

// wait blocks the calling goroutine until the state has completed. The
// atomic flag gives a non-blocking fast path; the lock-guarded loop is
// what prevents a missed wakeup.
func (s *state[T]) wait() {
	if s.done.Load() {
		return
	}
	s.mu.Lock()
	for !s.done.Load() {
		s.cond.Wait()
	}
	s.mu.Unlock()
}

// value waits for completion and returns the stored outcome.
func (s *state[T]) value() (T, error) {
	s.wait()
	if s.err != nil {
		var zero T
		return zero, s.err
	}
	return s.val, nil
}

// markRetrieved is the one-shot guard behind Promise.Future: it succeeds
// only the first time it is called for a given state.
func (s *state[T]) markRetrieved() error {
	if s.retrieved.Swap(true) {
		return newError(CodeFutureAlreadyRetrieved)
	}
	return nil
}

// noCopy flags state as not-to-be-copied for go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
