package future

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tclib/futures/callable"
)

func TestStateStartsPending(t *testing.T) {
	s := newState[int]()
	assert.False(t, s.done.Load())

	require.NoError(t, s.complete(42, nil))
	assert.True(t, s.done.Load())

	v, err := s.value()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestStateCompleteTwice(t *testing.T) {
	s := newState[int]()
	require.NoError(t, s.complete(1, nil))

	assert.ErrorIs(t, s.complete(2, nil), ErrPromiseAlreadySatisfied)
	assert.ErrorIs(t, s.complete(0, assert.AnError), ErrPromiseAlreadySatisfied)

	v, err := s.value()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestStateGatedProducerConsumer(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := newState[int]()
		ready := make(chan struct{})

		var (
			wg     sync.WaitGroup
			got    int
			getErr error
			setErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-ready
			setErr = s.complete(42, nil)
		}()
		go func() {
			defer wg.Done()
			<-ready
			got, getErr = s.value()
		}()

		close(ready)
		wg.Wait()

		require.NoError(t, setErr)
		require.NoError(t, getErr)
		require.Equal(t, 42, got)
	}
}

func TestStateContinuationDeferred(t *testing.T) {
	s := newState[int]()

	var got int
	s.setContinuation(callable.Of(func() {
		// The completing transition happens-before the continuation, so the
		// outcome must be readable here without blocking.
		got, _ = s.value()
	}))
	assert.Zero(t, got)

	require.NoError(t, s.complete(42, nil))
	assert.Equal(t, 42, got)
}

func TestStateContinuationImmediate(t *testing.T) {
	s := newState[int]()
	require.NoError(t, s.complete(42, nil))

	invoked := 0
	s.setContinuation(callable.Of(func() { invoked++ }))
	assert.Equal(t, 1, invoked)
}

func TestStateContinuationReplaced(t *testing.T) {
	s := newState[int]()

	first, second := 0, 0
	s.setContinuation(callable.Of(func() { first++ }))
	s.setContinuation(callable.Of(func() { second++ }))

	require.NoError(t, s.complete(42, nil))
	assert.Zero(t, first)
	assert.Equal(t, 1, second)
}

func TestStateResetContinuation(t *testing.T) {
	s := newState[int]()

	invoked := 0
	s.setContinuation(callable.Of(func() { invoked++ }))
	s.resetContinuation()

	require.NoError(t, s.complete(42, nil))
	assert.Zero(t, invoked)
}

func TestStateMarkRetrievedOnce(t *testing.T) {
	s := newState[int]()
	require.NoError(t, s.markRetrieved())
	assert.ErrorIs(t, s.markRetrieved(), ErrFutureAlreadyRetrieved)
}
