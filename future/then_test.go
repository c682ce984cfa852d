package future

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func double(f *Future[int]) (int, error) {
	v, err := f.Get()
	return v * 2, err
}

func TestThenAfterCompletion(t *testing.T) {
	p := NewPromise[int]()
	require.NoError(t, p.SetValue(42))

	f, err := p.Future()
	require.NoError(t, err)

	f2, err := Then(f, double)
	require.NoError(t, err)
	assert.False(t, f.Valid())

	f3, err := Then(f2, double)
	require.NoError(t, err)

	v, err := f3.Get()
	require.NoError(t, err)
	assert.Equal(t, 168, v)
}

func TestThenBeforeCompletion(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)

	f2, err := Then(f, double)
	require.NoError(t, err)

	f3, err := Then(f2, double)
	require.NoError(t, err)

	done := make(chan int, 1)
	go func() {
		v, _ := f3.Get()
		done <- v
	}()

	require.NoError(t, p.SetValue(42))
	assert.Equal(t, 168, <-done)
}

func TestThenRunsOnCompletingGoroutine(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)

	ran := false
	f2, err := Then(f, func(f *Future[int]) (int, error) {
		ran = true
		return f.Get()
	})
	require.NoError(t, err)
	require.False(t, ran)

	// SetValue performs the transition, so the continuation has run by the
	// time it returns.
	require.NoError(t, p.SetValue(42))
	assert.True(t, ran)

	v, err := f2.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestThenForwardsUpstreamError(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)

	f2, err := Then(f, double)
	require.NoError(t, err)

	boom := errors.New("task failed")
	require.NoError(t, p.SetError(boom))

	_, err = f2.Get()
	assert.ErrorIs(t, err, boom)
}

func TestThenForwardsContinuationError(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)

	boom := errors.New("continuation failed")
	f2, err := Then(f, func(f *Future[int]) (int, error) {
		_, _ = f.Get()
		return 0, boom
	})
	require.NoError(t, err)

	require.NoError(t, p.SetValue(42))

	_, err = f2.Get()
	assert.ErrorIs(t, err, boom)
}

func TestThenCapturesContinuationPanic(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)

	boom := errors.New("continuation panicked")
	f2, err := Then(f, func(f *Future[int]) (int, error) {
		panic(boom)
	})
	require.NoError(t, err)

	// The panic is captured into the downstream outcome; the completing
	// call must return normally.
	assert.NotPanics(t, func() {
		require.NoError(t, p.SetValue(42))
	})

	_, err = f2.Get()
	assert.ErrorIs(t, err, boom)
}

func TestThenOnClosedChain(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)

	f2, err := Then(f, double)
	require.NoError(t, err)

	require.NoError(t, p.Close())

	_, err = f2.Get()
	assert.ErrorIs(t, err, ErrBrokenPromise)
}

func TestThenValue(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)

	f2, err := ThenValue(f, func(v int, err error) (string, error) {
		if err != nil {
			return "", err
		}
		if v > 40 {
			return "big", nil
		}
		return "small", nil
	})
	require.NoError(t, err)

	require.NoError(t, p.SetValue(42))

	s, err := f2.Get()
	require.NoError(t, err)
	assert.Equal(t, "big", s)
}

func TestThenChangesResultType(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)

	f2, err := Then(f, func(f *Future[int]) (Unit, error) {
		_, err := f.Get()
		return Unit{}, err
	})
	require.NoError(t, err)

	require.NoError(t, p.SetValue(1))
	_, err = f2.Get()
	assert.NoError(t, err)
}
