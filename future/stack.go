package future

import (
	"runtime"

	"github.com/pkg/errors"
)

type stack []uintptr

// callers records the current call stack. skip counts frames above callers
// to leave out, so skip=1 starts the trace at callers' caller's caller.
func callers(skip int) *stack {
	const depth = 16
	pcs := make([]uintptr, depth)
	n := runtime.Callers(skip+2, pcs)
	var st stack = pcs[:n]
	return &st
}

// StackTrace adapts the recorded frames to the pkg/errors format.
func (s *stack) StackTrace() errors.StackTrace {
	f := make([]errors.Frame, len(*s))
	for i := range f {
		f[i] = errors.Frame((*s)[i])
	}
	return f
}
