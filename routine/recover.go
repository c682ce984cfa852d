package routine

import (
	"fmt"
	"io"
	"runtime"

	"github.com/pkg/errors"
)

// Recover stops an in-flight panic and hands the recovered value to each
// cleanup in order. It has to run deferred:
//
//	defer routine.Recover(func(r any) { ... })
func Recover(cleanups ...func(r any)) {
	if r := recover(); r != nil {
		for _, cleanup := range cleanups {
			cleanup(r)
		}
	}
}

// Recovered is a panic value together with the call stack it was captured
// on. skip counts frames above NewRecovered to leave out of the trace.
type Recovered struct {
	Value   any
	Callers []uintptr
}

func NewRecovered(skip int, value any) *Recovered {
	var callers [32]uintptr
	n := runtime.Callers(skip+1, callers[:])
	return &Recovered{
		Value:   value,
		Callers: callers[:n],
	}
}

// AsError wraps the recovered panic as an error. Returns nil on a nil
// receiver, so it composes with a no-panic path.
func (p *Recovered) AsError() error {
	if p == nil {
		return nil
	}
	return &RecoveredError{p}
}

// RecoveredError is a panic converted into an error.
type RecoveredError struct {
	*Recovered
}

func (e *RecoveredError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes an error panic value to errors.Is and errors.As.
func (e *RecoveredError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func (e *RecoveredError) StackTrace() errors.StackTrace {
	if e == nil {
		return nil
	}
	frames := make([]errors.Frame, len(e.Callers))
	for i, pc := range e.Callers {
		frames[i] = errors.Frame(pc)
	}
	return frames
}

func (e *RecoveredError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, e.Error())
			e.StackTrace().Format(s, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
