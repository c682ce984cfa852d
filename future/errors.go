package future

import (
	"fmt"
	"io"
)

// Code identifies a violation of the promise/future handle contract.
type Code int32

const (
	// CodeBrokenPromise reports a Promise abandoned via Close before ever
	// completing its state.
	CodeBrokenPromise Code = iota
	// CodeFutureAlreadyRetrieved reports a second Promise.Future call.
	CodeFutureAlreadyRetrieved
	// CodePromiseAlreadySatisfied reports a terminal write to a state that
	// already holds an outcome.
	CodePromiseAlreadySatisfied
	// CodeNoState reports an operation on a handle that refers to no state:
	// zero-valued, closed, or already consumed.
	CodeNoState
)

// String returns the canonical name of the condition.
func (c Code) String() string {
	switch c {
	case CodeBrokenPromise:
		return "broken_promise"
	case CodeFutureAlreadyRetrieved:
		return "future_already_retrieved"
	case CodePromiseAlreadySatisfied:
		return "promise_already_satisfied"
	case CodeNoState:
		return "no_state"
	}
	return fmt.Sprintf("future.Code(%d)", int32(c))
}

// Sentinels for errors.Is matching. Raised errors carry the stack of the
// violating call; the sentinels themselves do not.
var (
	ErrBrokenPromise           = &Error{code: CodeBrokenPromise}
	ErrFutureAlreadyRetrieved  = &Error{code: CodeFutureAlreadyRetrieved}
	ErrPromiseAlreadySatisfied = &Error{code: CodePromiseAlreadySatisfied}
	ErrNoState                 = &Error{code: CodeNoState}
)

// Error reports a handle-contract violation. It is raised synchronously at
// the violating call, never deferred, and never wraps a user failure.
type Error struct {
	*stack
	code Code
}

// newError builds an Error whose stack starts at the API call that raised
// the condition.
func newError(code Code) *Error {
	return &Error{stack: callers(1), code: code}
}

func (e *Error) Error() string {
	return e.code.String()
}

// Code returns the condition the error reports.
func (e *Error) Code() Code {
	return e.code
}

// Is matches any Error with the same code, so
// errors.Is(err, future.ErrNoState) works regardless of capture site.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && e.stack != nil {
			io.WriteString(s, e.Error())
			e.stack.StackTrace().Format(s, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
