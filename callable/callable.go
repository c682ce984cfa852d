package callable

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
)

// ErrEmptyCallable is the panic value raised when an empty Func is invoked.
var ErrEmptyCallable = errors.New("empty callable invoked")

// Invoker is the fixed invocation signature a payload has to satisfy.
type Invoker interface {
	Invoke()
}

// Func holds at most one callable. The zero value is empty.
//
// A Func is move-only: hand it to another owner with MoveFrom, Take or Swap.
// Assigning a Func with = duplicates ownership of the payload and must be
// treated as a transfer — the source is not to be used afterwards.
type Func struct {
	vt *vtable
	st storage
}

// New captures payload into a Func. The payload is stored inline when its
// type fits the inline buffer, otherwise behind one heap allocation.
func New[C Invoker](payload C) Func {
	t := reflect.TypeOf((*C)(nil)).Elem()
	if t.Kind() == reflect.Interface {
		if any(payload) == nil {
			return Func{}
		}
	}
	f := Func{vt: vtableFor[C](t)}
	if fitsInline(t) {
		*(*C)(unsafe.Pointer(&f.st.tiny)) = payload
	} else {
		p := new(C)
		*p = payload
		f.st.big = unsafe.Pointer(p)
	}
	return f
}

// thunk adapts a plain closure to the Invoker contract.
type thunk func()

func (fn thunk) Invoke() { fn() }

// Of captures a plain func(). Of(nil) returns an empty Func.
func Of(fn func()) Func {
	if fn == nil {
		return Func{}
	}
	return New(thunk(fn))
}

func (f *Func) table() *vtable {
	if f.vt == nil {
		return emptyVtable
	}
	return f.vt
}

// Invoke runs the payload. Invoking an empty Func panics with
// ErrEmptyCallable.
func (f *Func) Invoke() {
	f.table().invoke(&f.st)
}

// Empty reports whether f holds no payload.
func (f *Func) Empty() bool {
	return f.table() == emptyVtable
}

// Reset destroys the payload, if any, and leaves f empty. It is the
// assignment of the null sentinel.
func (f *Func) Reset() {
	f.table().destroy(&f.st)
	f.vt = emptyVtable
}

// MoveFrom destroys f's current payload, relocates src's payload into f and
// leaves src empty.
func (f *Func) MoveFrom(src *Func) {
	if f == src {
		return
	}
	f.table().destroy(&f.st)
	f.vt = src.table()
	f.vt.relocate(&f.st, &src.st)
	src.vt = emptyVtable
}

// Take returns f's payload as a fresh Func and leaves f empty.
func (f *Func) Take() Func {
	var dst Func
	dst.MoveFrom(f)
	return dst
}

// Swap exchanges the payloads of f and other.
func (f *Func) Swap(other *Func) {
	if f == other {
		return
	}
	fvt, ovt := f.table(), other.table()
	var tmp storage
	fvt.relocate(&tmp, &f.st)
	ovt.relocate(&f.st, &other.st)
	fvt.relocate(&other.st, &tmp)
	f.vt, other.vt = ovt, fvt
}
