package callable

import (
	"reflect"
	"sync"
	"unsafe"
)

// InlineSize is the capacity in bytes of the buffer embedded in every Func.
// Payloads that fit (see fitsInline) are stored without a heap allocation.
const InlineSize = 32

// storage backs one captured payload: either a heap pointer in big or raw
// payload bytes in tiny, selected once at capture time.
type storage struct {
	big  unsafe.Pointer
	tiny [InlineSize]byte
}

// vtable is the dispatch descriptor for one concrete payload type. Exactly
// one vtable exists per type, shared by every Func holding that type.
//
// relocate moves the payload between storage locations and empties the
// source; it backs MoveFrom, Take and Swap. destroy drops the payload,
// releasing whatever it owns to the collector.
type vtable struct {
	invoke   func(st *storage)
	relocate func(dst, src *storage)
	destroy  func(st *storage)
}

// emptyVtable is the shared descriptor of every empty Func: invoke raises
// the empty-call condition, relocate and destroy are no-ops.
var emptyVtable = &vtable{
	invoke:   func(*storage) { panic(ErrEmptyCallable) },
	relocate: func(dst, src *storage) {},
	destroy:  func(*storage) {},
}

// vtables maps reflect.Type -> *vtable. LoadOrStore keeps the descriptor
// unique per type even when instantiations race.
var vtables sync.Map

func vtableFor[C Invoker](t reflect.Type) *vtable {
	if v, ok := vtables.Load(t); ok {
		return v.(*vtable)
	}
	var vt *vtable
	if fitsInline(t) {
		vt = &vtable{
			invoke: func(st *storage) {
				(*(*C)(unsafe.Pointer(&st.tiny))).Invoke()
			},
			relocate: func(dst, src *storage) {
				dst.tiny = src.tiny
				src.tiny = [InlineSize]byte{}
			},
			destroy: func(st *storage) {
				st.tiny = [InlineSize]byte{}
			},
		}
	} else {
		vt = &vtable{
			invoke: func(st *storage) {
				(*(*C)(st.big)).Invoke()
			},
			relocate: func(dst, src *storage) {
				dst.big = src.big
				src.big = nil
			},
			destroy: func(st *storage) {
				st.big = nil
			},
		}
	}
	v, _ := vtables.LoadOrStore(t, vt)
	return v.(*vtable)
}

// fitsInline reports whether values of t may live in the inline buffer.
// Beyond the size and alignment bounds, the payload must be pointer-free:
// the bytes of tiny are opaque to the garbage collector, so a pointer
// stored there would not keep its referent alive.
func fitsInline(t reflect.Type) bool {
	return t.Size() <= InlineSize &&
		uintptr(t.Align()) <= unsafe.Alignof(uintptr(0)) &&
		pointerFree(t)
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
