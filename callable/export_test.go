package callable

import "unsafe"

// Test hooks into storage placement and descriptor identity.

func inlined(f *Func) bool {
	return !f.Empty() && f.st.big == nil
}

func heapPointer(f *Func) unsafe.Pointer {
	return f.st.big
}

func sharedDescriptor(a, b *Func) bool {
	return a.vt != nil && a.vt == b.vt
}
