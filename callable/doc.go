// Package callable provides a move-only, type-erased container for a single
// zero-argument callable.
//
// A Func owns at most one payload satisfying Invoker. Small payloads without
// pointers are stored in a fixed buffer inside the Func itself; everything
// else takes a single heap allocation. Either way the footprint of a Func is
// constant, and each concrete payload type shares one dispatch descriptor —
// no per-instance operation pointers.
//
// Func never requires its payload to be copyable: ownership changes hands
// through MoveFrom, Take and Swap, all of which leave the source empty.
// Invoking an empty Func panics with ErrEmptyCallable rather than silently
// doing nothing.
package callable
