package routine

// RunSafe runs fn synchronously, recovering any panic. The recovered value
// is handed to the cleanup functions in order; the panic does not propagate
// to the caller.
func RunSafe(fn func(), cleanups ...func(r any)) {
	defer Recover(cleanups...)

	fn()
}

// GoSafe runs fn on a new goroutine with the same recovery behavior as
// RunSafe; a panic in fn never takes the process down.
func GoSafe(fn func(), cleanups ...func(r any)) {
	go RunSafe(fn, cleanups...)
}
