// Package routine provides panic capture for code run on behalf of others.
//
// Recover stops an in-flight panic from a deferred call; Recovered and
// RecoveredError turn the recovered value into an error that keeps the
// panic site's stack trace and, when the panic value itself is an error,
// stays matchable with errors.Is and errors.As. RunSafe and GoSafe wrap
// function execution with that capture.
package routine
