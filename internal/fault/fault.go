// Package fault is the runtime's single choke point for fatal
// invariant violations and for wrapping the handful of recoverable errors
// the runtime returns (configuration problems, bootstrap failures).
//
// A violated scheduling invariant -- a status the dispatcher never expects,
// a queue that should never be full, a semaphore destroyed with waiters
// still attached -- is a programming error in the runtime itself or in how
// it is being driven, not a condition calling code can recover from. Those
// paths call Panicf. Everything a caller might reasonably want to check
// and handle (bad Config, a second Init) is returned as an error built with
// Errorf or Wrap.
package fault

import "github.com/pkg/errors"

// Panicf panics with a formatted message. It is reserved for invariant
// violations: conditions the runtime's own bookkeeping guarantees cannot
// happen in a correctly driven program.
func Panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

// Errorf builds a new error, annotated with a stack trace via pkg/errors.
func Errorf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}

// Wrap annotates err with message and a stack trace, or returns nil if err
// is nil.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}
