package gmpcoro

import "github.com/coropkg/gmpcoro/internal/fault"

var defaultRT *Runtime

// Init builds the process-wide default Runtime used by the other
// package-level functions (Start, Yield, Wait, WaitAny, NewSem, Shutdown,
// Stat). Like New, it must be called exactly once, from the goroutine that
// will act as the main coroutine for the rest of the process's life.
//
// Programs that need more than one independent scheduler, or that want to
// construct and tear down a Runtime explicitly, should call New directly
// instead of Init and ignore these package-level functions entirely.
func Init(opts ...Option) error {
	if defaultRT != nil {
		return fault.Errorf("gmpcoro: Init has already been called")
	}
	rt, err := New(opts...)
	if err != nil {
		return err
	}
	defaultRT = rt
	return nil
}

func mustDefault() *Runtime {
	if defaultRT == nil {
		fault.Panicf("gmpcoro: Init has not been called")
	}
	return defaultRT
}

// Start creates a new task on the default Runtime. See Runtime.Start.
func Start(name string, entry func(any), arg any) *Task {
	return mustDefault().Start(name, entry, arg)
}

// Yield cooperatively suspends the calling task on the default Runtime. See
// Runtime.Yield.
func Yield() { mustDefault().Yield() }

// Wait joins target on the default Runtime. See Runtime.Wait.
func Wait(target *Task) error { return mustDefault().Wait(target) }

// WaitAny joins the first of tasks to finish, on the default Runtime. See
// Runtime.WaitAny.
func WaitAny(tasks ...*Task) (*Task, error) { return mustDefault().WaitAny(tasks...) }

// NewSem creates a semaphore bound to the default Runtime. See
// Runtime.NewSem.
func NewSem(value uint64) *Semaphore { return mustDefault().NewSem(value) }

// Shutdown tears down the default Runtime. See Runtime.Shutdown.
func Shutdown() { mustDefault().Shutdown() }

// Stat returns a load snapshot of the default Runtime. See Runtime.Stats.
func Stat() Stats { return mustDefault().Stats() }
