// Package trampoline replaces the setjmp/longjmp stack-switch primitive the
// original scheduler used to jump between a coroutine's stack and the
// worker's own scheduling loop. Go forbids manually swapping a goroutine's
// stack, so control is handed back and forth over a pair of channels
// instead: the worker "jumps in" by starting a goroutine (for a brand new
// task) or unblocking one (to resume a previously suspended task), and the
// task "jumps back" by sending the reason it is suspending or exiting.
//
// The two sides of a Trampoline must never be driven by the same
// goroutine: one goroutine owns Launch/Resume/Await (the scheduler side),
// a different goroutine owns Suspend/Exit (the task side).
package trampoline

// Trampoline hands control back and forth between a scheduler goroutine and
// a single task goroutine, carrying a reason code of type R each time the
// task suspends or exits.
type Trampoline[R any] struct {
	resume chan struct{}
	parked chan R
}

// New returns a Trampoline ready to launch its first task.
func New[R any]() *Trampoline[R] {
	return &Trampoline[R]{
		resume: make(chan struct{}),
		parked: make(chan R),
	}
}

// Launch starts fn as a brand new goroutine. It is the equivalent of the
// original's stack_switch_call on a freshly allocated stack: control jumps
// straight into fn without any handshake, so Launch itself does not block.
func (t *Trampoline[R]) Launch(fn func()) {
	go fn()
}

// Resume re-enters a goroutine that is blocked inside Suspend, letting it
// continue immediately after the call that parked it.
func (t *Trampoline[R]) Resume() {
	t.resume <- struct{}{}
}

// Await blocks until the task goroutine suspends or exits, returning the
// reason it reported.
func (t *Trampoline[R]) Await() R {
	return <-t.parked
}

// Suspend is called from inside the task's own goroutine. It reports reason
// to whichever goroutine is blocked in Await, then blocks itself until a
// matching Resume call lets it continue.
func (t *Trampoline[R]) Suspend(reason R) {
	t.parked <- reason
	<-t.resume
}

// Exit is called from inside the task's own goroutine exactly once, when it
// has nothing left to run. It reports reason and returns without waiting,
// since the goroutine is about to end and nothing will ever resume it.
func (t *Trampoline[R]) Exit(reason R) {
	t.parked <- reason
}
