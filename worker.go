package gmpcoro

import (
	"runtime"

	"github.com/coropkg/gmpcoro/internal/fault"
)

// worker is an OS-thread-backed scheduler -- the "M" of the model. It owns
// one processor and runs a loop that pops a runnable G, dispatches it
// through its trampoline, and acts on whatever reason it reports back.
//
// Worker 0 never runs this loop: it exists only so every task, including
// ones started from the main coroutine, has a processor to be recorded
// against, but the loop itself is started for workers 1..N-1, matching the
// original's reservation of the main OS thread for the main coroutine.
type worker struct {
	id   int
	rt   *Runtime
	proc *processor
	stop chan struct{}
}

func (w *worker) run() {
	defer w.rt.wg.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		select {
		case <-w.stop:
			return
		default:
		}
		if w.rt.isShuttingDown() {
			return
		}

		h, ok := w.rt.balancingPop(w)
		if !ok {
			runtime.Gosched()
			continue
		}

		switch reason := w.dispatch(h); reason {
		case reasonYield:
			w.rt.balancingPush(w, h)
		case reasonExit:
			w.handleExit(h)
		case reasonWait:
			w.handleWait(h)
		case reasonSemWait:
			w.handleSemWait(h)
		default:
			fault.Panicf("gmpcoro: worker %d's scheduler received unexpected reason %s", w.id, reason)
		}
	}
}

// dispatch hands control to h's task, either launching it for the first
// time or resuming it, and blocks until the task suspends or exits.
func (w *worker) dispatch(h *g) reasonCode {
	t := h.task
	switch t.Status() {
	case StatusNew:
		t.tramp.Launch(func() { t.wrapper(w) })
	case StatusRunning:
		w.rt.current.SetFor(t.goroutineID, execCtx{task: t, worker: w})
		t.tramp.Resume()
	default:
		fault.Panicf("gmpcoro: worker %d tried to dispatch task %q in invalid status %s", w.id, t.name, t.Status())
	}
	return t.tramp.Await()
}

// handleExit finalizes a task that has run to completion: marks it DEAD,
// drops its stack reservation, and wakes every joiner waiting on it.
func (w *worker) handleExit(h *g) {
	t := h.task
	w.proc.dead.push(h)

	t.mu.Lock()
	t.status = StatusDead
	t.released = true
	t.stack = nil
	for {
		waiter, ok := t.waiters.PopFront()
		if !ok {
			break
		}
		w.wake(waiter)
	}
	t.mu.Unlock()
}

// wake transitions a waiter from WAITING back to RUNNING and pushes it onto
// the global queue, or -- if the waiter is the main coroutine -- simply
// unblocks its rendezvous channel. It is the EXIT path's wake policy; the
// semaphore wake policy (Semaphore.Post, in semaphore.go) picks a different
// queue depending on who called Post.
func (w *worker) wake(waiter *Task) {
	if transitionWaitingToRunning(waiter) {
		w.rt.globalQ.pushBack(waiter.handle)
	}
}

// handleWait is the scheduler-side half of Wait's worker path: it records
// the current task as a waiter on its join target, or -- if the target
// died in the narrow window between Wait's own check and this call --
// simply requeues the current task immediately instead of enqueueing onto
// a waiter list nobody will ever drain again.
func (w *worker) handleWait(h *g) {
	t := h.task
	target := w.proc.waitTarget
	w.proc.waitTarget = nil

	target.mu.Lock()
	if target.status == StatusDead {
		target.mu.Unlock()
		t.mu.Lock()
		t.status = StatusRunning
		t.mu.Unlock()
		w.rt.globalQ.pushBack(h)
		return
	}
	target.waiters.PushBack(t)
	h.owner = nil
	t.mu.Lock()
	t.status = StatusWaiting
	t.mu.Unlock()
	target.mu.Unlock()
}

// handleSemWait is the scheduler-side half of Semaphore.Wait's worker path.
// The semaphore's mutex is still held from when Wait suspended; this is
// where it finally gets released, after the task is safely recorded as a
// waiter.
func (w *worker) handleSemWait(h *g) {
	t := h.task
	sem := w.proc.blockedSem
	w.proc.blockedSem = nil

	h.owner = nil
	sem.waiters.PushBack(t)
	t.mu.Lock()
	t.status = StatusWaiting
	t.mu.Unlock()
	sem.mu.Unlock()
}
