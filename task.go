package gmpcoro

import (
	"sync"

	"github.com/google/uuid"

	"github.com/coropkg/gmpcoro/internal/dlist"
	"github.com/coropkg/gmpcoro/internal/fault"
	"github.com/coropkg/gmpcoro/internal/gls"
	"github.com/coropkg/gmpcoro/internal/trampoline"
)

// Task is a single cooperatively scheduled unit of work -- the runtime's
// analogue of a goroutine, and the "G" of the scheduling model. Start
// returns a *Task; Wait and WaitAny accept one.
type Task struct {
	id     uuid.UUID
	name   string
	entry  func(any)
	arg    any
	isMain bool

	handle *g // this task's own, stable G record; see g below

	mu       sync.Mutex
	status   Status
	joined   bool // a Wait call has already claimed this task, see Wait
	waiters  dlist.List[*Task]
	released bool   // stack reservation has been dropped
	stack    []byte // nominal stack reservation; see TaskStackSize

	tramp       *trampoline.Trampoline[reasonCode]
	goroutineID uint64 // set once, from inside wrapper, on first dispatch

	// mainDone is the rendezvous the main coroutine blocks on inside Wait
	// and Semaphore.Wait -- the equivalent of the original's single
	// OS-level binary semaphore for the main thread, reused sequentially
	// across however many waits main performs.
	mainDone chan struct{}
}

// g pairs a Task with the worker that currently owns it. A nil owner means
// the G is unassigned, sitting only in the global queue or in a waiter
// list. Every Task keeps exactly one g for its whole life so that waking it
// -- from Wait, Semaphore.Post, or a join target dying -- always re-enqueues
// the same identity, never a copy.
type g struct {
	task  *Task
	owner *worker
}

// ID returns a process-wide unique identifier for the task, stable for its
// whole lifetime.
func (t *Task) ID() uuid.UUID { return t.id }

// Name returns the name the task was started with.
func (t *Task) Name() string { return t.name }

// Status returns the task's current lifecycle state.
func (t *Task) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// transitionWaitingToRunning moves waiter from WAITING to RUNNING, or --
// if it is the main coroutine -- unblocks its rendezvous channel instead,
// since main is never placed on a run queue. It reports whether the caller
// still needs to enqueue waiter onto some run queue itself.
func transitionWaitingToRunning(waiter *Task) bool {
	if waiter.isMain {
		waiter.mainDone <- struct{}{}
		return false
	}
	waiter.mu.Lock()
	if waiter.status != StatusWaiting {
		waiter.mu.Unlock()
		fault.Panicf("gmpcoro: woke task %q but its status was %s, not WAITING", waiter.name, waiter.status)
	}
	waiter.status = StatusRunning
	waiter.mu.Unlock()
	return true
}

func newTask(name string, entry func(any), arg any) *Task {
	t := &Task{
		id:     uuid.New(),
		name:   name,
		entry:  entry,
		arg:    arg,
		status: StatusNew,
		stack:  make([]byte, TaskStackSize),
		tramp:  trampoline.New[reasonCode](),
	}
	t.handle = &g{task: t}
	return t
}

// newMainTask builds the singleton Task record standing in for the calling
// goroutine that constructs a Runtime. It is never dispatched through a
// trampoline -- it already is running -- so it starts RUNNING, not NEW.
func newMainTask() *Task {
	t := &Task{
		id:       uuid.New(),
		name:     "main",
		status:   StatusRunning,
		isMain:   true,
		mainDone: make(chan struct{}),
	}
	t.handle = &g{task: t}
	return t
}

// wrapper is the entry point every non-main task's goroutine starts at. It
// registers the task against its own goroutine id so Yield/Wait/Semaphore
// calls made from inside entry can find their way back to this Task and
// the worker currently driving it, runs entry, and reports EXIT.
func (t *Task) wrapper(w *worker) {
	t.goroutineID = gls.ID()
	w.rt.current.SetFor(t.goroutineID, execCtx{task: t, worker: w})
	defer w.rt.current.DeleteID(t.goroutineID)

	t.mu.Lock()
	t.status = StatusRunning
	t.mu.Unlock()

	t.entry(t.arg)

	w.rt.decrementLiveTasks()
	t.tramp.Exit(reasonExit)
}
