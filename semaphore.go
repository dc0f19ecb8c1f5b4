package gmpcoro

import (
	"sync"

	"github.com/coropkg/gmpcoro/internal/dlist"
	"github.com/coropkg/gmpcoro/internal/fault"
)

// Semaphore is a counting semaphore whose waiters are coroutine tasks
// rather than OS threads: a task blocked in Wait suspends cooperatively
// instead of parking its underlying goroutine, so the worker that was
// running it is freed to run something else while it waits. Waiters are
// woken in FIFO order.
type Semaphore struct {
	rt *Runtime

	mu        sync.Mutex
	count     uint64
	waiters   dlist.List[*Task]
	destroyed bool
}

// NewSem creates a semaphore with the given initial count.
func (rt *Runtime) NewSem(value uint64) *Semaphore {
	return &Semaphore{rt: rt, count: value}
}

// Wait decrements the semaphore's count, blocking the caller if it is
// already zero until a matching Post makes it available.
func (s *Semaphore) Wait() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		fault.Panicf("gmpcoro: Wait called on a destroyed semaphore")
	}
	if s.count > 0 {
		s.count--
		s.mu.Unlock()
		return
	}

	ec := s.rt.mustCurrent()
	if ec.task.isMain {
		s.waiters.PushBack(ec.task)
		s.mu.Unlock()
		<-ec.task.mainDone
		return
	}

	ec.worker.proc.blockedSem = s
	// s.mu stays locked across the suspend; the scheduler's SEM_WAIT
	// handler releases it only once this task is safely recorded as a
	// waiter, see worker.go's handleSemWait.
	ec.task.tramp.Suspend(reasonSemWait)
}

// Post increments the semaphore's count, or -- if a task is already
// waiting -- wakes the longest-waiting one instead of incrementing.
func (s *Semaphore) Post() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		fault.Panicf("gmpcoro: Post called on a destroyed semaphore")
	}
	waiter, ok := s.waiters.PopFront()
	if !ok {
		s.count++
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if !transitionWaitingToRunning(waiter) {
		return // was the main coroutine; its rendezvous channel is already unblocked
	}

	// Route through whichever worker is calling Post, the same policy the
	// original used (enqueue onto the current processor's run queue). If
	// Post is called from the main coroutine there is no such worker --
	// worker 0 never runs a scheduler loop -- so the woken task goes
	// straight to the global queue instead, where any real worker will
	// eventually pick it up.
	ec := s.rt.mustCurrent()
	if ec.worker == nil {
		s.rt.globalQ.pushBack(waiter.handle)
		return
	}
	s.rt.balancingPush(ec.worker, waiter.handle)
}

// Destroy marks the semaphore unusable. It panics if tasks are still
// waiting on it, since posting to them after Destroy would mean waking a
// task nobody will ever schedule work for again.
func (s *Semaphore) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.waiters.Empty() {
		fault.Panicf("gmpcoro: semaphore destroyed with waiters still pending")
	}
	s.destroyed = true
}
