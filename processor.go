package gmpcoro

import "github.com/coropkg/gmpcoro/internal/fault"

// processor is a worker's scheduling state -- the "P" of the model. Each
// worker owns exactly one, and since only that worker's goroutine ever
// touches it, none of its fields need their own lock.
type processor struct {
	// running is the local run queue workers pop from and push onto in
	// their scheduling loop.
	running ring[*g]

	// all records every G ever enqueued through this processor, purely for
	// best-effort shutdown diagnostics (see Runtime.Shutdown). Unlike
	// running, overflowing all is not a bug: it is sized the same as every
	// other ring for locality, but a long-lived Runtime started from main
	// can create far more tasks than fit in it, so a full push is silently
	// dropped rather than treated as fatal.
	all ring[*g]

	// dead records tasks that exited while owned by this processor, again
	// for best-effort diagnostics only.
	dead ring[*g]

	// waitTarget and blockedSem are scratch fields the scheduler loop uses
	// to hand a suspending task's WAIT or SEM_WAIT payload from the
	// trampoline call site back to the dispatcher, since the reason code
	// alone does not carry the target/semaphore.
	waitTarget *Task
	blockedSem *Semaphore
}

// balancingTargetSize computes the ideal local run-queue depth for a worker,
// given the number of currently live tasks and the number of workers
// sharing them: ceil(liveTasks / workers), clamped so it never reaches the
// ring's own capacity.
func balancingTargetSize(liveTasks int64, workers int) int {
	if workers <= 0 {
		return 0
	}
	target := (liveTasks + int64(workers) - 1) / int64(workers)
	if target > runQueueCapacity-1 {
		target = runQueueCapacity - 1
	}
	if target < 0 {
		target = 0
	}
	return int(target)
}

// balancingPush enqueues h onto w's local run queue, first spilling excess
// work to the global queue if the local queue has grown past twice the
// current target size. This is the two-sided half of the load-balancing
// policy: pop (balancingPop, in worker.go) is the other half.
func (rt *Runtime) balancingPush(w *worker, h *g) {
	p := w.proc
	target := balancingTargetSize(rt.loadLiveTasks(), len(rt.workers))
	if target != 0 && p.running.size() > target<<1 {
		gl := rt.globalQ.lock()
		for p.running.size() > target-1 {
			spilled, ok := p.running.pop()
			if !ok {
				break
			}
			spilled.owner = nil
			gl.PushBack(spilled)
		}
		rt.globalQ.unlock()
	}
	h.owner = w
	if !p.running.push(h) {
		fault.Panicf("gmpcoro: worker %d's local run queue is still full after balancing spill", w.id)
	}
}

// balancingPop removes and returns the next G to run on w, first topping up
// the local run queue from the global queue if it has fallen under half the
// current target size.
func (rt *Runtime) balancingPop(w *worker) (*g, bool) {
	p := w.proc
	target := balancingTargetSize(rt.loadLiveTasks(), len(rt.workers))
	if p.running.size() < (target+1)/2 {
		gl := rt.globalQ.lock()
		for p.running.size() < target {
			pulled, ok := gl.PopFront()
			if !ok {
				break
			}
			pulled.owner = w
			p.running.push(pulled)
		}
		rt.globalQ.unlock()
	}
	return p.running.pop()
}
