package gmpcoro

import "github.com/coropkg/gmpcoro/internal/fault"

// Wait blocks the calling task (or the main coroutine) until target has run
// to completion. Exactly one Wait call may succeed per target: a second
// call, whether from the same caller or a different one, returns
// ErrAlreadyWaited instead of blocking. Waiting on the main coroutine's own
// task, or passing nil, is a programming error and panics.
func (rt *Runtime) Wait(target *Task) error {
	if target == nil {
		fault.Panicf("gmpcoro: Wait called with a nil task handle")
	}
	if target.isMain {
		fault.Panicf("gmpcoro: Wait called with the main coroutine's own handle")
	}

	target.mu.Lock()
	if target.joined {
		target.mu.Unlock()
		return ErrAlreadyWaited
	}
	target.joined = true
	if target.status == StatusDead {
		target.mu.Unlock()
		return nil
	}

	ec := rt.mustCurrent()
	if ec.task.isMain {
		target.waiters.PushBack(ec.task)
		target.mu.Unlock()
		<-ec.task.mainDone
		return nil
	}

	target.mu.Unlock()
	ec.worker.proc.waitTarget = target
	ec.task.tramp.Suspend(reasonWait)
	return nil
}
