package gmpcoro

import "github.com/coropkg/gmpcoro/internal/fault"

// WaitAny blocks until at least one of tasks has reached DEAD, then Waits
// on (joining) the first one found. It generalizes Wait to "join whichever
// of these finishes first" by polling: on every pass it checks every
// candidate's status in argument order, and if none is ready yet it yields.
// From a task, that lets its worker run something else between passes; from
// the main coroutine Yield is a no-op, so main polls without pausing.
//
// The returned *Task is always the one WaitAny actually joined; its error
// is whatever that Wait call returned (ErrAlreadyWaited if some other
// caller already joined it first).
func (rt *Runtime) WaitAny(tasks ...*Task) (*Task, error) {
	if len(tasks) == 0 {
		fault.Panicf("gmpcoro: WaitAny called with no tasks")
	}
	for {
		for _, t := range tasks {
			if t.Status() == StatusDead {
				return t, rt.Wait(t)
			}
		}
		rt.Yield()
	}
}
