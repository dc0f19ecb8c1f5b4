package gmpcoro

// Yield cooperatively suspends the calling task, letting its worker run
// something else, and requeues it to run again later. Called from the main
// coroutine, it is a no-op: main has nothing to yield to in the sense this
// runtime means it, since it is not a scheduled task at all.
func (rt *Runtime) Yield() {
	ec := rt.mustCurrent()
	if ec.task.isMain {
		return
	}
	ec.task.tramp.Suspend(reasonYield)
}
