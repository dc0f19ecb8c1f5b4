// Package gmpcoro is a user-space cooperative coroutine runtime modeled on
// Go's own G-M-P scheduler: tasks (G) run on workers (M), each driving one
// processor's (P) local run queue, spilling into and pulling from a shared
// global queue to keep load roughly even across workers.
//
// Unlike the OS threads the original scheduler multiplexed, a task here
// runs on its own goroutine; cooperative suspension (Yield, Wait,
// Semaphore.Wait) hands control back to the worker over a channel pair
// instead of a setjmp/longjmp stack switch. Scheduling is strictly
// cooperative: a task that never yields, waits, or returns will never be
// preempted, and will starve its worker.
//
// A task progresses through exactly four states: NEW, RUNNING, WAITING,
// and DEAD, and DEAD is terminal. Joining (Wait) is single-consumer: only
// the first caller to Wait on a given task observes it; every later call
// gets ErrAlreadyWaited.
//
// This package does not implement preemption, automatic stack growth,
// fairness beyond FIFO ordering within a queue, task panics recovery,
// persistence, or any form of I/O, timer, or network integration --
// scheduling many independent units of work on a fixed pool of workers is
// the whole of its job.
package gmpcoro
