package gmpcoro

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/coropkg/gmpcoro/internal/fault"
	"github.com/coropkg/gmpcoro/internal/gls"
)

// execCtx is what the goroutine-local lookup resolves to: the task running
// on the calling goroutine, and -- unless that task is the main coroutine --
// the worker currently driving it.
type execCtx struct {
	task   *Task
	worker *worker
}

// Runtime is one self-contained scheduler: a fixed pool of workers sharing
// a global overflow queue, plus the main coroutine, which is whichever
// goroutine called New.
//
// A *Runtime is safe for concurrent use by every task and worker it owns,
// but New itself must be called from the goroutine that will act as the
// main coroutine -- the one that will call Start, Wait, Yield and the
// Semaphore methods directly rather than from inside a started task.
type Runtime struct {
	cfg      Config
	workers  []*worker
	globalQ  *globalQueue
	current  *gls.Map[execCtx]
	mainTask *Task

	liveTasks int64 // atomic

	shuttingDown atomic.Bool
	wg           sync.WaitGroup

	log zerolog.Logger
}

// New builds and starts a Runtime: it spins up cfg.Workers-1 background
// workers (worker 0 is reserved for the main coroutine) and registers the
// calling goroutine as the main coroutine. It must be called exactly once
// per Runtime, from the goroutine that will drive it.
func New(opts ...Option) (*Runtime, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fault.Wrap(err, "gmpcoro: invalid configuration")
	}

	rt := &Runtime{
		cfg:     cfg,
		globalQ: newGlobalQueue(),
		current: gls.NewMap[execCtx](),
		log:     cfg.Logger,
	}

	rt.mainTask = newMainTask()
	rt.current.Set(execCtx{task: rt.mainTask})

	rt.workers = make([]*worker, cfg.Workers)
	for i := range rt.workers {
		rt.workers[i] = &worker{
			id:   i,
			rt:   rt,
			proc: &processor{},
			stop: make(chan struct{}),
		}
	}
	for i := 1; i < len(rt.workers); i++ {
		rt.wg.Add(1)
		go rt.workers[i].run()
	}

	rt.log.Info().Int("workers", cfg.Workers).Msg("gmpcoro runtime started")
	return rt, nil
}

// mustCurrent resolves the calling goroutine's execCtx, panicking if it is
// not the main coroutine or a goroutine running inside one of this
// Runtime's tasks. Every public entry point that needs to know "who is
// calling me" routes through this.
func (rt *Runtime) mustCurrent() execCtx {
	ec, ok := rt.current.Get()
	if !ok {
		fault.Panicf("gmpcoro: called from a goroutine that is neither the runtime's main coroutine nor one of its tasks")
	}
	return ec
}

func (rt *Runtime) loadLiveTasks() int64        { return atomic.LoadInt64(&rt.liveTasks) }
func (rt *Runtime) incrementLiveTasks()         { atomic.AddInt64(&rt.liveTasks, 1) }
func (rt *Runtime) decrementLiveTasks()         { atomic.AddInt64(&rt.liveTasks, -1) }
func (rt *Runtime) isShuttingDown() bool        { return rt.shuttingDown.Load() }

// Start creates a new task running entry(arg) and enqueues it for
// scheduling, returning a handle usable with Wait or WaitAny. The task
// itself does not begin running until some worker dispatches it.
func (rt *Runtime) Start(name string, entry func(any), arg any) *Task {
	t := newTask(name, entry, arg)
	rt.incrementLiveTasks()

	ec := rt.mustCurrent()
	creatorProc := rt.workers[0].proc
	if ec.worker != nil {
		creatorProc = ec.worker.proc
	}
	creatorProc.all.push(t.handle) // best-effort bookkeeping only, see processor.go

	if ec.worker == nil {
		rt.globalQ.pushBack(t.handle)
	} else {
		rt.balancingPush(ec.worker, t.handle)
	}
	return t
}

// Shutdown stops every worker once its current task (if any) reaches a
// suspension point, then returns. It does not cancel or kill tasks still
// in flight; callers are expected to have joined everything they care
// about first. Tasks still live when Shutdown returns are logged, not
// forcibly terminated, matching the original's best-effort teardown.
func (rt *Runtime) Shutdown() {
	rt.shuttingDown.Store(true)
	for i := 1; i < len(rt.workers); i++ {
		close(rt.workers[i].stop)
	}
	rt.wg.Wait()

	for _, w := range rt.workers {
		w.proc.all.each(func(h *g) {
			h.task.mu.Lock()
			status := h.task.status
			name := h.task.name
			h.task.mu.Unlock()
			if status != StatusDead {
				rt.log.Warn().Str("task", name).Stringer("status", status).Msg("gmpcoro: task still live at shutdown")
			}
		})
	}
	rt.log.Info().Msg("gmpcoro runtime shut down")
}

// Stats is a point-in-time snapshot of scheduler load, useful for logging
// or tests; it is not part of the scheduling algorithm itself.
type Stats struct {
	Workers              int
	LiveTasks            int64
	GlobalQueueDepth      int
	ProcessorQueueDepths []int
}

// Stats returns a snapshot of the runtime's current load.
func (rt *Runtime) Stats() Stats {
	gl := rt.globalQ.lock()
	depth := gl.Len()
	rt.globalQ.unlock()

	depths := make([]int, len(rt.workers))
	for i, w := range rt.workers {
		depths[i] = w.proc.running.size()
	}
	return Stats{
		Workers:              len(rt.workers),
		LiveTasks:            rt.loadLiveTasks(),
		GlobalQueueDepth:      depth,
		ProcessorQueueDepths: depths,
	}
}
