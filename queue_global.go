package gmpcoro

import (
	"sync"

	"github.com/coropkg/gmpcoro/internal/dlist"
)

// globalQueue is the shared overflow queue every worker spills into and
// pulls from when its own local run queue is out of balance, and the only
// place a task created from the main coroutine can land (main has no local
// run queue of its own to push onto). Unlike a worker's local ring, it is
// unbounded and protected by a single mutex, since by construction more
// than one goroutine may touch it at once.
type globalQueue struct {
	mu   sync.Mutex
	list dlist.List[*g]
}

func newGlobalQueue() *globalQueue {
	return &globalQueue{list: dlist.New[*g]()}
}

// lock acquires the queue's mutex and returns the underlying list for
// direct manipulation. Callers must call unlock when done.
func (q *globalQueue) lock() *dlist.List[*g] {
	q.mu.Lock()
	return &q.list
}

func (q *globalQueue) unlock() { q.mu.Unlock() }

// pushBack is a convenience wrapper for the common case of a single,
// uncontested append.
func (q *globalQueue) pushBack(h *g) {
	q.mu.Lock()
	q.list.PushBack(h)
	q.mu.Unlock()
}

// popFront is a convenience wrapper for the common case of a single,
// uncontested removal.
func (q *globalQueue) popFront() (*g, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.list.PopFront()
}
