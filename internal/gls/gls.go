// Package gls emulates goroutine-local storage. The runtime needs, from
// inside a free function like Yield or Wait, to find "the task currently
// running on this goroutine" without the caller passing it explicitly --
// the same problem the original implementation solved with a pthread TLS
// key. Go has no supported per-goroutine storage, so this package uses the
// well-known trick of parsing the goroutine ID back out of
// runtime.Stack's header line.
package gls

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// ID returns the numeric id of the calling goroutine. It is not cheap --
// it allocates and formats a stack trace -- so callers should call it once
// per suspend/resume rather than per scheduling tick.
func ID() uint64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	buf = bytes.TrimPrefix(buf, []byte("goroutine "))
	if i := bytes.IndexByte(buf, ' '); i >= 0 {
		buf = buf[:i]
	}
	id, err := strconv.ParseUint(string(buf), 10, 64)
	if err != nil {
		panic("gls: could not parse goroutine id out of runtime.Stack header: " + err.Error())
	}
	return id
}

// Map associates a value of type T with individual goroutines, keyed by
// their ID. It is safe for concurrent use from many goroutines at once.
type Map[T any] struct {
	mu sync.RWMutex
	m  map[uint64]T
}

// NewMap returns an empty goroutine-local map.
func NewMap[T any]() *Map[T] {
	return &Map[T]{m: make(map[uint64]T)}
}

// Set associates v with the calling goroutine.
func (m *Map[T]) Set(v T) {
	m.SetFor(ID(), v)
}

// SetFor associates v with the goroutine identified by id. It exists for
// the scheduler, which must register or re-point a task's entry on behalf
// of the task's own goroutine before resuming it -- the goroutine doing the
// resuming is not the goroutine the entry belongs to.
func (m *Map[T]) SetFor(id uint64, v T) {
	m.mu.Lock()
	m.m[id] = v
	m.mu.Unlock()
}

// Get returns the value associated with the calling goroutine, if any.
func (m *Map[T]) Get() (v T, ok bool) {
	m.mu.RLock()
	v, ok = m.m[ID()]
	m.mu.RUnlock()
	return v, ok
}

// DeleteID removes the entry for the goroutine identified by id.
func (m *Map[T]) DeleteID(id uint64) {
	m.mu.Lock()
	delete(m.m, id)
	m.mu.Unlock()
}
