// Package dlist is a small doubly linked FIFO list used wherever the
// runtime needs an unbounded waiter or overflow queue: the global run
// queue, a task's join-waiters, and a semaphore's wait list.
//
// List carries no lock of its own. Every caller already owns a mutex that
// covers the structure it embeds the list in (the global queue's mutex, a
// task's status mutex, a semaphore's mutex) and the lock/unlock discipline
// around that outer mutex is what makes List safe to use.
package dlist

// List is a FIFO queue of values of type T, implemented as a doubly linked
// list so Enqueue/Dequeue are both O(1) with no resizing or shifting.
type List[T any] struct {
	head, tail *node[T]
	size       int
}

type node[T any] struct {
	value      T
	prev, next *node[T]
}

// New returns an empty list.
func New[T any]() List[T] {
	return List[T]{}
}

// PushBack appends v to the tail of the list.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the value at the head of the list.
func (l *List[T]) PopFront() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	n.next, n.prev = nil, nil
	l.size--
	return n.value, true
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Len returns the number of elements currently in the list.
func (l *List[T]) Len() int { return l.size }

// Each walks the list from head to tail without removing anything, calling
// fn for every element. It exists for best-effort diagnostics (e.g. logging
// leaked entries at shutdown), not for hot-path use.
func (l *List[T]) Each(fn func(T)) {
	for n := l.head; n != nil; n = n.next {
		fn(n.value)
	}
}
