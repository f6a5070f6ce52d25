// Package queue implements a doubly-linked FIFO/LIFO queue over packed
// elements. It shares the element.Pack factory with the skiplist package
// and serves as a simple upstream producer: payloads can be staged here in
// arrival order and drained into an ordered index later.
package queue

import (
	"fmt"
	"strings"

	"github.com/repmop/datalib/element"
)

type node[K any] struct {
	elem *element.Element[K]
	next *node[K]
	prev *node[K]
}

// Queue holds elements in insertion order. The zero value is not usable;
// call New. Methods tolerate a nil receiver and treat it as empty.
type Queue[K any] struct {
	head   *node[K]
	tail   *node[K]
	length int
}

// New creates an empty queue.
func New[K any]() *Queue[K] {
	return &Queue[K]{}
}

// Len returns the number of elements in the queue.
func (q *Queue[K]) Len() int {
	if q == nil {
		return 0
	}
	return q.length
}

// PushHead inserts e at the head of the queue in O(1).
func (q *Queue[K]) PushHead(e *element.Element[K]) bool {
	if q == nil || e == nil {
		return false
	}
	n := &node[K]{elem: e, next: q.head}
	if q.head != nil {
		q.head.prev = n
	} else {
		q.tail = n
	}
	q.head = n
	q.length++
	return true
}

// PushTail inserts e at the tail of the queue in O(1).
func (q *Queue[K]) PushTail(e *element.Element[K]) bool {
	if q == nil || e == nil {
		return false
	}
	n := &node[K]{elem: e, prev: q.tail}
	if q.tail != nil {
		q.tail.next = n
	} else {
		q.head = n
	}
	q.tail = n
	q.length++
	return true
}

// PopHead removes and returns the element at the head of the queue.
// The second return is false when the queue is empty.
func (q *Queue[K]) PopHead() (*element.Element[K], bool) {
	if q == nil || q.head == nil {
		return nil, false
	}
	n := q.head
	q.head = n.next
	if q.head != nil {
		q.head.prev = nil
	} else {
		q.tail = nil
	}
	n.next = nil
	q.length--
	return n.elem, true
}

// Reverse flips the order of the queue in place. No effect on an empty
// queue.
func (q *Queue[K]) Reverse() {
	if q == nil {
		return
	}
	for n := q.head; n != nil; n = n.prev {
		n.next, n.prev = n.prev, n.next
	}
	q.head, q.tail = q.tail, q.head
}

// Find scans for the first element whose key matches under cmp, in
// insertion order. It returns nil and false when no element matches.
func (q *Queue[K]) Find(key K, cmp func(a, b K) int) (*element.Element[K], bool) {
	if q == nil || cmp == nil {
		return nil, false
	}
	for n := q.head; n != nil; n = n.next {
		if cmp(n.elem.Key(), key) == 0 {
			return n.elem, true
		}
	}
	return nil, false
}

// MoveToTail removes the first element whose key matches under cmp and
// reinserts it at the tail, reporting whether a match was found.
func (q *Queue[K]) MoveToTail(key K, cmp func(a, b K) int) bool {
	if q == nil || cmp == nil {
		return false
	}
	for n := q.head; n != nil; n = n.next {
		if cmp(n.elem.Key(), key) != 0 {
			continue
		}
		if n == q.tail {
			return true
		}
		if n.prev != nil {
			n.prev.next = n.next
		} else {
			q.head = n.next
		}
		n.next.prev = n.prev
		n.prev = q.tail
		n.next = nil
		q.tail.next = n
		q.tail = n
		return true
	}
	return false
}

// String renders the queued keys head-first in the same style as the
// skiplist's Render output.
func (q *Queue[K]) String() string {
	if q == nil {
		return "queue: -|"
	}
	var b strings.Builder
	b.WriteString("queue:")
	for n := q.head; n != nil; n = n.next {
		if n != q.head {
			b.WriteString(" ->")
		}
		fmt.Fprintf(&b, " |%v|", n.elem.Key())
	}
	b.WriteString(" -|")
	return b.String()
}
