// Package listq implements a singly-linked FIFO queue of strings. It
// keeps a reference to the last node so that insertion at the tail is
// constant time, and it supports in-place reversal and a stable,
// in-place merge sort over the node chain.
//
// A zero value Queue is ready to use. Every method also tolerates a
// nil *Queue and reports a neutral result instead of panicking, so a
// caller holding an optional queue does not need to guard each call.
//
// A Queue is not safe for concurrent use.
package listq

import "iter"

// A Queue is an ordered chain of string values. The front of the
// chain is the head, the back is the tail. Values are inserted at
// either end and removed from the head only.
type Queue struct {
	head, tail *node
	count      int
}

type node struct {
	value string
	next  *node
}

// New returns an empty queue.
func New() *Queue {
	return new(Queue)
}

// Len returns the number of values in the queue, or 0 if q is nil.
// It reads a cached count and never walks the chain.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.count
}

// IsEmpty reports whether the queue contains no values.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// InsertHead inserts v as the new first value. It reports false, and
// changes nothing, if q is nil.
func (q *Queue) InsertHead(v string) bool {
	if q == nil {
		return false
	}

	n := &node{value: v, next: q.head}
	q.head = n
	q.count++

	// The first value inserted is also the last one.
	if n.next == nil {
		q.tail = n
	}

	return true
}

// InsertTail inserts v as the new last value. The cached tail makes
// this constant time regardless of the queue's length. It reports
// false, and changes nothing, if q is nil.
func (q *Queue) InsertTail(v string) bool {
	if q == nil {
		return false
	}

	n := &node{value: v}
	if q.tail == nil {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.count++

	return true
}

// Peek returns the first value without removing it. It reports false
// if q is nil or empty.
func (q *Queue) Peek() (string, bool) {
	if q == nil || q.head == nil {
		return "", false
	}
	return q.head.value, true
}

// PopHead removes the first value and returns it. It reports false
// if q is nil or empty.
func (q *Queue) PopHead() (string, bool) {
	if q == nil || q.head == nil {
		return "", false
	}

	n := q.head
	q.head = n.next
	n.next = nil
	q.count--
	if q.head == nil {
		q.tail = nil
	}

	return n.value, true
}

// RemoveHead removes the first value, copying it into dst for callers
// that manage their own buffer. At most len(dst)-1 bytes of the value
// are copied and a NUL byte is written after them, so the value is
// truncated rather than overflowing a short buffer. A nil or empty
// dst skips the copy but still removes the value. RemoveHead reports
// false, and changes nothing, if q is nil or empty.
func (q *Queue) RemoveHead(dst []byte) bool {
	if q == nil || q.head == nil {
		return false
	}

	if len(dst) > 0 {
		n := copy(dst[:len(dst)-1], q.head.value)
		dst[n] = 0
	}

	_, ok := q.PopHead()
	return ok
}

// Clear removes every value, leaving the queue empty. The chain's
// links are severed while unwinding so that removed nodes do not keep
// each other reachable. Clear is a no-op on a nil or empty queue and
// is safe to call more than once.
func (q *Queue) Clear() {
	if q == nil {
		return
	}

	for n := q.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	q.head = nil
	q.tail = nil
	q.count = 0
}

// Reverse reverses the order of the values in place by relinking the
// existing nodes, without allocating. The former head becomes the
// tail and vice versa. It is a no-op if q is nil or empty.
func (q *Queue) Reverse() {
	if q == nil || q.head == nil {
		return
	}

	var prev *node
	cur := q.head
	q.tail = cur
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	q.head = prev
}

// All returns an iterator over the values of the queue in order from
// head to tail. The queue must not be modified during iteration.
func (q *Queue) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if q == nil {
			return
		}
		for cur := q.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}
