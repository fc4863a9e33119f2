package listq

// Sort sorts the values into ascending byte-wise order by relinking
// the existing nodes. The sort is stable: values that compare equal
// keep their relative order. It is a no-op if q is nil or holds fewer
// than two values.
func (q *Queue) Sort() {
	if q == nil || q.count < 2 {
		return
	}

	q.head = mergeSort(q.head)

	// Sorting moves the last node; find it again.
	end := q.head
	for end.next != nil {
		end = end.next
	}
	q.tail = end
}

// mergeSort sorts the chain starting at start and returns its new
// first node. It splits with a slow and a fast cursor, so no length
// is computed up front, and it merges by relinking, so no nodes are
// allocated.
func mergeSort(start *node) *node {
	if start == nil || start.next == nil {
		return start
	}

	// When fast reaches the end, slow is just before the midpoint.
	slow, fast := start, start
	for fast.next != nil && fast.next.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	left, right := start, slow.next
	slow.next = nil

	return merge(mergeSort(left), mergeSort(right))
}

// merge interleaves two sorted chains into one. On equal values the
// left chain's node goes first, which is what keeps Sort stable.
func merge(left, right *node) *node {
	var head, last *node
	for left != nil || right != nil {
		pick := left
		if left == nil || (right != nil && right.value < left.value) {
			pick = right
			right = right.next
		} else {
			left = left.next
		}

		if head == nil {
			head = pick
		} else {
			last.next = pick
		}
		last = pick
	}
	last.next = nil

	return head
}
