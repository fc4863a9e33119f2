package listq

import "testing"

func TestMergeTieBreak(t *testing.T) {
	// Equal values compare the same from the outside, so check the
	// tie-break on the nodes themselves: the left chain's node must
	// come out first.
	left := &node{value: "k"}
	right := &node{value: "k"}
	got := merge(left, right)
	if got != left || got.next != right {
		t.Fatal("merge preferred the right chain on equal values")
	}
	if right.next != nil {
		t.Fatal("merged chain is unterminated")
	}
}

func TestMergeSortSplitsWithoutLength(t *testing.T) {
	// Chains handed to mergeSort directly have no count to consult;
	// the slow/fast split has to cope with any length, including the
	// single node base case.
	n := &node{value: "solo"}
	if got := mergeSort(n); got != n || got.next != nil {
		t.Fatal("single node chain changed")
	}

	a := &node{value: "b"}
	b := &node{value: "a"}
	a.next = b
	got := mergeSort(a)
	if got != b || got.next != a || a.next != nil {
		t.Fatal("two node chain not sorted")
	}
}
