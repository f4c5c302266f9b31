package chain

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Node is one link of a singly-linked chain. A chain is referenced by its head
// node and nil is the empty chain. Each node owns its successor.
type Node[T any] struct {
	value T
	next  *Node[T]
}

func New[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) Next() *Node[T] {
	return n.next
}

func (n *Node[T]) SetNext(next *Node[T]) {
	n.next = next
}

func FromSlice[T any](values []T) *Node[T] {
	var head *Node[T]
	tail := &head
	for _, v := range values {
		*tail = New(v)
		tail = &(*tail).next
	}
	return head
}

func Values[T any](head *Node[T]) []T {
	values := make([]T, 0)
	for n := head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

func Len[T any](head *Node[T]) int {
	count := 0
	for n := head; n != nil; n = n.next {
		count++
	}
	return count
}

func Format[T any](head *Node[T]) string {
	if head == nil {
		return "EMPTY"
	}
	var b strings.Builder
	for n := head; n != nil; n = n.next {
		if n != head {
			b.WriteString(" -> ")
		}
		fmt.Fprint(&b, n.value)
	}
	return b.String()
}

func IsSorted[T cmp.Ordered](head *Node[T]) bool {
	return CheckSorted(head) == nil
}

// CheckSorted reports the first adjacent pair that breaks ascending order.
func CheckSorted[T cmp.Ordered](head *Node[T]) error {
	pos := 0
	for n := head; n != nil && n.next != nil; n = n.next {
		if n.next.value < n.value {
			return errors.Errorf("chain is not sorted at position %d: %v > %v", pos, n.value, n.next.value)
		}
		pos++
	}
	return nil
}
