// Package mergesort sorts singly-linked chains from lib/chain.
//
// The sort is destructive: Split relinks the nodes it is given, and after
// MergeSort returns the caller must only use the returned head.
package mergesort

import (
	"cmp"

	"github.com/cxxxr/chainsort/lib/chain"
)

func MergeSort[T cmp.Ordered](head *chain.Node[T]) *chain.Node[T] {
	return MergeSortFunc(head, cmp.Less[T])
}

// MergeSortFunc sorts head in ascending order of less and returns the new head.
// Empty and single node chains are returned unchanged.
func MergeSortFunc[T any](head *chain.Node[T], less func(x, y T) bool) *chain.Node[T] {
	mergeSort(&head, less)
	return head
}

func mergeSort[T any](headPtr **chain.Node[T], less func(x, y T) bool) {
	head := *headPtr
	if head == nil || head.Next() == nil {
		return
	}

	a, b := Split(head)

	mergeSort(&a, less)
	mergeSort(&b, less)

	*headPtr = MergeFunc(a, b, less)
}

func MergeSortIterative[T cmp.Ordered](head *chain.Node[T]) *chain.Node[T] {
	return MergeSortIterativeFunc(head, cmp.Less[T])
}

type frame[T any] struct {
	head  *chain.Node[T]
	right *chain.Node[T]
	stage int
}

// MergeSortIterativeFunc gives the same result as MergeSortFunc, node for
// node, but keeps the pending halves on a heap allocated stack instead of the
// call stack.
func MergeSortIterativeFunc[T any](head *chain.Node[T], less func(x, y T) bool) *chain.Node[T] {
	stack := []*frame[T]{{head: head}}
	sorted := make([]*chain.Node[T], 0)

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		switch top.stage {
		case 0:
			if top.head == nil || top.head.Next() == nil {
				stack = stack[:len(stack)-1]
				sorted = append(sorted, top.head)
				continue
			}
			var left *chain.Node[T]
			left, top.right = Split(top.head)
			top.stage = 1
			stack = append(stack, &frame[T]{head: left})
		case 1:
			top.stage = 2
			stack = append(stack, &frame[T]{head: top.right})
		default:
			stack = stack[:len(stack)-1]
			n := len(sorted)
			merged := MergeFunc(sorted[n-2], sorted[n-1], less)
			sorted = append(sorted[:n-2], merged)
		}
	}

	return sorted[0]
}
