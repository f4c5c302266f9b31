package mergesort

import (
	"cmp"

	"github.com/cxxxr/chainsort/lib/chain"
)

// Merge combines two ascending chains into one ascending chain.
// See MergeFunc for node ownership and ties.
func Merge[T cmp.Ordered](a, b *chain.Node[T]) *chain.Node[T] {
	return MergeFunc(a, b, cmp.Less[T])
}

// MergeFunc combines two chains that are each sorted by less. Inputs are not
// checked; unsorted inputs give unsorted output.
//
// If either chain is empty the other one is returned as is. Otherwise every
// value taken by comparison goes into a newly allocated node, and once one
// side runs out the rest of the other side is linked in without copying.
//
// less(a, b) is the only comparison made, so when the heads are equal the
// value of b is taken first.
func MergeFunc[T any](a, b *chain.Node[T], less func(x, y T) bool) *chain.Node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	take := func() T {
		var v T
		if less(a.Value(), b.Value()) {
			v = a.Value()
			a = a.Next()
		} else {
			v = b.Value()
			b = b.Next()
		}
		return v
	}

	result := chain.New(take())
	walker := result
	for a != nil && b != nil {
		node := chain.New(take())
		walker.SetNext(node)
		walker = node
	}

	if a == nil {
		walker.SetNext(b)
	} else {
		walker.SetNext(a)
	}

	return result
}
