package mergesort

import "github.com/cxxxr/chainsort/lib/chain"

// Split cuts head into two chains in place. The first holds floor(n/2) nodes
// and the second ceil(n/2), so a single node ends up entirely in second.
func Split[T any](head *chain.Node[T]) (first, second *chain.Node[T]) {
	if head == nil {
		return nil, nil
	}
	if head.Next() == nil {
		return nil, head
	}

	// walker moves two links for every one link of slow
	walker := head
	slow := head
	var prev *chain.Node[T]
	for walker != nil {
		walker = walker.Next()
		if walker != nil {
			walker = walker.Next()
			prev = slow
			slow = slow.Next()
		}
	}

	prev.SetNext(nil)

	return head, slow
}
