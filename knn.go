package rbush

// knnEntry is a tagged priority-queue entry: either a tree node awaiting
// expansion or a concrete item ready to emit. Built only through nodeEntry
// and itemEntry, so a value that is neither cannot exist.
type knnEntry[T any] struct {
	node   *node[T]
	item   T
	isItem bool
	dist   float64
}

func nodeEntry[T any](n *node[T], dist float64) knnEntry[T] {
	return knnEntry[T]{node: n, dist: dist}
}

func itemEntry[T any](item T, dist float64) knnEntry[T] {
	return knnEntry[T]{item: item, isItem: true, dist: dist}
}

// KNNGeneric returns up to k items in ascending order of a caller-defined
// distance. distance is called with a nil item pointer and a node's box for
// internal nodes, or with the item and its box for leaf entries; returning
// ok=false prunes the candidate. The distance of a node must be a lower
// bound on the distance of every item beneath it, or the ordering guarantee
// is lost. An optional predicate filters accepted items. k <= 0 yields nil;
// exhausting the tree before k hits yields the partial result.
func (tr *RBush[T]) KNNGeneric(
	k int,
	distance func(item *T, box BBox) (float64, bool),
	predicate func(item T, dist float64) bool,
) []T {
	if k <= 0 {
		return nil
	}

	var result []T
	queue := newMinQueue(func(a, b knnEntry[T]) bool { return a.dist < b.dist })

	n := tr.root
	for n != nil {
		if n.leaf {
			for i := range n.items {
				item := n.items[i]
				if d, ok := distance(&item, tr.acc.ToBBox(item)); ok {
					queue.Push(itemEntry(item, d))
				}
			}
		} else {
			for _, child := range n.children {
				if d, ok := distance(nil, child.bbox); ok {
					queue.Push(nodeEntry(child, d))
				}
			}
		}

		// Emit items while they are provably nearer than any unexpanded
		// node left in the queue.
		for queue.Len() > 0 {
			top, _ := queue.Peek()
			if !top.isItem {
				break
			}
			queue.Pop()
			if predicate == nil || predicate(top.item, top.dist) {
				result = append(result, top.item)
				if len(result) == k {
					return result
				}
			}
		}

		next, err := queue.Pop()
		if err != nil {
			break
		}
		n = next.node
	}
	return result
}

// KNN returns up to k items nearest to the point (x, y) by squared
// Euclidean point-to-box distance, nearest first. predicate may be nil.
// A positive maxDistance drops candidates farther than that away; zero
// means unbounded.
func (tr *RBush[T]) KNN(x, y float64, k int, predicate func(item T) bool, maxDistance float64) []T {
	maxDistSq := maxDistance * maxDistance

	distance := func(_ *T, box BBox) (float64, bool) {
		d := box.DistSq(x, y)
		if maxDistance != 0 && d > maxDistSq {
			return 0, false
		}
		return d, true
	}

	var pred func(item T, dist float64) bool
	if predicate != nil {
		pred = func(item T, _ float64) bool { return predicate(item) }
	}
	return tr.KNNGeneric(k, distance, pred)
}
