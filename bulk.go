package rbush

import "math"

// Load bulk-inserts a batch of items using the OMT (Overlap Minimizing
// Tree) algorithm, then merges the resulting subtree into the existing tree
// by height. Batches smaller than the minimum node fill are inserted one by
// one, where the bulk machinery would cost more than it saves. Returns the
// index for chaining.
func (tr *RBush[T]) Load(items []T) *RBush[T] {
	if len(items) == 0 {
		return tr
	}

	if len(items) < tr.minEntries {
		for _, item := range items {
			tr.Insert(item)
		}
		return tr
	}

	// Build from a copy, the tiling selection reorders it in place.
	data := append([]T(nil), items...)
	sub := tr.build(data, 0, len(data)-1, 0)
	tr.size += len(data)

	switch {
	case tr.root.count() == 0:
		tr.root = sub
	case tr.root.height == sub.height:
		tr.splitRoot(tr.root, sub)
	default:
		if tr.root.height < sub.height {
			// Insert the smaller tree into the larger one.
			tr.root, sub = sub, tr.root
		}
		tr.insertSubtree(sub, tr.root.height-sub.height-1)
	}
	return tr
}

// build constructs a packed subtree over items[left..right]. A zero height
// means the target height and root fan-out are still to be derived from the
// batch size.
func (tr *RBush[T]) build(items []T, left, right, height int) *node[T] {
	N := right - left + 1
	M := tr.maxEntries

	if N <= M {
		n := &node[T]{
			bbox:   EmptyBBox(),
			height: 1,
			leaf:   true,
			items:  append([]T(nil), items[left:right+1]...),
		}
		tr.calcBBox(n)
		return n
	}

	if height == 0 {
		// Target height of the bulk-loaded tree.
		height = int(math.Ceil(math.Log(float64(N)) / math.Log(float64(M))))
		// Target number of root entries to maximize storage utilization.
		M = int(math.Ceil(float64(N) / math.Pow(float64(tr.maxEntries), float64(height-1))))
	}

	n := &node[T]{bbox: EmptyBBox(), height: height}

	// Split the batch into M near-square tiles: column slices by X, then
	// leaf-sized runs by Y within each column.
	N2 := int(math.Ceil(float64(N) / float64(M)))
	N1 := N2 * int(math.Ceil(math.Sqrt(float64(M))))

	lessX := func(a, b T) bool { return tr.acc.MinX(a) < tr.acc.MinX(b) }
	lessY := func(a, b T) bool { return tr.acc.MinY(a) < tr.acc.MinY(b) }

	multiSelect(items, left, right, N1, lessX)

	for i := left; i <= right; i += N1 {
		right2 := min(i+N1-1, right)
		multiSelect(items, i, right2, N2, lessY)

		for j := i; j <= right2; j += N2 {
			right3 := min(j+N2-1, right2)
			n.children = append(n.children, tr.build(items, j, right3, height-1))
		}
	}

	tr.calcBBox(n)
	return n
}
