package rbush

// Remove deletes one item equal to the given one, then prunes emptied nodes
// and re-tightens ancestor boxes along the way up. Removing an absent item
// is a no-op. Requires Accessors.Equal; panics if it was not supplied.
//
// The traversal is an explicit-stack depth-first descent into nodes whose
// box contains the target's box, with backtracking to the next unexplored
// sibling when a branch is exhausted.
func (tr *RBush[T]) Remove(item T) *RBush[T] {
	if tr.acc.Equal == nil {
		panic("rbush: Remove requires the Equal accessor")
	}

	bbox := tr.acc.ToBBox(item)
	var (
		path    []*node[T]
		indexes []int
		i       int
		parent  *node[T]
		goingUp bool
	)

	n := tr.root
	for n != nil || len(path) > 0 {
		if n == nil {
			// Branch exhausted, back up one level.
			n = path[len(path)-1]
			path = path[:len(path)-1]
			if len(path) > 0 {
				parent = path[len(path)-1]
			} else {
				parent = nil
			}
			i = indexes[len(indexes)-1]
			indexes = indexes[:len(indexes)-1]
			goingUp = true
		}

		if n.leaf {
			if index := tr.findItem(item, n.items); index != -1 {
				copy(n.items[index:], n.items[index+1:])
				var zero T
				n.items[len(n.items)-1] = zero
				n.items = n.items[:len(n.items)-1]
				tr.size--
				path = append(path, n)
				tr.condense(path)
				return tr
			}
		}

		switch {
		case !goingUp && !n.leaf && n.bbox.Contains(bbox):
			// Descend into the first child; remember where to resume.
			path = append(path, n)
			indexes = append(indexes, i)
			i = 0
			parent = n
			n = n.children[0]
		case parent != nil:
			// Advance to the next sibling, or trigger backtracking.
			i++
			if i < len(parent.children) {
				n = parent.children[i]
				goingUp = false
			} else {
				n = nil
			}
		default:
			n = nil
		}
	}
	return tr
}

func (tr *RBush[T]) findItem(item T, items []T) int {
	for i := range items {
		if tr.acc.Equal(item, items[i]) {
			return i
		}
	}
	return -1
}

// condense walks the removal path from leaf to root, detaching nodes left
// empty and re-tightening the boxes of the rest.
func (tr *RBush[T]) condense(path []*node[T]) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if n.count() == 0 {
			if i > 0 {
				siblings := path[i-1].children
				for j, s := range siblings {
					if s == n {
						copy(siblings[j:], siblings[j+1:])
						siblings[len(siblings)-1] = nil
						path[i-1].children = siblings[:len(siblings)-1]
						break
					}
				}
			} else {
				tr.Clear()
			}
		} else {
			tr.calcBBox(n)
		}
	}
}
