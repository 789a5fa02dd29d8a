package rbush

// Search returns all items whose box intersects bbox, in traversal order.
func (tr *RBush[T]) Search(bbox BBox) []T {
	n := tr.root
	if !n.bbox.Intersects(bbox) {
		return nil
	}

	var result []T
	var stack []*node[T]
	for n != nil {
		if n.leaf {
			for _, item := range n.items {
				if bbox.Intersects(tr.acc.ToBBox(item)) {
					result = append(result, item)
				}
			}
		} else {
			for _, child := range n.children {
				if !bbox.Intersects(child.bbox) {
					continue
				}
				if bbox.Contains(child.bbox) {
					// Everything below is a hit, skip the box tests.
					result = tr.collect(child, result)
				} else {
					stack = append(stack, child)
				}
			}
		}
		if len(stack) == 0 {
			break
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
	return result
}

// Collides reports whether any item's box intersects bbox.
func (tr *RBush[T]) Collides(bbox BBox) bool {
	n := tr.root
	if !n.bbox.Intersects(bbox) {
		return false
	}

	var stack []*node[T]
	for n != nil {
		if n.leaf {
			for _, item := range n.items {
				if bbox.Intersects(tr.acc.ToBBox(item)) {
					return true
				}
			}
		} else {
			for _, child := range n.children {
				if !bbox.Intersects(child.bbox) {
					continue
				}
				if bbox.Contains(child.bbox) {
					return true
				}
				stack = append(stack, child)
			}
		}
		if len(stack) == 0 {
			break
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
	return false
}

// All returns every item in the index.
func (tr *RBush[T]) All() []T {
	return tr.collect(tr.root, nil)
}

// collect appends every item under n to out, iteratively.
func (tr *RBush[T]) collect(n *node[T], out []T) []T {
	var stack []*node[T]
	for n != nil {
		if n.leaf {
			out = append(out, n.items...)
		} else {
			stack = append(stack, n.children...)
		}
		if len(stack) == 0 {
			break
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
	return out
}
