package rbush

import "fmt"

// Check validates the structural invariants of the tree: uniform leaf
// depth, fan-out within capacity, boxes tight over their entries, and item
// count bookkeeping. Intended for tests; a failure indicates a tree
// algorithm bug, not an input error.
func (tr *RBush[T]) Check() error {
	if tr.root == nil {
		return fmt.Errorf("%w: nil root", ErrInvariant)
	}
	items, err := tr.checkNode(tr.root, true)
	if err != nil {
		return err
	}
	if items != tr.size {
		return fmt.Errorf("%w: item count %d does not match size %d", ErrInvariant, items, tr.size)
	}
	return nil
}

func (tr *RBush[T]) checkNode(n *node[T], isRoot bool) (items int, err error) {
	if n.leaf {
		if len(n.children) != 0 {
			return 0, fmt.Errorf("%w: leaf node with children", ErrInvariant)
		}
		if n.height != 1 {
			return 0, fmt.Errorf("%w: leaf node with height %d", ErrInvariant, n.height)
		}
	} else {
		if len(n.items) != 0 {
			return 0, fmt.Errorf("%w: internal node with items", ErrInvariant)
		}
		if len(n.children) == 0 {
			return 0, fmt.Errorf("%w: internal node without children", ErrInvariant)
		}
	}
	if n.count() > tr.maxEntries {
		return 0, fmt.Errorf("%w: node with %d entries exceeds capacity %d", ErrInvariant, n.count(), tr.maxEntries)
	}

	if !n.leaf {
		for _, child := range n.children {
			if child.height != n.height-1 {
				return 0, fmt.Errorf("%w: child height %d under node height %d", ErrInvariant, child.height, n.height)
			}
			childItems, err := tr.checkNode(child, false)
			if err != nil {
				return 0, err
			}
			items += childItems
		}
	} else {
		items = len(n.items)
	}

	if n.count() > 0 {
		tight := tr.partBBox(n, 0, n.count())
		if tight != n.bbox {
			return 0, fmt.Errorf("%w: node box %+v is not the tight union %+v", ErrInvariant, n.bbox, tight)
		}
	} else if isRoot && !n.bbox.IsEmpty() {
		return 0, fmt.Errorf("%w: empty tree with non-empty bounds %+v", ErrInvariant, n.bbox)
	}
	return items, nil
}
