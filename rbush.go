package rbush

import (
	"math"
	"sort"
)

// DefaultMaxEntries is the node capacity used when the caller passes a
// non-positive value to New.
const DefaultMaxEntries = 9

// Accessors supplies the item-to-box extraction strategy for item type T.
// ToBBox, MinX and MinY are required; MinX and MinY must agree with ToBBox
// and exist separately so bulk loading can sort items without materializing
// boxes. Equal is only required for Remove.
type Accessors[T any] struct {
	ToBBox func(item T) BBox
	MinX   func(item T) float64
	MinY   func(item T) float64
	Equal  func(a, b T) bool
}

// node is either a leaf holding items or an internal node holding children,
// never both. Its box is kept as the tight union of its entries.
type node[T any] struct {
	bbox     BBox
	height   int // 1 for leaves, increasing toward the root
	leaf     bool
	children []*node[T]
	items    []T
}

func newLeafNode[T any]() *node[T] {
	return &node[T]{bbox: EmptyBBox(), height: 1, leaf: true}
}

// count returns the number of entries (items or children) in n.
func (n *node[T]) count() int {
	if n.leaf {
		return len(n.items)
	}
	return len(n.children)
}

// RBush is a dynamic 2D spatial index over axis-aligned bounding boxes.
// Items are opaque; the tree reads them only through the Accessors supplied
// at construction. Not safe for concurrent mutation.
type RBush[T any] struct {
	maxEntries int
	minEntries int
	acc        Accessors[T]
	root       *node[T]
	size       int
}

// New creates an empty index. maxEntries is the node capacity, clamped to a
// minimum of 4; a non-positive value selects DefaultMaxEntries. Panics if
// any of the required accessor functions is nil.
func New[T any](maxEntries int, acc Accessors[T]) *RBush[T] {
	if acc.ToBBox == nil || acc.MinX == nil || acc.MinY == nil {
		panic("rbush: ToBBox, MinX and MinY accessors are required")
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	maxEntries = max(4, maxEntries)
	tr := &RBush[T]{
		maxEntries: maxEntries,
		minEntries: max(2, int(math.Ceil(float64(maxEntries)*0.4))),
		acc:        acc,
	}
	tr.Clear()
	return tr
}

// Len returns the number of items in the index.
func (tr *RBush[T]) Len() int {
	return tr.size
}

// Height returns the tree height. A fresh empty tree has height 1.
func (tr *RBush[T]) Height() int {
	return tr.root.height
}

// Bounds returns the box covering every item, or the empty sentinel when
// the index holds nothing.
func (tr *RBush[T]) Bounds() BBox {
	return tr.root.bbox
}

// Clear discards all items, resetting the tree to a single empty leaf.
func (tr *RBush[T]) Clear() *RBush[T] {
	tr.root = newLeafNode[T]()
	tr.size = 0
	return tr
}

// Insert adds one item to the index.
func (tr *RBush[T]) Insert(item T) {
	bbox := tr.acc.ToBBox(item)
	level := tr.root.height - 1
	target, path := tr.chooseSubtree(bbox, level)
	target.items = append(target.items, item)
	target.bbox = target.bbox.Extend(bbox)
	tr.balance(path, bbox, level)
	tr.size++
}

// insertSubtree grafts a prebuilt subtree at the given level, treating it as
// a single oversized entry. Used by Load when merging trees of different
// heights.
func (tr *RBush[T]) insertSubtree(sub *node[T], level int) {
	bbox := sub.bbox
	target, path := tr.chooseSubtree(bbox, level)
	target.children = append(target.children, sub)
	target.bbox = target.bbox.Extend(bbox)
	tr.balance(path, bbox, level)
}

// chooseSubtree descends from the root toward the node at the given path
// depth (or a leaf, whichever comes first), picking at each step the child
// needing the least area enlargement to cover bbox. Ties go to the child
// with the smaller area, then to the first one seen.
func (tr *RBush[T]) chooseSubtree(bbox BBox, level int) (*node[T], []*node[T]) {
	path := make([]*node[T], 0, tr.root.height)
	n := tr.root
	for {
		path = append(path, n)
		if n.leaf || len(path)-1 == level {
			return n, path
		}
		var target *node[T]
		minEnlargement := math.Inf(1)
		minArea := math.Inf(1)
		for _, child := range n.children {
			area := child.bbox.Area()
			enlargement := bbox.EnlargedArea(child.bbox) - area
			if enlargement < minEnlargement {
				minEnlargement = enlargement
				if area < minArea {
					minArea = area
				}
				target = child
			} else if enlargement == minEnlargement && area < minArea {
				minArea = area
				target = child
			}
		}
		if target == nil {
			target = n.children[0]
		}
		n = target
	}
}

// balance repairs overflow bottom-up from the given level, then re-tightens
// the remaining ancestors with the inserted box.
func (tr *RBush[T]) balance(path []*node[T], bbox BBox, level int) {
	for level >= 0 {
		if path[level].count() <= tr.maxEntries {
			break
		}
		tr.split(path, level)
		level--
	}
	for i := level; i >= 0; i-- {
		path[i].bbox = path[i].bbox.Extend(bbox)
	}
}

// split divides the overflowing node at path[level] into itself and a new
// sibling, appending the sibling to the parent (or growing a new root).
func (tr *RBush[T]) split(path []*node[T], level int) {
	n := path[level]
	M := n.count()
	m := tr.minEntries

	tr.chooseSplitAxis(n, m, M)
	index := tr.chooseSplitIndex(n, m, M)

	sibling := &node[T]{bbox: EmptyBBox(), height: n.height, leaf: n.leaf}
	if n.leaf {
		sibling.items = append(sibling.items, n.items[index:]...)
		var zero T
		for i := index; i < len(n.items); i++ {
			n.items[i] = zero
		}
		n.items = n.items[:index]
	} else {
		sibling.children = append(sibling.children, n.children[index:]...)
		for i := index; i < len(n.children); i++ {
			n.children[i] = nil
		}
		n.children = n.children[:index]
	}
	tr.calcBBox(n)
	tr.calcBBox(sibling)

	if level > 0 {
		parent := path[level-1]
		parent.children = append(parent.children, sibling)
	} else {
		tr.splitRoot(n, sibling)
	}
}

// splitRoot grows the tree by one level, making a new root over both halves.
func (tr *RBush[T]) splitRoot(left, right *node[T]) {
	tr.root = &node[T]{
		bbox:     EmptyBBox(),
		height:   left.height + 1,
		children: []*node[T]{left, right},
	}
	tr.calcBBox(tr.root)
}

// chooseSplitAxis sorts the node's entries by the axis whose summed
// distribution margin is smaller. A tie keeps the Y order.
func (tr *RBush[T]) chooseSplitAxis(n *node[T], m, M int) {
	xMargin := tr.allDistMargin(n, m, M, false)
	yMargin := tr.allDistMargin(n, m, M, true)
	if xMargin < yMargin {
		tr.sortEntries(n, false)
	}
}

// allDistMargin sorts entries by one axis and sums the margins of the two
// group boxes over every valid split distribution.
func (tr *RBush[T]) allDistMargin(n *node[T], m, M int, byY bool) float64 {
	tr.sortEntries(n, byY)

	left := tr.partBBox(n, 0, m)
	right := tr.partBBox(n, M-m, M)
	margin := left.Margin() + right.Margin()

	for i := m; i < M-m; i++ {
		left = left.Extend(tr.entryBBox(n, i))
		margin += left.Margin()
	}
	for i := M - m - 1; i >= m; i-- {
		right = right.Extend(tr.entryBBox(n, i))
		margin += right.Margin()
	}
	return margin
}

// chooseSplitIndex picks the distribution with minimal overlap between the
// two groups, breaking ties by minimal summed area; the first index seen
// wins remaining ties.
func (tr *RBush[T]) chooseSplitIndex(n *node[T], m, M int) int {
	index := 0
	minOverlap := math.Inf(1)
	minArea := math.Inf(1)

	for i := m; i <= M-m; i++ {
		bbox1 := tr.partBBox(n, 0, i)
		bbox2 := tr.partBBox(n, i, M)

		overlap := bbox1.IntersectionArea(bbox2)
		area := bbox1.Area() + bbox2.Area()

		if overlap < minOverlap {
			minOverlap = overlap
			index = i
			if area < minArea {
				minArea = area
			}
		} else if overlap == minOverlap && area < minArea {
			minArea = area
			index = i
		}
	}

	if index == 0 {
		return M - m
	}
	return index
}

func (tr *RBush[T]) sortEntries(n *node[T], byY bool) {
	switch {
	case n.leaf && byY:
		sort.Slice(n.items, func(i, j int) bool {
			return tr.acc.MinY(n.items[i]) < tr.acc.MinY(n.items[j])
		})
	case n.leaf:
		sort.Slice(n.items, func(i, j int) bool {
			return tr.acc.MinX(n.items[i]) < tr.acc.MinX(n.items[j])
		})
	case byY:
		sort.Slice(n.children, func(i, j int) bool {
			return n.children[i].bbox.MinY < n.children[j].bbox.MinY
		})
	default:
		sort.Slice(n.children, func(i, j int) bool {
			return n.children[i].bbox.MinX < n.children[j].bbox.MinX
		})
	}
}

// entryBBox returns the box of the i-th entry of n.
func (tr *RBush[T]) entryBBox(n *node[T], i int) BBox {
	if n.leaf {
		return tr.acc.ToBBox(n.items[i])
	}
	return n.children[i].bbox
}

// partBBox returns the tight box over entries [start, end) of n.
func (tr *RBush[T]) partBBox(n *node[T], start, end int) BBox {
	box := EmptyBBox()
	for i := start; i < end; i++ {
		box = box.Extend(tr.entryBBox(n, i))
	}
	return box
}

// calcBBox re-tightens n's box over all of its entries.
func (tr *RBush[T]) calcBBox(n *node[T]) {
	n.bbox = tr.partBBox(n, 0, n.count())
}
