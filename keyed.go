package rbush

import "fmt"

// KeyedIndex is a bookkeeping layer over RBush that addresses elements by a
// unique caller-supplied key instead of by item equality. The tree itself
// has no notion of keys; this wrapper maintains the key-to-element table
// and rejects duplicates before the tree is touched.
type KeyedIndex[K comparable] struct {
	tree  *RBush[Entry[K]]
	elems map[K]Entry[K]
}

// NewKeyedIndex creates an empty keyed index. maxEntries as in New.
func NewKeyedIndex[K comparable](maxEntries int) *KeyedIndex[K] {
	return &KeyedIndex[K]{
		tree:  NewEntryIndex[K](maxEntries),
		elems: make(map[K]Entry[K]),
	}
}

// Insert adds a box under the given key. Returns ErrDuplicateKey, leaving
// the index unmodified, if the key is already present.
func (ix *KeyedIndex[K]) Insert(box BBox, key K) error {
	if _, ok := ix.elems[key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	e := Entry[K]{Box: box, Data: key}
	ix.elems[key] = e
	ix.tree.Insert(e)
	return nil
}

// Load bulk-inserts elements. All keys are validated against the index and
// against each other first, so a duplicate leaves the index unmodified.
func (ix *KeyedIndex[K]) Load(elements []Entry[K]) error {
	seen := make(map[K]struct{}, len(elements))
	for _, e := range elements {
		if _, ok := ix.elems[e.Data]; ok {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, e.Data)
		}
		if _, ok := seen[e.Data]; ok {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, e.Data)
		}
		seen[e.Data] = struct{}{}
	}
	for _, e := range elements {
		ix.elems[e.Data] = e
	}
	ix.tree.Load(elements)
	return nil
}

// Remove deletes the element under key, reporting whether it was present.
func (ix *KeyedIndex[K]) Remove(key K) bool {
	e, ok := ix.elems[key]
	if !ok {
		return false
	}
	delete(ix.elems, key)
	ix.tree.Remove(e)
	return true
}

// Search returns the keys of all elements whose box intersects bbox.
func (ix *KeyedIndex[K]) Search(bbox BBox) []K {
	entries := ix.tree.Search(bbox)
	keys := make([]K, len(entries))
	for i, e := range entries {
		keys[i] = e.Data
	}
	return keys
}

// Len returns the number of elements in the index.
func (ix *KeyedIndex[K]) Len() int {
	return len(ix.elems)
}
