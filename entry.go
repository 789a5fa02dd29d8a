package rbush

// Entry pairs a bounding box with an opaque payload, for callers whose
// items do not carry their own geometry.
type Entry[P comparable] struct {
	Box  BBox
	Data P
}

// NewEntryIndex creates an index over Entry values, wiring the accessors so
// callers do not have to. Entries compare by box and payload.
func NewEntryIndex[P comparable](maxEntries int) *RBush[Entry[P]] {
	return New(maxEntries, Accessors[Entry[P]]{
		ToBBox: func(e Entry[P]) BBox { return e.Box },
		MinX:   func(e Entry[P]) float64 { return e.Box.MinX },
		MinY:   func(e Entry[P]) float64 { return e.Box.MinY },
		Equal:  func(a, b Entry[P]) bool { return a == b },
	})
}
