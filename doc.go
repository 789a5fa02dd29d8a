// Package rbush implements a dynamic 2D spatial index over axis-aligned
// bounding boxes, a port of https://github.com/mourner/rbush.
//
// The index is a balanced R-tree with R*-style node splits, OMT bulk
// loading, and branch-and-bound nearest-neighbor search. Items are opaque:
// the tree reads their geometry only through accessor functions supplied at
// construction, so arbitrary types can be indexed without a common base.
// Points are handled as degenerate boxes.
//
// All operations are synchronous and assume exclusive access; callers who
// mutate and query from multiple goroutines must impose their own locking.
package rbush
