package rbush

import "errors"

var (
	// ErrEmptyQueue signals a pop or peek on an empty priority queue.
	ErrEmptyQueue = errors.New("rbush: queue is empty")
	// ErrDuplicateKey signals an insert of a key already present in a
	// keyed index.
	ErrDuplicateKey = errors.New("rbush: duplicate key")
	// ErrInvariant signals a structural invariant violation found by Check.
	ErrInvariant = errors.New("rbush: invariant violation")
)
