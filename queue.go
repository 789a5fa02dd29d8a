package rbush

// minQueue is a binary min-heap ordered by a caller-supplied less function.
type minQueue[E any] struct {
	less  func(a, b E) bool
	items []E
}

func newMinQueue[E any](less func(a, b E) bool) *minQueue[E] {
	return &minQueue[E]{less: less}
}

func (q *minQueue[E]) Len() int {
	return len(q.items)
}

// Push appends e and sifts it up to its heap position.
func (q *minQueue[E]) Push(e E) {
	q.items = append(q.items, e)
	i := len(q.items) - 1
	for i > 0 {
		up := (i - 1) >> 1
		if !q.less(q.items[i], q.items[up]) {
			break
		}
		q.items[i], q.items[up] = q.items[up], q.items[i]
		i = up
	}
}

// Pop removes and returns the minimum element, or ErrEmptyQueue if the queue
// holds nothing.
func (q *minQueue[E]) Pop() (E, error) {
	var zero E
	if len(q.items) == 0 {
		return zero, ErrEmptyQueue
	}
	top := q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]
	q.items[last] = zero
	q.items = q.items[:last]
	q.siftDown(0)
	return top, nil
}

// Peek returns the minimum element without removing it, or ErrEmptyQueue.
func (q *minQueue[E]) Peek() (E, error) {
	if len(q.items) == 0 {
		var zero E
		return zero, ErrEmptyQueue
	}
	return q.items[0], nil
}

func (q *minQueue[E]) siftDown(i int) {
	n := len(q.items)
	for {
		left := i<<1 + 1
		right := left + 1
		smallest := i
		if left < n && q.less(q.items[left], q.items[smallest]) {
			smallest = left
		}
		if right < n && q.less(q.items[right], q.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
}
