package history

// Queue is a fixed-capacity FIFO over plain values.
// Pushing past capacity evicts the oldest element rather than rejecting
// the new one. The zero value is not usable; use New.
type Queue[T any] struct {
	items []T
	head  int // index of oldest element
	size  int
}

// New creates a queue holding at most capacity elements.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{items: make([]T, capacity)}
}

// Push appends an element, evicting the oldest when full.
func (q *Queue[T]) Push(item T) {
	tail := (q.head + q.size) % len(q.items)
	q.items[tail] = item
	if q.size < len(q.items) {
		q.size++
	} else {
		q.head = (q.head + 1) % len(q.items)
	}
}

// Last returns the most recently pushed element.
func (q *Queue[T]) Last() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	return q.items[(q.head+q.size-1)%len(q.items)], true
}

// At returns the element at index i, where 0 is the oldest.
func (q *Queue[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= q.size {
		return zero, false
	}
	return q.items[(q.head+i)%len(q.items)], true
}

func (q *Queue[T]) Len() int {
	return q.size
}

func (q *Queue[T]) Cap() int {
	return len(q.items)
}

// Clear empties the queue without releasing the backing store.
func (q *Queue[T]) Clear() {
	var zero T
	for i := range q.items {
		q.items[i] = zero
	}
	q.head = 0
	q.size = 0
}

// Values returns the elements oldest first.
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.size)
	for i := 0; i < q.size; i++ {
		out = append(out, q.items[(q.head+i)%len(q.items)])
	}
	return out
}

// RecentFirst returns the elements newest first.
func (q *Queue[T]) RecentFirst() []T {
	out := make([]T, 0, q.size)
	for i := q.size - 1; i >= 0; i-- {
		out = append(out, q.items[(q.head+i)%len(q.items)])
	}
	return out
}
