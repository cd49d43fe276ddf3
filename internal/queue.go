package internal

// UpdateQueue is the list of callbacks to run once a root's updates are committed.
type UpdateQueue struct {
	callbacks []func()
}

func NewUpdateQueue() *UpdateQueue {
	return &UpdateQueue{
		callbacks: make([]func(), 0),
	}
}

func (q *UpdateQueue) Enqueue(fn func()) {
	q.callbacks = append(q.callbacks, fn)
}

func (q *UpdateQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.callbacks)
}

// Commit runs the callbacks in insertion order and empties the queue.
// Callbacks enqueued while committing run on the next Commit.
func (q *UpdateQueue) Commit() {
	if q == nil {
		return
	}

	callbacks := q.callbacks
	q.callbacks = make([]func(), 0)

	for _, cb := range callbacks {
		cb()
	}
}
