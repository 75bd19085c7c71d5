package widgets

import (
	"sync"

	"github.com/google/uuid"

	"github.com/go-tide/tide/pkg/events"
)

// Queue shows snackbars one at a time, in enqueue order. It is plain
// state: construct one where notifications are coordinated and hand it to
// the code that raises them. Nothing in the package reaches for a shared
// instance.
type Queue struct {
	mu      sync.Mutex
	current *Snackbar
	pending []queued
}

type queued struct {
	id  string
	bar *Snackbar
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue shows s immediately when nothing is visible, otherwise appends
// it. The returned id cancels the entry while it is still pending. Every
// dismissal, timed or manual, advances to the next entry.
func (q *Queue) Enqueue(s *Snackbar) string {
	id := uuid.NewString()
	q.mu.Lock()
	if q.current != nil {
		q.pending = append(q.pending, queued{id: id, bar: s})
		q.mu.Unlock()
		return id
	}
	q.current = s
	q.mu.Unlock()

	q.show(s)
	return id
}

// Cancel drops the pending entry with the given id and reports whether it
// was found. The visible snackbar is not cancellable; dismiss it on the
// snackbar itself.
func (q *Queue) Cancel(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, p := range q.pending {
		if p.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of entries waiting behind the visible one.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Showing returns the currently visible snackbar, or nil.
func (q *Queue) Showing() *Snackbar {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}

// show subscribes a one-shot dismiss handler before raising s, so the
// queue advances exactly once per showing even when the same snackbar is
// enqueued again later.
func (q *Queue) show(s *Snackbar) {
	var h events.Handler
	h = func(any) {
		s.entity.Off(EventDismiss, h)
		q.advance()
	}
	s.entity.On(EventDismiss, h)
	s.Show()
}

func (q *Queue) advance() {
	q.mu.Lock()
	q.current = nil
	if len(q.pending) == 0 {
		q.mu.Unlock()
		return
	}
	next := q.pending[0]
	q.pending = q.pending[1:]
	q.current = next.bar
	q.mu.Unlock()

	q.show(next.bar)
}
