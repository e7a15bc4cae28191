package countdown

import (
	"sync"
	"time"
)

// Board keeps one [Row] per displayed entry.
type Board struct {
	mu       sync.Mutex
	rows     map[int64]*Row
	duration time.Duration
	sched    Scheduler
	onRemove func(id int64)
}

// NewBoard returns an empty board whose rows share duration, scheduler and
// removal callback. A removed row stays on the board, so a second swipe on
// it is a no-op, until Retain or Forget drops it.
func NewBoard(duration time.Duration, sched Scheduler, onRemove func(id int64)) *Board {
	if sched == nil {
		sched = RealScheduler()
	}
	return &Board{
		rows:     make(map[int64]*Row),
		duration: duration,
		sched:    sched,
		onRemove: onRemove,
	}
}

// Row returns the row for id, creating a visible one if needed.
func (b *Board) Row(id int64) *Row {
	b.mu.Lock()
	defer b.mu.Unlock()

	if r, ok := b.rows[id]; ok {
		return r
	}
	r := NewRow(id, b.removed, WithDuration(b.duration), WithScheduler(b.sched))
	b.rows[id] = r
	return r
}

// Swipe starts the countdown of id.
func (b *Board) Swipe(id int64) bool {
	return b.Row(id).Swipe()
}

// Cancel cancels the countdown of id, if any.
func (b *Board) Cancel(id int64) bool {
	b.mu.Lock()
	r, ok := b.rows[id]
	b.mu.Unlock()
	if !ok {
		return false
	}
	return r.Cancel()
}

// CancelAll cancels every running countdown, e.g. when leaving the screen.
func (b *Board) CancelAll() {
	b.mu.Lock()
	rows := make([]*Row, 0, len(b.rows))
	for _, r := range b.rows {
		rows = append(rows, r)
	}
	b.mu.Unlock()

	for _, r := range rows {
		r.Cancel()
	}
}

// Removing reports whether any row is counting down.
func (b *Board) Removing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.rows {
		if r.State() == Removing {
			return true
		}
	}
	return false
}

// Retain drops rows whose ids are not in ids, cancelling their countdowns.
// Used after the displayed collection changes.
func (b *Board) Retain(ids []int64) {
	keep := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}

	b.mu.Lock()
	var dropped []*Row
	for id, r := range b.rows {
		if _, ok := keep[id]; !ok {
			dropped = append(dropped, r)
			delete(b.rows, id)
		}
	}
	b.mu.Unlock()

	for _, r := range dropped {
		r.Cancel()
	}
}

// Forget drops the row of id without touching its countdown. The next Row
// call starts a visible one, e.g. after a failed removal put the entry back.
func (b *Board) Forget(id int64) {
	b.mu.Lock()
	delete(b.rows, id)
	b.mu.Unlock()
}

func (b *Board) removed(id int64) {
	if b.onRemove != nil {
		b.onRemove(id)
	}
}
