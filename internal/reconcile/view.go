// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"context"
	"reflect"
	"slices"
	"sync"
)

// Mutation is an applied optimistic change that can be undone.
type Mutation struct {
	once     sync.Once
	rollback func()
}

// Rollback undoes the change. Calling it more than once is a no-op.
func (m *Mutation) Rollback() {
	if m == nil || m.rollback == nil {
		return
	}
	m.once.Do(m.rollback)
}

// View is the client-held copy of one subscribed collection.
//
// All writes go through the view's lock, so pushes from the subscription
// goroutine and optimistic mutations started by the UI are applied one at a
// time in the order they acquire it.
type View[E Entity] struct {
	mu       sync.RWMutex
	snap     *Snapshot[E]
	actor    string
	strategy Strategy

	subsMu sync.Mutex
	subs   []chan struct{}
}

// NewView returns an undefined view for actor.
func NewView[E Entity](actor string, strategy Strategy) *View[E] {
	return &View[E]{
		actor:    actor,
		strategy: strategy,
	}
}

// Actor returns the user the view reconciles for.
func (v *View[E]) Actor() string {
	return v.actor
}

// Defined reports whether the view has received a snapshot.
func (v *View[E]) Defined() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap != nil
}

// Entries returns a copy of the current entries.
func (v *View[E]) Entries() []E {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.snap == nil {
		return nil
	}
	return slices.Clone(v.snap.Entries)
}

// Len returns the number of entries.
func (v *View[E]) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap.Len()
}

// Get returns the entry with id.
func (v *View[E]) Get(id int64) (E, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if idx := v.indexOf(id); idx >= 0 {
		return v.snap.Entries[idx], true
	}
	var zero E
	return zero, false
}

// Replace adopts entries as the authoritative state, e.g. a query result.
func (v *View[E]) Replace(entries []E) {
	v.mu.Lock()
	v.snap = NewSnapshot(dedupe(entries))
	v.mu.Unlock()
	v.notify()
}

// ApplyPush merges a pushed snapshot into the view. A nil push is a no-op.
func (v *View[E]) ApplyPush(push *Snapshot[E]) {
	if push == nil {
		return
	}
	v.mu.Lock()
	next := Reconcile(v.snap, push, v.actor, v.strategy)
	changed := v.snap == nil || !slices.Equal(v.snap.IDs(), next.IDs())
	if refreshed, ok := refreshConfirmed(next, push); ok {
		next, changed = refreshed, true
	}
	v.snap = next
	v.mu.Unlock()
	if changed {
		v.notify()
	}
}

// refreshConfirmed swaps confirmed entries of snap for their pushed versions,
// e.g. a list with a new item count. Ids and order stay as reconciled. It
// reports whether any entry changed; snap itself is not modified.
func refreshConfirmed[E Entity](snap, push *Snapshot[E]) (*Snapshot[E], bool) {
	pushed := make(map[int64]E, len(push.Entries))
	for _, e := range push.Entries {
		pushed[e.EntityID()] = e
	}

	var out []E
	for i, e := range snap.Entries {
		id := e.EntityID()
		if id < 0 {
			continue
		}
		p, ok := pushed[id]
		if !ok || reflect.DeepEqual(e, p) {
			continue
		}
		if out == nil {
			out = slices.Clone(snap.Entries)
		}
		out[i] = p
	}
	if out == nil {
		return snap, false
	}
	return &Snapshot[E]{Entries: out}, true
}

// Insert applies tentative immediately and then runs commit.
//
// tentative should carry a temporary id (see [NewTempID]). On success the
// temporary entry is replaced with the confirmed one; on failure it is
// rolled back and the commit error is returned.
func (v *View[E]) Insert(ctx context.Context, tentative E, commit func(ctx context.Context) (E, error)) (E, error) {
	m, err := v.insert(tentative)
	if err != nil {
		var zero E
		return zero, err
	}

	confirmed, err := commit(ctx)
	if err != nil {
		m.Rollback()
		var zero E
		return zero, err
	}

	v.confirm(tentative.EntityID(), confirmed)
	return confirmed, nil
}

// Remove drops the entry with id immediately and then runs commit. On
// failure the entry is restored at its previous position.
func (v *View[E]) Remove(ctx context.Context, id int64, commit func(ctx context.Context) error) error {
	m, err := v.remove(id)
	if err != nil {
		return err
	}

	if err = commit(ctx); err != nil {
		m.Rollback()
		return err
	}
	return nil
}

func (v *View[E]) insert(tentative E) (*Mutation, error) {
	v.mu.Lock()
	if v.snap == nil {
		v.mu.Unlock()
		return nil, ErrUndefinedView
	}
	v.snap = &Snapshot[E]{Entries: append(slices.Clone(v.snap.Entries), tentative)}
	v.mu.Unlock()
	v.notify()

	tempID := tentative.EntityID()
	return &Mutation{rollback: func() {
		v.mu.Lock()
		idx := v.indexOf(tempID)
		if idx >= 0 {
			v.snap = &Snapshot[E]{Entries: slices.Delete(slices.Clone(v.snap.Entries), idx, idx+1)}
		}
		v.mu.Unlock()
		if idx >= 0 {
			v.notify()
		}
	}}, nil
}

func (v *View[E]) remove(id int64) (*Mutation, error) {
	v.mu.Lock()
	if v.snap == nil {
		v.mu.Unlock()
		return nil, ErrUndefinedView
	}
	idx := v.indexOf(id)
	if idx < 0 {
		v.mu.Unlock()
		return nil, ErrEntityNotFound
	}
	removed := v.snap.Entries[idx]
	v.snap = &Snapshot[E]{Entries: slices.Delete(slices.Clone(v.snap.Entries), idx, idx+1)}
	v.mu.Unlock()
	v.notify()

	return &Mutation{rollback: func() {
		v.mu.Lock()
		restored := false
		if v.snap != nil && v.indexOf(id) < 0 {
			pos := min(idx, len(v.snap.Entries))
			v.snap = &Snapshot[E]{Entries: slices.Insert(slices.Clone(v.snap.Entries), pos, removed)}
			restored = true
		}
		v.mu.Unlock()
		if restored {
			v.notify()
		}
	}}, nil
}

// confirm swaps the temporary entry for the confirmed one. If the confirmed
// id is already present the temporary entry is simply dropped.
func (v *View[E]) confirm(tempID int64, confirmed E) {
	v.mu.Lock()
	if v.snap == nil {
		v.mu.Unlock()
		return
	}
	entries := slices.Clone(v.snap.Entries)
	tmpIdx := slices.IndexFunc(entries, func(e E) bool { return e.EntityID() == tempID })
	realIdx := slices.IndexFunc(entries, func(e E) bool { return e.EntityID() == confirmed.EntityID() })

	switch {
	case tmpIdx >= 0 && realIdx >= 0:
		entries = slices.Delete(entries, tmpIdx, tmpIdx+1)
	case tmpIdx >= 0:
		entries[tmpIdx] = confirmed
	case realIdx < 0:
		// rolled back by a concurrent Replace; keep the confirmed entry
		entries = append(entries, confirmed)
	}
	v.snap = &Snapshot[E]{Entries: entries}
	v.mu.Unlock()
	v.notify()
}

// Changes returns a channel that receives a value whenever the view
// changes. Notifications are coalesced: a slow reader sees at most one
// pending signal. The channel is closed by cancel.
func (v *View[E]) Changes() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	v.subsMu.Lock()
	v.subs = append(v.subs, ch)
	v.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			v.subsMu.Lock()
			defer v.subsMu.Unlock()
			if i := slices.Index(v.subs, ch); i >= 0 {
				v.subs = slices.Delete(v.subs, i, i+1)
			}
			close(ch)
		})
	}
	return ch, cancel
}

func (v *View[E]) notify() {
	v.subsMu.Lock()
	defer v.subsMu.Unlock()
	for _, ch := range v.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// indexOf must be called with mu held.
func (v *View[E]) indexOf(id int64) int {
	if v.snap == nil {
		return -1
	}
	return slices.IndexFunc(v.snap.Entries, func(e E) bool { return e.EntityID() == id })
}

func dedupe[E Entity](entries []E) []E {
	seen := make(map[int64]struct{}, len(entries))
	out := make([]E, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.EntityID()]; ok {
			continue
		}
		seen[e.EntityID()] = struct{}{}
		out = append(out, e)
	}
	return out
}
