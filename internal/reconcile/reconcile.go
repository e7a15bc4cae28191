// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"fmt"
	"strings"
)

// Entity is an element of a synchronized collection.
type Entity interface {
	// EntityID is unique within a collection. Negative values mark
	// optimistic entries not yet confirmed by the server.
	EntityID() int64

	// AuthorID is the user that created the entity.
	AuthorID() string
}

// Snapshot is an ordered set of entities. A nil *Snapshot is undefined:
// nothing has been received yet.
type Snapshot[E Entity] struct {
	Entries []E
}

// NewSnapshot wraps entries. A nil slice yields an empty, defined snapshot.
func NewSnapshot[E Entity](entries []E) *Snapshot[E] {
	if entries == nil {
		entries = []E{}
	}
	return &Snapshot[E]{Entries: entries}
}

// Len returns the number of entries; an undefined snapshot has none.
func (s *Snapshot[E]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// IDs returns the identifiers of the snapshot in order.
func (s *Snapshot[E]) IDs() []int64 {
	if s == nil {
		return nil
	}
	ids := make([]int64, 0, len(s.Entries))
	for _, e := range s.Entries {
		ids = append(ids, e.EntityID())
	}
	return ids
}

func (s *Snapshot[E]) clone() *Snapshot[E] {
	if s == nil {
		return nil
	}
	entries := make([]E, len(s.Entries))
	copy(entries, s.Entries)
	return &Snapshot[E]{Entries: entries}
}

// Strategy selects how a push is classified against the local view.
type Strategy int

const (
	// StrategySetDiff computes added and removed ids explicitly.
	// Optimistic entries are kept until confirmed or rolled back.
	StrategySetDiff Strategy = iota

	// StrategyLength treats a push at least as long as the local view as
	// growth and a shorter push as shrinkage. Under concurrent edits from
	// several actors a growth push can hide a removal, which then stays
	// visible until the next shrinking push.
	StrategyLength
)

func (s Strategy) String() string {
	switch s {
	case StrategySetDiff:
		return "setdiff"
	case StrategyLength:
		return "length"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses the textual form produced by [Strategy.String].
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "setdiff":
		return StrategySetDiff, nil
	case "length":
		return StrategyLength, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Reconcile merges a pushed snapshot into the previous local snapshot and
// returns the new local snapshot.
//
// A nil prev means this is the first message of a subscription: the result
// is an empty snapshot, the caller is expected to load the collection with
// a query. A nil push carries no data and returns prev unchanged. Entries
// authored by actor are never adopted from a push: the local user's own
// mutations are already reflected locally. Neither input is modified.
func Reconcile[E Entity](prev, push *Snapshot[E], actor string, strategy Strategy) *Snapshot[E] {
	if prev == nil {
		return NewSnapshot[E](nil)
	}
	if push == nil {
		return prev
	}

	switch strategy {
	case StrategyLength:
		return reconcileByLength(prev, push, actor)
	default:
		return reconcileBySetDiff(prev, push, actor)
	}
}

func reconcileByLength[E Entity](prev, push *Snapshot[E], actor string) *Snapshot[E] {
	local := idSet(prev.Entries)

	if len(push.Entries) >= len(prev.Entries) {
		out := make([]E, 0, len(push.Entries))
		out = append(out, prev.Entries...)
		return &Snapshot[E]{Entries: appendForeign(out, push.Entries, local, actor)}
	}

	pushed := idSet(push.Entries)
	out := make([]E, 0, len(push.Entries))
	for _, e := range prev.Entries {
		if _, ok := pushed[e.EntityID()]; ok {
			out = append(out, e)
		}
	}
	return &Snapshot[E]{Entries: out}
}

func reconcileBySetDiff[E Entity](prev, push *Snapshot[E], actor string) *Snapshot[E] {
	pushed := idSet(push.Entries)
	local := make(map[int64]struct{}, len(prev.Entries))

	out := make([]E, 0, len(push.Entries))
	for _, e := range prev.Entries {
		id := e.EntityID()
		_, inPush := pushed[id]
		if !inPush && id >= 0 {
			continue
		}
		if _, dup := local[id]; dup {
			continue
		}
		local[id] = struct{}{}
		out = append(out, e)
	}

	return &Snapshot[E]{Entries: appendForeign(out, push.Entries, local, actor)}
}

// appendForeign appends push entries that are neither known locally nor
// authored by actor, marking them as known.
func appendForeign[E Entity](out, push []E, known map[int64]struct{}, actor string) []E {
	for _, e := range push {
		if e.AuthorID() == actor {
			continue
		}
		id := e.EntityID()
		if _, ok := known[id]; ok {
			continue
		}
		known[id] = struct{}{}
		out = append(out, e)
	}
	return out
}

func idSet[E Entity](entries []E) map[int64]struct{} {
	set := make(map[int64]struct{}, len(entries))
	for _, e := range entries {
		set[e.EntityID()] = struct{}{}
	}
	return set
}
