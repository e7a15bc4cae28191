// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	id    int64
	owner string
}

func (e entry) EntityID() int64  { return e.id }
func (e entry) AuthorID() string { return e.owner }

func snap(entries ...entry) *Snapshot[entry] {
	return NewSnapshot(entries)
}

var strategies = []Strategy{StrategySetDiff, StrategyLength}

// ── Reconcile: shared properties ────────────────────────────────────────────

// TestReconcile_UndefinedPrev verifies that the first message of a
// subscription always yields an empty view, whatever it carries.
func TestReconcile_UndefinedPrev(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			for _, push := range []*Snapshot[entry]{nil, snap(), snap(entry{1, "A"}, entry{2, "B"})} {
				got := Reconcile(nil, push, "A", s)
				require.NotNil(t, got)
				assert.Empty(t, got.Entries)
			}
		})
	}
}

func TestReconcile_NilPushKeepsPrev(t *testing.T) {
	prev := snap(entry{1, "A"}, entry{-5, "A"})
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			got := Reconcile(prev, nil, "A", s)
			assert.Same(t, prev, got)
		})
	}
}

func TestReconcile_Growth(t *testing.T) {
	prev := snap(entry{1, "A"})
	push := snap(entry{1, "A"}, entry{2, "B"})

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			got := Reconcile(prev, push, "A", s)
			assert.Equal(t, []entry{{1, "A"}, {2, "B"}}, got.Entries)
		})
	}
}

// TestReconcile_GrowthSkipsSelfAuthored verifies that entries authored by the
// current actor are never adopted from a push.
func TestReconcile_GrowthSkipsSelfAuthored(t *testing.T) {
	prev := snap(entry{1, "A"})
	push := snap(entry{1, "A"}, entry{-999, "A"})

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			got := Reconcile(prev, push, "A", s)
			assert.Equal(t, []entry{{1, "A"}}, got.Entries)
		})
	}
}

func TestReconcile_Shrink(t *testing.T) {
	prev := snap(entry{1, "A"}, entry{2, "B"})
	push := snap(entry{1, "A"})

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			got := Reconcile(prev, push, "A", s)
			assert.Equal(t, []entry{{1, "A"}}, got.Entries)
		})
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	prev := snap(entry{1, "A"}, entry{2, "B"})
	push := snap(entry{1, "A"}, entry{2, "B"}, entry{3, "C"})

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			once := Reconcile(prev, push, "A", s)
			twice := Reconcile(once, push, "A", s)
			assert.Equal(t, once.Entries, twice.Entries)
		})
	}
}

func TestReconcile_NoDuplicateIDs(t *testing.T) {
	prev := snap(entry{1, "A"}, entry{2, "B"})
	push := snap(entry{2, "B"}, entry{2, "B"}, entry{3, "C"}, entry{3, "C"}, entry{1, "A"})

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			got := Reconcile(prev, push, "A", s)
			seen := map[int64]bool{}
			for _, e := range got.Entries {
				assert.False(t, seen[e.id], "duplicate id %d", e.id)
				seen[e.id] = true
			}
			assert.Len(t, got.Entries, 3)
		})
	}
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	prev := snap(entry{1, "A"}, entry{2, "B"})
	push := snap(entry{1, "A"}, entry{3, "C"}, entry{4, "D"})

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			_ = Reconcile(prev, push, "A", s)
			assert.Equal(t, []entry{{1, "A"}, {2, "B"}}, prev.Entries)
			assert.Equal(t, []entry{{1, "A"}, {3, "C"}, {4, "D"}}, push.Entries)
		})
	}
}

// ── Reconcile: strategy differences ─────────────────────────────────────────

// TestReconcile_ConcurrentAddAndRemove covers one entry added by another
// actor while another entry disappeared in the same interval: the push has
// the same length as the local view.
func TestReconcile_ConcurrentAddAndRemove(t *testing.T) {
	prev := snap(entry{1, "A"}, entry{2, "B"})
	push := snap(entry{1, "A"}, entry{3, "C"})

	t.Run("setdiff", func(t *testing.T) {
		got := Reconcile(prev, push, "A", StrategySetDiff)
		assert.Equal(t, []entry{{1, "A"}, {3, "C"}}, got.Entries)
	})

	t.Run("length", func(t *testing.T) {
		// classified as growth, the removal of 2 is missed
		got := Reconcile(prev, push, "A", StrategyLength)
		assert.Equal(t, []entry{{1, "A"}, {2, "B"}, {3, "C"}}, got.Entries)
	})
}

func TestReconcile_SetDiffKeepsOptimistic(t *testing.T) {
	prev := snap(entry{1, "A"}, entry{2, "B"}, entry{-42, "A"})
	push := snap(entry{1, "A"})

	got := Reconcile(prev, push, "A", StrategySetDiff)
	assert.Equal(t, []entry{{1, "A"}, {-42, "A"}}, got.Entries)
}

func TestReconcile_LengthShrinkDropsOptimistic(t *testing.T) {
	prev := snap(entry{1, "A"}, entry{2, "B"}, entry{-42, "A"})
	push := snap(entry{1, "A"})

	got := Reconcile(prev, push, "A", StrategyLength)
	assert.Equal(t, []entry{{1, "A"}}, got.Entries)
}

func TestReconcile_EmptyPushClearsConfirmed(t *testing.T) {
	prev := snap(entry{1, "A"}, entry{2, "B"})

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			got := Reconcile(prev, snap(), "A", s)
			assert.Empty(t, got.Entries)
		})
	}
}

// ── ParseStrategy ───────────────────────────────────────────────────────────

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{in: "", want: StrategySetDiff},
		{in: "setdiff", want: StrategySetDiff},
		{in: " Length ", want: StrategyLength},
		{in: "random", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTempID(t *testing.T) {
	for range 100 {
		id := NewTempID(nil)
		assert.Less(t, id, int64(0))
		assert.True(t, IsTemp(id))
	}

	calls := 0
	id := NewTempID(func(int64) bool {
		calls++
		return calls < 3
	})
	assert.Less(t, id, int64(0))
	assert.Equal(t, 3, calls)
}
