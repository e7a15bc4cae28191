// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package countdown

import (
	"math"
	"sync"
	"time"
)

// DefaultDuration is how long a swiped row waits before it is removed.
const DefaultDuration = 3 * time.Second

// State is the lifecycle stage of a row.
type State int

const (
	Visible State = iota
	Removing
	Removed
)

func (s State) String() string {
	switch s {
	case Visible:
		return "visible"
	case Removing:
		return "removing"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Row is the countdown state machine of a single list row.
type Row struct {
	mu sync.Mutex

	id       int64
	duration time.Duration
	sched    Scheduler
	onRemove func(id int64)

	state   State
	started time.Time
	timer   Stopper
	// gen is bumped on every swipe and cancel so that a timer which fires
	// after being stopped is recognised as stale.
	gen uint64
}

// Option configures a [Row].
type Option func(*Row)

// WithDuration overrides [DefaultDuration].
func WithDuration(d time.Duration) Option {
	return func(r *Row) {
		if d > 0 {
			r.duration = d
		}
	}
}

// WithScheduler replaces the real clock.
func WithScheduler(s Scheduler) Option {
	return func(r *Row) {
		if s != nil {
			r.sched = s
		}
	}
}

// NewRow returns a visible row. onRemove is called once when the countdown
// of the row expires.
func NewRow(id int64, onRemove func(id int64), opts ...Option) *Row {
	r := &Row{
		id:       id,
		duration: DefaultDuration,
		sched:    RealScheduler(),
		onRemove: onRemove,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ID returns the id of the entry the row displays.
func (r *Row) ID() int64 {
	return r.id
}

// State returns the current state.
func (r *Row) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Swipe starts the countdown. It reports whether the row moved to
// [Removing]; rows that are already removing or removed are left alone.
func (r *Row) Swipe() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Visible {
		return false
	}

	r.gen++
	gen := r.gen
	r.state = Removing
	r.started = r.sched.Now()
	r.timer = r.sched.AfterFunc(r.duration, func() { r.expire(gen) })
	return true
}

// Cancel stops a running countdown and shows the row again. It reports
// whether a countdown was cancelled; calling it in any other state is a
// no-op.
func (r *Row) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Removing {
		return false
	}

	r.gen++
	r.state = Visible
	r.started = time.Time{}
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	return true
}

func (r *Row) expire(gen uint64) {
	r.mu.Lock()
	if r.state != Removing || r.gen != gen {
		r.mu.Unlock()
		return
	}
	r.state = Removed
	r.timer = nil
	onRemove := r.onRemove
	r.mu.Unlock()

	if onRemove != nil {
		onRemove(r.id)
	}
}

// Progress returns the elapsed fraction of the countdown in [0, 1]. It is 0
// for a visible row and 1 for a removed one.
func (r *Row) Progress() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case Removed:
		return 1
	case Removing:
		elapsed := r.sched.Now().Sub(r.started)
		return math.Min(1, math.Max(0, float64(elapsed)/float64(r.duration)))
	default:
		return 0
	}
}

// Remaining returns the whole seconds left, rounded up, for a 3-2-1 style
// display. It is 0 unless the row is removing.
func (r *Row) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Removing {
		return 0
	}
	left := r.duration - r.sched.Now().Sub(r.started)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}
