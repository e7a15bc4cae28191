package reconcile

import "math/rand/v2"

// tempIDRange bounds temporary ids to values exactly representable as
// float64, so they survive a JSON round trip through any client.
const tempIDRange = 1 << 52

// NewTempID returns a random negative identifier for an optimistic entry.
// Server ids are positive, so a temporary id never collides with a
// confirmed one. taken may be nil; otherwise ids for which it reports true
// are skipped.
func NewTempID(taken func(id int64) bool) int64 {
	for {
		id := -(rand.Int64N(tempIDRange) + 1)
		if taken == nil || !taken(id) {
			return id
		}
	}
}

// IsTemp reports whether id belongs to an unconfirmed optimistic entry.
func IsTemp(id int64) bool {
	return id < 0
}
