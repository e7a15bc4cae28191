// Package countdown implements the swipe-to-delete timer of a list row.
//
// A swiped row is not removed at once: it enters [Removing] and counts down
// for a fixed duration, during which the user can cancel. Only when the
// countdown expires does the row become [Removed] and its removal callback
// fire, exactly once.
package countdown
