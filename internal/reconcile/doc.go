// Package reconcile keeps a client-side view of a shared collection in step
// with the server while the local user mutates it optimistically.
//
// The server pushes full snapshots of a collection on every change. The
// client merges each snapshot into its current view with [Reconcile], so
// that entries created or deleted locally but not yet confirmed survive a
// push, and entries authored locally are never adopted twice. [View] owns
// the current snapshot and runs optimistic inserts and removals with an
// explicit rollback for each.
package reconcile
