// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Push message types sent over subscriptions.
const (
	PushTypeData      = "data"
	PushTypeKeepAlive = "ka"
	PushTypeError     = "error"
)

// PushMessage is a single subscription frame.
//
// Data frames carry the full current snapshot of the subscribed collection.
// A frame whose Data is nil (keep-alive, error, or an empty payload) carries
// no snapshot and must leave the receiver's state unchanged. An empty but
// non-nil Data is a real, empty snapshot.
type PushMessage[E any] struct {
	Type  string `json:"type"`
	Data  *[]E   `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewDataMessage wraps a snapshot into a data frame.
func NewDataMessage[E any](entries []E) PushMessage[E] {
	if entries == nil {
		entries = []E{}
	}
	return PushMessage[E]{Type: PushTypeData, Data: &entries}
}
