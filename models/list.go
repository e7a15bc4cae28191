// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// List is a named shared shopping/todo list.
//
// Lists created optimistically on the client carry a negative ID until the
// server confirms them; server-assigned IDs are always positive.
type List struct {
	// ID is the unique identifier of the list.
	ID int64 `json:"id"`

	// Name is the display name of the list.
	Name string `json:"name"`

	// Owner is the user ID of the list's creator.
	Owner string `json:"owner"`

	// ItemCount is the number of items in the list at query time.
	ItemCount int `json:"item_count"`
}

// EntityID returns the list identifier.
func (l List) EntityID() int64 { return l.ID }

// AuthorID returns the owner of the list.
func (l List) AuthorID() string { return l.Owner }

// TableName returns the name of the database table
// associated with the List model.
func (l List) TableName() string {
	return "lists"
}

// CreateListRequest is the body of a list creation request.
type CreateListRequest struct {
	Name string `json:"name"`
}
