// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ListItem is a single entry of a [List].
type ListItem struct {
	// ID is the unique identifier of the item.
	// Negative for optimistic (unconfirmed) items.
	ID int64 `json:"id"`

	// ListID is the list the item belongs to.
	ListID int64 `json:"list_id"`

	// Description is the free-form text of the item.
	Description string `json:"description"`

	// Creator is the user ID of the item's author.
	Creator string `json:"creator"`
}

// EntityID returns the item identifier.
func (i ListItem) EntityID() int64 { return i.ID }

// AuthorID returns the creator of the item.
func (i ListItem) AuthorID() string { return i.Creator }

// TableName returns the name of the database table
// associated with the ListItem model.
func (i ListItem) TableName() string {
	return "list_items"
}

// CreateItemRequest is the body of an item creation request.
type CreateItemRequest struct {
	Description string `json:"description"`
}
