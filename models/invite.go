// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InviteStatus is the human-readable state of an [Invite].
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "Pending"
	InviteStatusAccepted InviteStatus = "Accepted"
	InviteStatusDeclined InviteStatus = "Declined"
)

// Invite grants a user (the invitee) the right to collaborate on a list
// once accepted.
type Invite struct {
	ID      int64  `json:"id"`
	ListID  int64  `json:"list_id"`
	Inviter string `json:"inviter"`
	Invitee string `json:"invitee"`

	// Accepted is nil while the invite is pending.
	Accepted *bool `json:"accepted"`

	// Denormalized fields filled by read queries for display.
	InviteeEmail string `json:"invitee_email,omitempty"`
	InviterEmail string `json:"inviter_email,omitempty"`
	ListName     string `json:"list_name,omitempty"`
	ItemCount    int    `json:"item_count,omitempty"`
}

// EntityID returns the invite identifier.
func (i Invite) EntityID() int64 { return i.ID }

// AuthorID returns the user who sent the invite.
func (i Invite) AuthorID() string { return i.Inviter }

// Status derives the invite status from Accepted.
func (i Invite) Status() InviteStatus {
	switch {
	case i.Accepted == nil:
		return InviteStatusPending
	case *i.Accepted:
		return InviteStatusAccepted
	default:
		return InviteStatusDeclined
	}
}

// TableName returns the name of the database table
// associated with the Invite model.
func (i Invite) TableName() string {
	return "invites"
}

// InviteRequest is the body of an invite creation request.
type InviteRequest struct {
	Email string `json:"email"`
}
