package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo(" v1.0.0 ", "", "abc123")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.True(t, info.Known())

	assert.False(t, NewAppBuildInfo("", "", "").Known())
}

func TestInvite_Status(t *testing.T) {
	yes, no := true, false

	assert.Equal(t, InviteStatusPending, Invite{}.Status())
	assert.Equal(t, InviteStatusAccepted, Invite{Accepted: &yes}.Status())
	assert.Equal(t, InviteStatusDeclined, Invite{Accepted: &no}.Status())
}
