package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/eat-that-list/internal/adapter"
	"github.com/MKhiriev/eat-that-list/internal/app"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/mock"
	"github.com/MKhiriev/eat-that-list/internal/reconcile"
	"github.com/MKhiriev/eat-that-list/internal/store"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestInviteService(t *testing.T) (ClientInviteService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientInviteService("u2", reconcile.StrategySetDiff, mockAdapter, mock.NewMockSubscriber(ctrl), logger.Nop())
	return svc, mockAdapter
}

func inviteIDs(invites []models.Invite) []int64 {
	ids := make([]int64, 0, len(invites))
	for _, i := range invites {
		ids = append(ids, i.ID)
	}
	return ids
}

func TestInvites_AcceptRemovesFromPending(t *testing.T) {
	svc, mockAdapter := newTestInviteService(t)

	mockAdapter.EXPECT().PendingInvites(gomock.Any()).Return([]models.Invite{{ID: 1, Inviter: "u1"}, {ID: 2, Inviter: "u3"}}, nil)
	require.NoError(t, svc.LoadPending(context.Background()))

	accepted := true
	mockAdapter.EXPECT().AcceptInvite(gomock.Any(), int64(1)).Return(models.Invite{ID: 1, Accepted: &accepted}, nil)

	require.NoError(t, svc.Accept(context.Background(), 1))
	assert.Equal(t, []int64{2}, inviteIDs(svc.Pending().Entries()))
}

func TestInvites_DeclineFailureRestores(t *testing.T) {
	svc, mockAdapter := newTestInviteService(t)
	svc.Pending().Replace([]models.Invite{{ID: 1}, {ID: 2}})

	mockAdapter.EXPECT().
		DeclineInvite(gomock.Any(), int64(1)).
		Return(models.Invite{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgInviteNotFound))

	err := svc.Decline(context.Background(), 1)

	assert.ErrorIs(t, err, store.ErrInviteNotFound)
	assert.Equal(t, []int64{1, 2}, inviteIDs(svc.Pending().Entries()))
}

func TestCollaborators_InviteOptimistic(t *testing.T) {
	svc, mockAdapter := newTestInviteService(t)
	collab := svc.Collaborators(3)

	mockAdapter.EXPECT().Collaborators(gomock.Any(), int64(3)).Return([]models.Invite{}, nil)
	require.NoError(t, collab.Load(context.Background()))

	mockAdapter.EXPECT().
		Invite(gomock.Any(), int64(3), "bob@example.com").
		DoAndReturn(func(context.Context, int64, string) (models.Invite, error) {
			pending := collab.View().Entries()
			require.Len(t, pending, 1)
			assert.Equal(t, models.InviteStatusPending, pending[0].Status())
			assert.Equal(t, "bob@example.com", pending[0].InviteeEmail)
			return models.Invite{ID: 11, ListID: 3, Inviter: "u2", Invitee: "u5", InviteeEmail: "bob@example.com"}, nil
		})

	invite, err := collab.Invite(context.Background(), "bob@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(11), invite.ID)
	assert.Equal(t, []int64{11}, inviteIDs(collab.View().Entries()))
}

func TestCollaborators_InviteConflictRollsBack(t *testing.T) {
	svc, mockAdapter := newTestInviteService(t)
	collab := svc.Collaborators(3)
	collab.View().Replace([]models.Invite{{ID: 4}})

	mockAdapter.EXPECT().
		Invite(gomock.Any(), int64(3), "bob@example.com").
		Return(models.Invite{}, fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgAlreadyInvited))

	_, err := collab.Invite(context.Background(), "bob@example.com")

	assert.ErrorIs(t, err, store.ErrAlreadyInvited)
	assert.Equal(t, []int64{4}, inviteIDs(collab.View().Entries()))
}

func TestCollaborators_Remove(t *testing.T) {
	svc, mockAdapter := newTestInviteService(t)
	collab := svc.Collaborators(3)
	collab.View().Replace([]models.Invite{{ID: 4}, {ID: 5}})

	mockAdapter.EXPECT().RemoveCollaborator(gomock.Any(), int64(4)).Return(nil)

	require.NoError(t, collab.Remove(context.Background(), 4))
	assert.Equal(t, []int64{5}, inviteIDs(collab.View().Entries()))
}
