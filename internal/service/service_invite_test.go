package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/mock"
	"github.com/MKhiriev/eat-that-list/internal/store"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type inviteFixture struct {
	users   *mock.MockUserRepository
	lists   *mock.MockListRepository
	invites *mock.MockInviteRepository
	broker  *recordingBroker
	svc     InviteService
}

func newInviteFixture(t *testing.T) *inviteFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &inviteFixture{
		users:   mock.NewMockUserRepository(ctrl),
		lists:   mock.NewMockListRepository(ctrl),
		invites: mock.NewMockInviteRepository(ctrl),
		broker:  &recordingBroker{},
	}
	access := NewListService(f.lists, f.invites, f.broker, logger.Nop())
	f.svc = NewInviteService(f.users, f.lists, f.invites, access, f.broker, logger.Nop())
	return f
}

func TestFindInvitee_NormalizesEmail(t *testing.T) {
	f := newInviteFixture(t)
	f.users.EXPECT().
		FindUserByEmail(gomock.Any(), "bob@example.com").
		Return(models.User{UserID: "u2", Email: "Bob@Example.com", PasswordHash: "hash"}, nil)

	user, err := f.svc.FindInvitee(context.Background(), "  BOB@example.COM ")

	require.NoError(t, err)
	assert.Equal(t, "u2", user.UserID)
	assert.Empty(t, user.PasswordHash)
}

func TestInvite_Success(t *testing.T) {
	f := newInviteFixture(t)
	f.lists.EXPECT().GetList(gomock.Any(), int64(3)).Return(models.List{ID: 3, Owner: "u1"}, nil)
	f.users.EXPECT().FindUserByEmail(gomock.Any(), "bob@example.com").Return(models.User{UserID: "u2", Email: "bob@example.com"}, nil)
	f.invites.EXPECT().
		CreateInvite(gomock.Any(), models.Invite{ListID: 3, Inviter: "u1", Invitee: "u2", InviteeEmail: "bob@example.com"}).
		Return(models.Invite{ID: 1, ListID: 3, Inviter: "u1", Invitee: "u2", InviteeEmail: "bob@example.com"}, nil)

	invite, err := f.svc.Invite(context.Background(), "u1", 3, "bob@example.com")

	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusPending, invite.Status())
	assert.Equal(t, []string{"invites:u2"}, f.broker.published())
}

func TestInvite_Rejections(t *testing.T) {
	t.Run("not owner", func(t *testing.T) {
		f := newInviteFixture(t)
		f.lists.EXPECT().GetList(gomock.Any(), int64(3)).Return(models.List{ID: 3, Owner: "u1"}, nil)

		_, err := f.svc.Invite(context.Background(), "u2", 3, "bob@example.com")
		assert.ErrorIs(t, err, ErrNotListOwner)
	})

	t.Run("self invite", func(t *testing.T) {
		f := newInviteFixture(t)
		f.lists.EXPECT().GetList(gomock.Any(), int64(3)).Return(models.List{ID: 3, Owner: "u1"}, nil)
		f.users.EXPECT().FindUserByEmail(gomock.Any(), "me@example.com").Return(models.User{UserID: "u1"}, nil)

		_, err := f.svc.Invite(context.Background(), "u1", 3, "me@example.com")
		assert.ErrorIs(t, err, ErrSelfInvite)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newInviteFixture(t)
		f.lists.EXPECT().GetList(gomock.Any(), int64(3)).Return(models.List{ID: 3, Owner: "u1"}, nil)
		f.users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

		_, err := f.svc.Invite(context.Background(), "u1", 3, "ghost@example.com")
		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("duplicate", func(t *testing.T) {
		f := newInviteFixture(t)
		f.lists.EXPECT().GetList(gomock.Any(), int64(3)).Return(models.List{ID: 3, Owner: "u1"}, nil)
		f.users.EXPECT().FindUserByEmail(gomock.Any(), "bob@example.com").Return(models.User{UserID: "u2"}, nil)
		f.invites.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).Return(models.Invite{}, store.ErrAlreadyInvited)

		_, err := f.svc.Invite(context.Background(), "u1", 3, "bob@example.com")
		assert.ErrorIs(t, err, store.ErrAlreadyInvited)
		assert.Empty(t, f.broker.published())
	})
}

func TestCollaborators_RequiresAccess(t *testing.T) {
	f := newInviteFixture(t)
	f.lists.EXPECT().GetList(gomock.Any(), int64(3)).Return(models.List{ID: 3, Owner: "u1"}, nil)
	f.lists.EXPECT().HasAccess(gomock.Any(), int64(3), "u9").Return(false, nil)

	_, err := f.svc.Collaborators(context.Background(), "u9", 3)
	assert.ErrorIs(t, err, ErrListAccessDenied)
}

func TestAccept_NotifiesMembersAndInvitee(t *testing.T) {
	f := newInviteFixture(t)
	accepted := true
	f.invites.EXPECT().AnswerInvite(gomock.Any(), int64(1), "u2", true).
		Return(models.Invite{ID: 1, ListID: 3, Invitee: "u2", Accepted: &accepted}, nil)
	f.lists.EXPECT().Members(gomock.Any(), int64(3)).Return([]string{"u1", "u2"}, nil)

	invite, err := f.svc.Accept(context.Background(), "u2", 1)

	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusAccepted, invite.Status())
	assert.ElementsMatch(t, []string{"lists:u1", "lists:u2", "invites:u2"}, f.broker.published())
}

func TestDecline_OtherUsersInvite(t *testing.T) {
	f := newInviteFixture(t)
	f.invites.EXPECT().AnswerInvite(gomock.Any(), int64(1), "u9", false).Return(models.Invite{}, store.ErrInviteNotFound)

	_, err := f.svc.Decline(context.Background(), "u9", 1)
	assert.ErrorIs(t, err, store.ErrInviteNotFound)
}

func TestDecline_AfterAccept(t *testing.T) {
	f := newInviteFixture(t)
	accepted := true
	gomock.InOrder(
		f.invites.EXPECT().AnswerInvite(gomock.Any(), int64(1), "u2", true).
			Return(models.Invite{ID: 1, ListID: 3, Invitee: "u2", Accepted: &accepted}, nil),
		// only pending invites can be answered
		f.invites.EXPECT().AnswerInvite(gomock.Any(), int64(1), "u2", false).
			Return(models.Invite{}, store.ErrInviteNotFound),
	)
	f.lists.EXPECT().Members(gomock.Any(), int64(3)).Return([]string{"u1", "u2"}, nil)

	_, err := f.svc.Accept(context.Background(), "u2", 1)
	require.NoError(t, err)

	_, err = f.svc.Decline(context.Background(), "u2", 1)
	assert.ErrorIs(t, err, store.ErrInviteNotFound)
	assert.ElementsMatch(t, []string{"lists:u1", "lists:u2", "invites:u2"}, f.broker.published())
}

func TestRemoveCollaborator(t *testing.T) {
	t.Run("owner removes", func(t *testing.T) {
		f := newInviteFixture(t)
		invite := models.Invite{ID: 1, ListID: 3, Inviter: "u1", Invitee: "u2"}
		gomock.InOrder(
			f.invites.EXPECT().GetInvite(gomock.Any(), int64(1)).Return(invite, nil),
			f.lists.EXPECT().GetList(gomock.Any(), int64(3)).Return(models.List{ID: 3, Owner: "u1"}, nil),
			f.invites.EXPECT().DeleteInvite(gomock.Any(), int64(1)).Return(invite, nil),
		)

		require.NoError(t, f.svc.RemoveCollaborator(context.Background(), "u1", 1))
		assert.Equal(t, []string{"lists:u2", "invites:u2", "items:3"}, f.broker.published())
	})

	t.Run("collaborator cannot remove", func(t *testing.T) {
		f := newInviteFixture(t)
		f.invites.EXPECT().GetInvite(gomock.Any(), int64(1)).Return(models.Invite{ID: 1, ListID: 3}, nil)
		f.lists.EXPECT().GetList(gomock.Any(), int64(3)).Return(models.List{ID: 3, Owner: "u1"}, nil)

		assert.ErrorIs(t, f.svc.RemoveCollaborator(context.Background(), "u2", 1), ErrNotListOwner)
	})
}
