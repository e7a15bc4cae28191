package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/models"
)

// ─────────────────────────────────────────────
// Function-field service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockListService struct {
	userListsFn  func(ctx context.Context, userID string) ([]models.List, error)
	createListFn func(ctx context.Context, userID, name string) (models.List, error)
	deleteListFn func(ctx context.Context, userID string, listID int64) error
	leaveListFn  func(ctx context.Context, userID string, listID int64) error
	canAccessFn  func(ctx context.Context, userID string, listID int64) error
}

func (m *mockListService) UserLists(ctx context.Context, userID string) ([]models.List, error) {
	return m.userListsFn(ctx, userID)
}

func (m *mockListService) CreateList(ctx context.Context, userID, name string) (models.List, error) {
	return m.createListFn(ctx, userID, name)
}

func (m *mockListService) DeleteList(ctx context.Context, userID string, listID int64) error {
	return m.deleteListFn(ctx, userID, listID)
}

func (m *mockListService) LeaveList(ctx context.Context, userID string, listID int64) error {
	return m.leaveListFn(ctx, userID, listID)
}

func (m *mockListService) CanAccess(ctx context.Context, userID string, listID int64) error {
	return m.canAccessFn(ctx, userID, listID)
}

type mockListItemService struct {
	itemsFn      func(ctx context.Context, userID string, listID int64) ([]models.ListItem, error)
	addItemFn    func(ctx context.Context, userID string, listID int64, description string) (models.ListItem, error)
	deleteItemFn func(ctx context.Context, userID string, listID, itemID int64) error
}

func (m *mockListItemService) Items(ctx context.Context, userID string, listID int64) ([]models.ListItem, error) {
	return m.itemsFn(ctx, userID, listID)
}

func (m *mockListItemService) AddItem(ctx context.Context, userID string, listID int64, description string) (models.ListItem, error) {
	return m.addItemFn(ctx, userID, listID, description)
}

func (m *mockListItemService) DeleteItem(ctx context.Context, userID string, listID, itemID int64) error {
	return m.deleteItemFn(ctx, userID, listID, itemID)
}

type mockInviteService struct {
	findInviteeFn        func(ctx context.Context, email string) (models.User, error)
	inviteFn             func(ctx context.Context, userID string, listID int64, email string) (models.Invite, error)
	pendingInvitesFn     func(ctx context.Context, userID string) ([]models.Invite, error)
	collaboratorsFn      func(ctx context.Context, userID string, listID int64) ([]models.Invite, error)
	acceptFn             func(ctx context.Context, userID string, inviteID int64) (models.Invite, error)
	declineFn            func(ctx context.Context, userID string, inviteID int64) (models.Invite, error)
	removeCollaboratorFn func(ctx context.Context, userID string, inviteID int64) error
}

func (m *mockInviteService) FindInvitee(ctx context.Context, email string) (models.User, error) {
	return m.findInviteeFn(ctx, email)
}

func (m *mockInviteService) Invite(ctx context.Context, userID string, listID int64, email string) (models.Invite, error) {
	return m.inviteFn(ctx, userID, listID, email)
}

func (m *mockInviteService) PendingInvites(ctx context.Context, userID string) ([]models.Invite, error) {
	return m.pendingInvitesFn(ctx, userID)
}

func (m *mockInviteService) Collaborators(ctx context.Context, userID string, listID int64) ([]models.Invite, error) {
	return m.collaboratorsFn(ctx, userID, listID)
}

func (m *mockInviteService) Accept(ctx context.Context, userID string, inviteID int64) (models.Invite, error) {
	return m.acceptFn(ctx, userID, inviteID)
}

func (m *mockInviteService) Decline(ctx context.Context, userID string, inviteID int64) (models.Invite, error) {
	return m.declineFn(ctx, userID, inviteID)
}

func (m *mockInviteService) RemoveCollaborator(ctx context.Context, userID string, inviteID int64) error {
	return m.removeCollaboratorFn(ctx, userID, inviteID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testUser  = "alice-id"
	testToken = "good.jwt.token"
)

// acceptingAuth accepts testToken for testUser and rejects anything else.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testUser}, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			return models.Token{SignedString: "token-for-" + u.UserID}, nil
		},
	}
}

// newTestHandler fills every service the test did not provide with an empty
// mock; calling one of its methods panics and the router answers 500.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = acceptingAuth()
	}
	if svcs.ListService == nil {
		svcs.ListService = &mockListService{}
	}
	if svcs.ListItemService == nil {
		svcs.ListItemService = &mockListItemService{}
	}
	if svcs.InviteService == nil {
		svcs.InviteService = &mockInviteService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if svcs.Broker == nil {
		svcs.Broker = service.NewBroker(logger.Nop())
	}
	return NewHandler(svcs, config.Server{KeepAlive: time.Minute}, logger.Nop())
}

// serve sends a request through the full router as testUser.
func serve(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// httptestGet sends an unauthenticated GET through the full router.
func httptestGet(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
	return rec
}
