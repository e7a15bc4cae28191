package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/utils"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. Returns an error if adapterCfg.HTTPAddress is empty or
// cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the credentials to /api/auth/register and keeps the
// bearer token from the Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}

	return h.acceptToken(resp, "register")
}

// Login POSTs the credentials to /api/auth/login and keeps the bearer token.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}

	return h.acceptToken(resp, "login")
}

func (h *httpServerAdapter) RefreshToken(ctx context.Context) (models.Token, error) {
	resp, err := h.authedRequest(ctx).Post("/api/auth/token")
	if err != nil {
		return models.Token{}, fmt.Errorf("refresh token request: %w", err)
	}

	return h.acceptToken(resp, "refresh token")
}

func (h *httpServerAdapter) acceptToken(resp *resty.Response, op string) (models.Token, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	raw, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%s: %w: %w", op, ErrNoToken, err)
	}
	token, err := utils.ParseUnverifiedToken(raw)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse token: %w", op, err)
	}

	h.SetToken(raw)
	return token, nil
}

func (h *httpServerAdapter) Lists(ctx context.Context) ([]models.List, error) {
	var lists []models.List
	resp, err := h.authedRequest(ctx).SetResult(&lists).Get("/api/lists")
	if err != nil {
		return nil, fmt.Errorf("get lists request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return lists, nil
}

func (h *httpServerAdapter) CreateList(ctx context.Context, name string) (models.List, error) {
	var list models.List
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateListRequest{Name: name}).
		SetResult(&list).
		Post("/api/lists")
	if err != nil {
		return models.List{}, fmt.Errorf("create list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.List{}, err
	}
	return list, nil
}

func (h *httpServerAdapter) DeleteList(ctx context.Context, listID int64) error {
	resp, err := h.authedRequest(ctx).Delete(listPath(listID))
	if err != nil {
		return fmt.Errorf("delete list request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) LeaveList(ctx context.Context, listID int64) error {
	resp, err := h.authedRequest(ctx).Post(listPath(listID) + "/leave")
	if err != nil {
		return fmt.Errorf("leave list request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Items(ctx context.Context, listID int64) ([]models.ListItem, error) {
	var items []models.ListItem
	resp, err := h.authedRequest(ctx).SetResult(&items).Get(listPath(listID) + "/items")
	if err != nil {
		return nil, fmt.Errorf("get items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *httpServerAdapter) AddItem(ctx context.Context, listID int64, description string) (models.ListItem, error) {
	var item models.ListItem
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateItemRequest{Description: description}).
		SetResult(&item).
		Post(listPath(listID) + "/items")
	if err != nil {
		return models.ListItem{}, fmt.Errorf("add item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListItem{}, err
	}
	return item, nil
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, listID, itemID int64) error {
	resp, err := h.authedRequest(ctx).Delete(listPath(listID) + "/items/" + strconv.FormatInt(itemID, 10))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Collaborators(ctx context.Context, listID int64) ([]models.Invite, error) {
	var invites []models.Invite
	resp, err := h.authedRequest(ctx).SetResult(&invites).Get(listPath(listID) + "/collaborators")
	if err != nil {
		return nil, fmt.Errorf("get collaborators request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return invites, nil
}

func (h *httpServerAdapter) Invite(ctx context.Context, listID int64, email string) (models.Invite, error) {
	var invite models.Invite
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.InviteRequest{Email: email}).
		SetResult(&invite).
		Post(listPath(listID) + "/invites")
	if err != nil {
		return models.Invite{}, fmt.Errorf("invite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Invite{}, err
	}
	return invite, nil
}

func (h *httpServerAdapter) PendingInvites(ctx context.Context) ([]models.Invite, error) {
	var invites []models.Invite
	resp, err := h.authedRequest(ctx).SetResult(&invites).Get("/api/invites")
	if err != nil {
		return nil, fmt.Errorf("get invites request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return invites, nil
}

func (h *httpServerAdapter) AcceptInvite(ctx context.Context, inviteID int64) (models.Invite, error) {
	return h.answerInvite(ctx, inviteID, "accept")
}

func (h *httpServerAdapter) DeclineInvite(ctx context.Context, inviteID int64) (models.Invite, error) {
	return h.answerInvite(ctx, inviteID, "decline")
}

func (h *httpServerAdapter) answerInvite(ctx context.Context, inviteID int64, answer string) (models.Invite, error) {
	var invite models.Invite
	resp, err := h.authedRequest(ctx).SetResult(&invite).Post(invitePath(inviteID) + "/" + answer)
	if err != nil {
		return models.Invite{}, fmt.Errorf("%s invite request: %w", answer, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Invite{}, err
	}
	return invite, nil
}

func (h *httpServerAdapter) RemoveCollaborator(ctx context.Context, inviteID int64) error {
	resp, err := h.authedRequest(ctx).Delete(invitePath(inviteID))
	if err != nil {
		return fmt.Errorf("remove collaborator request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) FindUser(ctx context.Context, email string) (models.User, error) {
	var user models.User
	resp, err := h.authedRequest(ctx).
		SetQueryParam("email", email).
		SetResult(&user).
		Get("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("find user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func listPath(listID int64) string {
	return "/api/lists/" + strconv.FormatInt(listID, 10)
}

func invitePath(inviteID int64) string {
	return "/api/invites/" + strconv.FormatInt(inviteID, 10)
}
