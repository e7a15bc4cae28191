package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/eat-that-list/internal/adapter"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/store"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/sethvargo/go-retry"
)

// The server may issue a token before the user's list claims are
// provisioned; the client refreshes it until they show up.
const (
	claimsRetries  = 5
	claimsInterval = 100 * time.Millisecond
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter

	// claimsBackoff is replaced in tests.
	claimsBackoff func() retry.Backoff

	mu      sync.RWMutex
	session *models.Session

	subsMu sync.Mutex
	subs   []chan models.AuthState

	logger *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		claimsBackoff: func() retry.Backoff {
			return retry.WithMaxRetries(claimsRetries, retry.NewConstant(claimsInterval))
		},
		logger: logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, email, password string) (models.Session, error) {
	user, err := credentials(email, password)
	if err != nil {
		return models.Session{}, err
	}

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("register: %w", mapAdapterError(err))
	}

	return a.signedIn(ctx, user.Email, token)
}

func (a *clientAuthService) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	user, err := credentials(email, password)
	if err != nil {
		return models.Session{}, err
	}

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in: %w", mapAdapterError(err))
	}

	return a.signedIn(ctx, user.Email, token)
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	a.adapter.SetToken("")
	a.setSession(nil)

	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}
	return nil
}

// Restore re-uses the persisted session. A token the server no longer
// accepts clears it.
func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	saved, err := a.sessions.LoadSession(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("load local session: %w", err)
	}

	a.adapter.SetToken(saved.Token)
	token, err := a.adapter.RefreshToken(ctx)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrTokenIsExpiredOrInvalid) || errors.Is(err, adapter.ErrUnauthorized) {
			a.adapter.SetToken("")
			if clearErr := a.sessions.ClearSession(ctx); clearErr != nil {
				a.logger.Err(clearErr).Msg("error clearing stale session")
			}
		}
		return models.Session{}, fmt.Errorf("refresh saved token: %w", err)
	}

	return a.signedIn(ctx, saved.Email, token)
}

func (a *clientAuthService) Session() (models.Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return models.Session{}, false
	}
	return *a.session, true
}

func (a *clientAuthService) States() (<-chan models.AuthState, func()) {
	ch := make(chan models.AuthState, 1)

	a.subsMu.Lock()
	a.subs = append(a.subs, ch)
	ch <- a.state()
	a.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			a.subsMu.Lock()
			defer a.subsMu.Unlock()
			for i, sub := range a.subs {
				if sub == ch {
					a.subs = append(a.subs[:i], a.subs[i+1:]...)
					break
				}
			}
			close(ch)
		})
	}
}

// signedIn waits for the list claims, persists the session and announces
// it.
func (a *clientAuthService) signedIn(ctx context.Context, email string, token models.Token) (models.Session, error) {
	token, err := a.awaitClaims(ctx, token)
	if err != nil {
		a.adapter.SetToken("")
		return models.Session{}, err
	}

	session := models.Session{UserID: token.UserID, Email: email, Token: token.SignedString}
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		// the session still works, it just will not survive a restart
		a.logger.Err(err).Str("user_id", session.UserID).Msg("error saving local session")
	}

	a.setSession(&session)
	a.logger.Info().Str("user_id", session.UserID).Msg("signed in")
	return session, nil
}

func (a *clientAuthService) awaitClaims(ctx context.Context, token models.Token) (models.Token, error) {
	if token.HasListClaims() {
		return token, nil
	}

	err := retry.Do(ctx, a.claimsBackoff(), func(ctx context.Context) error {
		fresh, err := a.adapter.RefreshToken(ctx)
		if err != nil {
			return mapAdapterError(err)
		}
		if !fresh.HasListClaims() {
			return retry.RetryableError(ErrClaimsNotReady)
		}
		token = fresh
		return nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("wait for list claims: %w", err)
	}
	return token, nil
}

func (a *clientAuthService) setSession(session *models.Session) {
	a.mu.Lock()
	a.session = session
	a.mu.Unlock()

	a.subsMu.Lock()
	defer a.subsMu.Unlock()
	state := a.state()
	for _, ch := range a.subs {
		// latest state wins
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}

func (a *clientAuthService) state() models.AuthState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return models.AuthState{}
	}
	s := *a.session
	return models.AuthState{Session: &s}
}

func credentials(email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	return models.User{Email: email, Password: password}, nil
}
