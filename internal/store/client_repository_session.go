package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/models"
)

// sessionRepository keeps at most one session row in SQLite.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs an SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	if _, err := r.db.ExecContext(ctx, saveSession, session.UserID, session.Email, session.Token); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// LoadSession returns [ErrSessionNotFound] when nobody is signed in.
func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := r.db.QueryRowContext(ctx, loadSession).Scan(&session.UserID, &session.Email, &session.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return session, nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearSession); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.ClearSession").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
