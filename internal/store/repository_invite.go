package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/jackc/pgerrcode"
)

type inviteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInviteRepository constructs a PostgreSQL-backed [InviteRepository].
func NewInviteRepository(db *DB, logger *logger.Logger) InviteRepository {
	logger.Debug().Msg("creating invite repository")
	return &inviteRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvite(row rowScanner, extra ...any) (models.Invite, error) {
	var (
		invite   models.Invite
		accepted sql.NullBool
	)
	dest := append([]any{&invite.ID, &invite.ListID, &invite.Inviter, &invite.Invitee, &accepted}, extra...)
	if err := row.Scan(dest...); err != nil {
		return models.Invite{}, err
	}
	if accepted.Valid {
		invite.Accepted = &accepted.Bool
	}
	return invite, nil
}

// CreateInvite stores a pending invite. A second invite of the same user to
// the same list is reported as [ErrAlreadyInvited].
func (r *inviteRepository) CreateInvite(ctx context.Context, invite models.Invite) (models.Invite, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateInviteQuery(invite.ListID, invite.Inviter, invite.Invitee)
	if err != nil {
		log.Err(err).Str("func", "*inviteRepository.CreateInvite").Msg("error building query")
		return models.Invite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanInvite(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*inviteRepository.CreateInvite").Int64("list_id", invite.ListID).Msg("error creating invite")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Invite{}, ErrAlreadyInvited
		case pgerrcode.ForeignKeyViolation:
			return models.Invite{}, ErrListNotFound
		default:
			return models.Invite{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	created.InviteeEmail = invite.InviteeEmail
	return created, nil
}

func (r *inviteRepository) GetInvite(ctx context.Context, inviteID int64) (models.Invite, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetInviteQuery(inviteID)
	if err != nil {
		log.Err(err).Str("func", "*inviteRepository.GetInvite").Msg("error building query")
		return models.Invite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	invite, err := scanInvite(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invite{}, ErrInviteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*inviteRepository.GetInvite").Int64("invite_id", inviteID).Msg("error getting invite")
		return models.Invite{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return invite, nil
}

// ListInvites returns every invite of a list, whatever its status, with the
// invitee email filled in.
func (r *inviteRepository) ListInvites(ctx context.Context, listID int64) ([]models.Invite, error) {
	query, args, err := buildListInvitesQuery(listID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryInvites(ctx, "*inviteRepository.ListInvites", query, args, func(row rowScanner) (models.Invite, error) {
		var email string
		invite, err := scanInvite(row, &email)
		invite.InviteeEmail = email
		return invite, err
	})
}

// PendingInvites returns the unanswered invites addressed to userID.
func (r *inviteRepository) PendingInvites(ctx context.Context, userID string) ([]models.Invite, error) {
	query, args, err := buildPendingInvitesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryInvites(ctx, "*inviteRepository.PendingInvites", query, args, func(row rowScanner) (models.Invite, error) {
		var (
			email, name string
			count       int
		)
		invite, err := scanInvite(row, &email, &name, &count)
		invite.InviterEmail, invite.ListName, invite.ItemCount = email, name, count
		return invite, err
	})
}

func (r *inviteRepository) queryInvites(ctx context.Context, funcName, query string, args []any,
	scan func(rowScanner) (models.Invite, error)) ([]models.Invite, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	invites := make([]models.Invite, 0)
	for rows.Next() {
		invite, err := scan(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		invites = append(invites, invite)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return invites, nil
}

// AnswerInvite records the invitee's answer. Accepting grants access to the
// list in the same transaction.
func (r *inviteRepository) AnswerInvite(ctx context.Context, inviteID int64, invitee string, accept bool) (models.Invite, error) {
	query, args, err := buildAnswerInviteQuery(inviteID, invitee, accept)
	if err != nil {
		return models.Invite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var answered models.Invite
	err = r.db.withTx(ctx, "*inviteRepository.AnswerInvite", func(tx *sql.Tx) error {
		var err error
		answered, err = scanInvite(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInviteNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if !accept {
			return nil
		}

		grantQuery, grantArgs, err := buildGrantAccessQuery(answered.ListID, invitee)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, grantQuery, grantArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*inviteRepository.AnswerInvite").
			Int64("invite_id", inviteID).Bool("accept", accept).Msg("error answering invite")
		return models.Invite{}, err
	}

	return answered, nil
}

// DeleteInvite removes the invite and the list access it granted.
func (r *inviteRepository) DeleteInvite(ctx context.Context, inviteID int64) (models.Invite, error) {
	query, args, err := buildDeleteInviteQuery(inviteID)
	if err != nil {
		return models.Invite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted models.Invite
	err = r.db.withTx(ctx, "*inviteRepository.DeleteInvite", func(tx *sql.Tx) error {
		var err error
		deleted, err = scanInvite(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInviteNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		revokeQuery, revokeArgs, err := buildRevokeAccessQuery(deleted.ListID, deleted.Invitee)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, revokeQuery, revokeArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*inviteRepository.DeleteInvite").
			Int64("invite_id", inviteID).Msg("error deleting invite")
		return models.Invite{}, err
	}

	return deleted, nil
}
