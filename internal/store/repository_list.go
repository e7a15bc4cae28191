// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/models"
)

type listRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewListRepository constructs a PostgreSQL-backed [ListRepository].
func NewListRepository(db *DB, logger *logger.Logger) ListRepository {
	logger.Debug().Msg("creating list repository")
	return &listRepository{
		db:     db,
		logger: logger,
	}
}

// UserLists returns the lists owned by or shared with userID, ordered by id.
func (r *listRepository) UserLists(ctx context.Context, userID string) ([]models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserListsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.UserLists").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.UserLists").Str("user_id", userID).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lists := make([]models.List, 0)
	for rows.Next() {
		var l models.List
		if err = rows.Scan(&l.ID, &l.Name, &l.Owner, &l.ItemCount); err != nil {
			log.Err(err).Str("func", "*listRepository.UserLists").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		lists = append(lists, l)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*listRepository.UserLists").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return lists, nil
}

func (r *listRepository) CreateList(ctx context.Context, list models.List) (models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateListQuery(list.Name, list.Owner)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.CreateList").Msg("error building query")
		return models.List{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.List
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.Name, &created.Owner); err != nil {
		log.Err(err).Str("func", "*listRepository.CreateList").Str("owner", list.Owner).Msg("error creating list")
		return models.List{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *listRepository) GetList(ctx context.Context, listID int64) (models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetListQuery(listID)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.GetList").Msg("error building query")
		return models.List{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var list models.List
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&list.ID, &list.Name, &list.Owner)
	if errors.Is(err, sql.ErrNoRows) {
		return models.List{}, ErrListNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*listRepository.GetList").Int64("list_id", listID).Msg("error getting list")
		return models.List{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return list, nil
}

// DeleteList removes the list; items, access rows and invites cascade.
func (r *listRepository) DeleteList(ctx context.Context, listID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteListQuery(listID)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.DeleteList").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.DeleteList").Int64("list_id", listID).Msg("error deleting list")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrListNotFound)
}

// Members returns the owner and collaborators of a list.
func (r *listRepository) Members(ctx context.Context, listID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMembersQuery(listID)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.Members").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.Members").Int64("list_id", listID).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var userID string
		if err = rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		members = append(members, userID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return members, nil
}

func (r *listRepository) HasAccess(ctx context.Context, listID int64, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildHasAccessQuery(listID, userID)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.HasAccess").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*listRepository.HasAccess").Int64("list_id", listID).Msg("error checking access")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *listRepository) LeaveList(ctx context.Context, listID int64, userID string) error {
	revokeQuery, revokeArgs, err := buildRevokeAccessQuery(listID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	inviteQuery, inviteArgs, err := buildDeleteInviteOfUserQuery(listID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.withTx(ctx, "*listRepository.LeaveList", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, revokeQuery, revokeArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if err = expectAffected(res, ErrListNotFound); err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, inviteQuery, inviteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

// expectAffected returns notFound when the statement touched no rows.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
