package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestListRepo(t *testing.T) (*listRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &listRepository{db: db, logger: db.logger}, mock
}

func TestUserLists(t *testing.T) {
	repo, mock := newTestListRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "owner", "item_count"}).
		AddRow(1, "groceries", "u1", 3).
		AddRow(2, "shared", "u2", 0)
	mock.ExpectQuery("SELECT (.+) FROM lists l LEFT JOIN list_items").
		WithArgs("u1", "u1").
		WillReturnRows(rows)

	lists, err := repo.UserLists(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []models.List{
		{ID: 1, Name: "groceries", Owner: "u1", ItemCount: 3},
		{ID: 2, Name: "shared", Owner: "u2", ItemCount: 0},
	}, lists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserLists_Empty(t *testing.T) {
	repo, mock := newTestListRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM lists").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner", "item_count"}))

	lists, err := repo.UserLists(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, lists)
	assert.Empty(t, lists)
}

func TestUserLists_QueryError(t *testing.T) {
	repo, mock := newTestListRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM lists").WillReturnError(errors.New("boom"))

	_, err := repo.UserLists(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCreateList(t *testing.T) {
	repo, mock := newTestListRepo(t)

	mock.ExpectQuery("INSERT INTO lists").
		WithArgs("groceries", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner"}).AddRow(7, "groceries", "u1"))

	list, err := repo.CreateList(context.Background(), models.List{Name: "groceries", Owner: "u1"})
	require.NoError(t, err)
	assert.Equal(t, models.List{ID: 7, Name: "groceries", Owner: "u1"}, list)
}

func TestGetList(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    models.List
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM lists").WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner"}).AddRow(7, "groceries", "u1"))
			},
			want: models.List{ID: 7, Name: "groceries", Owner: "u1"},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM lists").WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrListNotFound,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM lists").WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestListRepo(t)
			tt.setup(mock)

			got, err := repo.GetList(context.Background(), 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeleteList(t *testing.T) {
	repo, mock := newTestListRepo(t)

	mock.ExpectExec("DELETE FROM lists").WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteList(context.Background(), 7))

	mock.ExpectExec("DELETE FROM lists").WithArgs(int64(8)).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteList(context.Background(), 8), ErrListNotFound)
}

func TestMembers(t *testing.T) {
	repo, mock := newTestListRepo(t)

	mock.ExpectQuery("SELECT owner FROM lists (.+) UNION SELECT user_id FROM list_access").
		WithArgs(int64(7), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow("u1").AddRow("u2"))

	members, err := repo.Members(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, members)
}

func TestHasAccess(t *testing.T) {
	repo, mock := newTestListRepo(t)

	mock.ExpectQuery("SELECT 1 FROM lists l LEFT JOIN list_access").
		WithArgs("u2", int64(7), "u2").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	ok, err := repo.HasAccess(context.Background(), 7, "u2")
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery("SELECT 1 FROM lists").WillReturnError(sql.ErrNoRows)
	ok, err = repo.HasAccess(context.Background(), 7, "u3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLeaveList(t *testing.T) {
	t.Run("commits both statements", func(t *testing.T) {
		repo, mock := newTestListRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM list_access").WithArgs(int64(7), "u2").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM invites").WithArgs(int64(7), "u2").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.LeaveList(context.Background(), 7, "u2"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not a collaborator", func(t *testing.T) {
		repo, mock := newTestListRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM list_access").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.LeaveList(context.Background(), 7, "u3"), ErrListNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retries serialization failure", func(t *testing.T) {
		repo, mock := newTestListRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM list_access").WillReturnError(pgError(pgerrcode.SerializationFailure))
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM list_access").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM invites").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.LeaveList(context.Background(), 7, "u2"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		repo, mock := newTestListRepo(t)

		mock.ExpectBegin().WillReturnError(errors.New("no conn"))

		assert.ErrorIs(t, repo.LeaveList(context.Background(), 7, "u2"), ErrBeginningTransaction)
	})
}
