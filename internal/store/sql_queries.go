package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns     = []string{"user_id", "email", "password_hash", "created_at"}
	listColumns     = []string{"id", "name", "owner"}
	listItemColumns = []string{"id", "list_id", "description", "creator"}
	inviteColumns   = []string{"id", "list_id", "inviter", "invitee", "accepted"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ---------------------------------------------------------------------------
// users
// ---------------------------------------------------------------------------

func buildCreateUserQuery(userID, email, passwordHash string) (string, []any, error) {
	return psql.
		Insert("users").
		Columns("user_id", "email", "password_hash").
		Values(userID, email, passwordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

// buildFindUserByEmailQuery matches the email case-insensitively.
func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From("users").
		Where(sq.Expr("LOWER(email) = LOWER(?)", email)).
		ToSql()
}

// ---------------------------------------------------------------------------
// lists
// ---------------------------------------------------------------------------

// buildUserListsQuery selects the lists a user owns or was granted access to,
// each with its current item count.
func buildUserListsQuery(userID string) (string, []any, error) {
	return psql.
		Select("l.id", "l.name", "l.owner", "COUNT(i.id) AS item_count").
		From("lists l").
		LeftJoin("list_items i ON i.list_id = l.id").
		Where(sq.Or{
			sq.Eq{"l.owner": userID},
			sq.Expr("l.id IN (SELECT list_id FROM list_access WHERE user_id = ?)", userID),
		}).
		GroupBy("l.id", "l.name", "l.owner").
		OrderBy("l.id").
		ToSql()
}

func buildCreateListQuery(name, owner string) (string, []any, error) {
	return psql.
		Insert("lists").
		Columns("name", "owner").
		Values(name, owner).
		Suffix(returning(listColumns)).
		ToSql()
}

func buildGetListQuery(listID int64) (string, []any, error) {
	return psql.
		Select(listColumns...).
		From("lists").
		Where(sq.Eq{"id": listID}).
		ToSql()
}

func buildDeleteListQuery(listID int64) (string, []any, error) {
	return psql.
		Delete("lists").
		Where(sq.Eq{"id": listID}).
		ToSql()
}

// buildListMembersQuery selects the owner and every user with access.
func buildListMembersQuery(listID int64) (string, []any, error) {
	return psql.
		Select("owner").
		From("lists").
		Where(sq.Eq{"id": listID}).
		Suffix("UNION SELECT user_id FROM list_access WHERE list_id = ?", listID).
		ToSql()
}

func buildHasAccessQuery(listID int64, userID string) (string, []any, error) {
	return psql.
		Select("1").
		From("lists l").
		LeftJoin("list_access a ON a.list_id = l.id AND a.user_id = ?", userID).
		Where(sq.Eq{"l.id": listID}).
		Where(sq.Or{
			sq.Eq{"l.owner": userID},
			sq.NotEq{"a.user_id": nil},
		}).
		Limit(1).
		ToSql()
}

func buildGrantAccessQuery(listID int64, userID string) (string, []any, error) {
	return psql.
		Insert("list_access").
		Columns("list_id", "user_id").
		Values(listID, userID).
		Suffix("ON CONFLICT (list_id, user_id) DO NOTHING").
		ToSql()
}

func buildRevokeAccessQuery(listID int64, userID string) (string, []any, error) {
	return psql.
		Delete("list_access").
		Where(sq.Eq{"list_id": listID, "user_id": userID}).
		ToSql()
}

// ---------------------------------------------------------------------------
// list items
// ---------------------------------------------------------------------------

func buildItemsQuery(listID int64) (string, []any, error) {
	return psql.
		Select(listItemColumns...).
		From("list_items").
		Where(sq.Eq{"list_id": listID}).
		OrderBy("id").
		ToSql()
}

func buildCreateItemQuery(listID int64, description, creator string) (string, []any, error) {
	return psql.
		Insert("list_items").
		Columns("list_id", "description", "creator").
		Values(listID, description, creator).
		Suffix(returning(listItemColumns)).
		ToSql()
}

func buildDeleteItemQuery(listID, itemID int64) (string, []any, error) {
	return psql.
		Delete("list_items").
		Where(sq.Eq{"id": itemID, "list_id": listID}).
		ToSql()
}

// ---------------------------------------------------------------------------
// invites
// ---------------------------------------------------------------------------

func buildCreateInviteQuery(listID int64, inviter, invitee string) (string, []any, error) {
	return psql.
		Insert("invites").
		Columns("list_id", "inviter", "invitee").
		Values(listID, inviter, invitee).
		Suffix(returning(inviteColumns)).
		ToSql()
}

func buildGetInviteQuery(inviteID int64) (string, []any, error) {
	return psql.
		Select(inviteColumns...).
		From("invites").
		Where(sq.Eq{"id": inviteID}).
		ToSql()
}

// buildListInvitesQuery selects every invite of a list with the invitee email,
// which is what the collaborators screen shows.
func buildListInvitesQuery(listID int64) (string, []any, error) {
	return psql.
		Select("i.id", "i.list_id", "i.inviter", "i.invitee", "i.accepted", "u.email").
		From("invites i").
		Join("users u ON u.user_id = i.invitee").
		Where(sq.Eq{"i.list_id": listID}).
		OrderBy("i.id").
		ToSql()
}

// buildPendingInvitesQuery selects the unanswered invites of a user together
// with the list name, inviter email and list size.
func buildPendingInvitesQuery(userID string) (string, []any, error) {
	return psql.
		Select(
			"i.id", "i.list_id", "i.inviter", "i.invitee", "i.accepted",
			"u.email", "l.name", "COUNT(li.id) AS item_count",
		).
		From("invites i").
		Join("lists l ON l.id = i.list_id").
		Join("users u ON u.user_id = i.inviter").
		LeftJoin("list_items li ON li.list_id = l.id").
		Where(sq.Eq{"i.invitee": userID, "i.accepted": nil}).
		GroupBy("i.id", "l.name", "u.email").
		OrderBy("i.id").
		ToSql()
}

// buildAnswerInviteQuery only matches pending invites: an answered invite
// cannot be flipped, its access is revoked by deleting it.
func buildAnswerInviteQuery(inviteID int64, invitee string, accept bool) (string, []any, error) {
	return psql.
		Update("invites").
		Set("accepted", accept).
		Where(sq.Eq{"id": inviteID, "invitee": invitee, "accepted": nil}).
		Suffix(returning(inviteColumns)).
		ToSql()
}

func buildDeleteInviteQuery(inviteID int64) (string, []any, error) {
	return psql.
		Delete("invites").
		Where(sq.Eq{"id": inviteID}).
		Suffix(returning(inviteColumns)).
		ToSql()
}

func buildDeleteInviteOfUserQuery(listID int64, invitee string) (string, []any, error) {
	return psql.
		Delete("invites").
		Where(sq.Eq{"list_id": listID, "invitee": invitee}).
		ToSql()
}
