package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/jackc/pgerrcode"
)

type listItemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewListItemRepository constructs a PostgreSQL-backed [ListItemRepository].
func NewListItemRepository(db *DB, logger *logger.Logger) ListItemRepository {
	logger.Debug().Msg("creating list item repository")
	return &listItemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *listItemRepository) Items(ctx context.Context, listID int64) ([]models.ListItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildItemsQuery(listID)
	if err != nil {
		log.Err(err).Str("func", "*listItemRepository.Items").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listItemRepository.Items").Int64("list_id", listID).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.ListItem, 0)
	for rows.Next() {
		var item models.ListItem
		if err = rows.Scan(&item.ID, &item.ListID, &item.Description, &item.Creator); err != nil {
			log.Err(err).Str("func", "*listItemRepository.Items").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// CreateItem inserts the item. A foreign key violation means the list is
// gone and is reported as [ErrListNotFound].
func (r *listItemRepository) CreateItem(ctx context.Context, item models.ListItem) (models.ListItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateItemQuery(item.ListID, item.Description, item.Creator)
	if err != nil {
		log.Err(err).Str("func", "*listItemRepository.CreateItem").Msg("error building query")
		return models.ListItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.ListItem
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.ListID, &created.Description, &created.Creator)
	if err != nil {
		log.Err(err).Str("func", "*listItemRepository.CreateItem").Int64("list_id", item.ListID).Msg("error creating item")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.ListItem{}, ErrListNotFound
		}
		return models.ListItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *listItemRepository) DeleteItem(ctx context.Context, listID, itemID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(listID, itemID)
	if err != nil {
		log.Err(err).Str("func", "*listItemRepository.DeleteItem").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listItemRepository.DeleteItem").
			Int64("list_id", listID).Int64("item_id", itemID).Msg("error deleting item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrListItemNotFound)
}
