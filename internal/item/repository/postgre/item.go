package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

const itemColumns = `id, name, description, is_available, owner_id, request_id`

func scanItem(row interface{ Scan(...any) error }) (model.Item, error) {
	var (
		it        model.Item
		requestID sql.NullInt64
	)
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &requestID); err != nil {
		return model.Item{}, err
	}
	if requestID.Valid {
		id := requestID.Int64
		it.RequestID = &id
	}
	return it, nil
}

// CreateItem inserts a new Item and returns the stored entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	const query = `
		INSERT INTO items (name, description, is_available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + itemColumns

	var requestID sql.NullInt64
	if opt.RequestID != nil {
		requestID = sql.NullInt64{Int64: *opt.RequestID, Valid: true}
	}

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.Name, opt.Description, opt.Available, opt.OwnerID, requestID))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneItem fetches an item by id.
func (r *implRepository) GetOneItem(ctx context.Context, id int64) (model.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListItems returns items matching opt ordered by id.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM items WHERE %s ORDER BY id ASC", itemColumns, where)
	return r.queryItems(ctx, "ListItems", query, args...)
}

// SearchItems returns available items whose name or description contains opt.Text.
func (r *implRepository) SearchItems(ctx context.Context, opt repo.SearchItemsOptions) ([]model.Item, error) {
	query, args := r.buildSearchQuery(opt)
	return r.queryItems(ctx, "SearchItems", query, args...)
}

// UpdateItem overwrites name, description and availability of an Item.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	const query = `
		UPDATE items
		SET name = $1, description = $2, is_available = $3
		WHERE id = $4
		RETURNING ` + itemColumns

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.Name, opt.Description, opt.Available, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return it, nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	const query = `DELETE FROM items WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) queryItems(ctx context.Context, method, query string, args ...any) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}
