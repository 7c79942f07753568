package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit/internal/model"
	repo "shareit/internal/request/repository"
)

const requestColumns = `id, description, requestor_id, created`

func scanRequest(row interface{ Scan(...any) error }) (model.ItemRequest, error) {
	var rq model.ItemRequest
	err := row.Scan(&rq.ID, &rq.Description, &rq.RequestorID, &rq.Created)
	return rq, err
}

// CreateRequest inserts a new ItemRequest and returns the stored entity.
func (r *implRepository) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.ItemRequest, error) {
	const query = `
		INSERT INTO requests (description, requestor_id, created)
		VALUES ($1, $2, $3)
		RETURNING ` + requestColumns

	rq, err := scanRequest(r.db.QueryRowContext(ctx, query, opt.Description, opt.RequestorID, opt.Created))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRequest"), err)
		return model.ItemRequest{}, repo.ErrFailedToInsert
	}
	return rq, nil
}

// GetOneRequest fetches a request by id.
func (r *implRepository) GetOneRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	const query = `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	rq, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.ItemRequest{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRequest"), err)
		return model.ItemRequest{}, repo.ErrFailedToGet
	}
	return rq, nil
}

// ListRequests returns requests matching opt ordered by creation time, newest first.
func (r *implRepository) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.ItemRequest, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM requests WHERE %s ORDER BY created DESC, id DESC", requestColumns, where)
	query, args = r.appendPaging(query, args, opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	requests := make([]model.ItemRequest, 0)
	for rows.Next() {
		rq, err := scanRequest(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRequests"), err)
			return nil, repo.ErrFailedToList
		}
		requests = append(requests, rq)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	return requests, nil
}
