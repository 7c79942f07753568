package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit/internal/model"
	repo "shareit/internal/user/repository"
	"shareit/pkg/postgres"
)

const userColumns = `id, name, email`

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING ` + userColumns

	var u model.User
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Email).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == 0) when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, mods)

	var u model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// ListUsers returns users ordered by id.
func (r *implRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListUsers"), err)
			return nil, repo.ErrFailedToList
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	return users, nil
}

// UpdateUser overwrites name and email of a User and returns the updated entity.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	const query = `
		UPDATE users
		SET name = $1, email = $2
		WHERE id = $3
		RETURNING ` + userColumns

	var u model.User
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Email, opt.ID).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}

// DeleteUser removes a User by ID.
func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
