package postgre

import (
	"context"
	"fmt"

	repo "shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/pkg/postgres"
)

func scanComment(row interface{ Scan(...any) error }) (model.Comment, error) {
	var c model.Comment
	err := row.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created)
	return c, err
}

// CreateComment inserts a Comment and returns it with the author name resolved.
func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.Comment, error) {
	const query = `
		WITH c AS (
			INSERT INTO comments (text, item_id, author_id, created)
			VALUES ($1, $2, $3, $4)
			RETURNING id, text, item_id, author_id, created
		)
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		FROM c JOIN users u ON u.id = c.author_id`

	c, err := scanComment(r.db.QueryRowContext(ctx, query, opt.Text, opt.ItemID, opt.AuthorID, opt.Created))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return model.Comment{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// ListComments returns comments on itemIDs, oldest first.
func (r *implRepository) ListComments(ctx context.Context, itemIDs []int64) ([]model.Comment, error) {
	cond, args := postgres.InCondition("c.item_id", 1, itemIDs)
	query := fmt.Sprintf(`
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		FROM comments c JOIN users u ON u.id = c.author_id
		WHERE %s
		ORDER BY c.created ASC, c.id ASC`, cond)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListComments"), err)
			return nil, repo.ErrFailedToList
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	return comments, nil
}
