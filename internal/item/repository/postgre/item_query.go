package postgre

import (
	"fmt"
	"strings"

	repo "shareit/internal/item/repository"
	"shareit/pkg/postgres"
)

func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	conds := []string{"TRUE"}
	args := make([]any, 0, 1)

	if opt.OwnerID != 0 {
		args = append(args, opt.OwnerID)
		conds = append(conds, fmt.Sprintf("owner_id = $%d", len(args)))
	}
	if opt.RequestIDs != nil {
		cond, inArgs := postgres.InCondition("request_id", len(args)+1, opt.RequestIDs)
		args = append(args, inArgs...)
		conds = append(conds, cond)
	}

	return strings.Join(conds, " AND "), args
}

// buildSearchQuery escapes LIKE wildcards in the search text so it matches literally.
func (r *implRepository) buildSearchQuery(opt repo.SearchItemsOptions) (string, []any) {
	pattern := "%" + likeEscaper.Replace(opt.Text) + "%"
	args := []any{pattern}

	query := `SELECT ` + itemColumns + ` FROM items
		WHERE is_available = TRUE AND (name ILIKE $1 OR description ILIKE $1)
		ORDER BY id ASC`

	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opt.Offset > 0 {
		args = append(args, opt.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
