package postgre

import (
	"fmt"
	"strings"

	repo "shareit/internal/request/repository"
)

func (r *implRepository) buildListQuery(opt repo.ListRequestsOptions) (string, []any) {
	conds := []string{"TRUE"}
	args := make([]any, 0, 2)

	if opt.RequestorID != 0 {
		args = append(args, opt.RequestorID)
		conds = append(conds, fmt.Sprintf("requestor_id = $%d", len(args)))
	}
	if opt.ExcludeRequestorID != 0 {
		args = append(args, opt.ExcludeRequestorID)
		conds = append(conds, fmt.Sprintf("requestor_id <> $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

func (r *implRepository) appendPaging(query string, args []any, opt repo.ListRequestsOptions) (string, []any) {
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
