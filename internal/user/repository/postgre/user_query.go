package postgre

import (
	"fmt"
	"strings"

	repo "shareit/internal/user/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneUser.
// All non-zero fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(email) = LOWER($%d)", idx))
		args = append(args, opt.Email)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
