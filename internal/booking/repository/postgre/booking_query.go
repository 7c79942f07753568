package postgre

import (
	"fmt"
	"strings"

	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/postgres"
)

func (r *implRepository) buildListQuery(opt repo.ListBookingsOptions) (string, []any) {
	conds := []string{"TRUE"}
	args := make([]any, 0, 4)

	if opt.BookerID != 0 {
		args = append(args, opt.BookerID)
		conds = append(conds, fmt.Sprintf("b.booker_id = $%d", len(args)))
	}
	if opt.OwnerID != 0 {
		args = append(args, opt.OwnerID)
		conds = append(conds, fmt.Sprintf("i.owner_id = $%d", len(args)))
	}
	if opt.ItemIDs != nil {
		cond, inArgs := postgres.InCondition("b.item_id", len(args)+1, opt.ItemIDs)
		args = append(args, inArgs...)
		conds = append(conds, cond)
	}
	if opt.Status != "" {
		args = append(args, string(opt.Status))
		conds = append(conds, fmt.Sprintf("b.status = $%d", len(args)))
	}

	if cond, stateArgs := stateCondition(opt.State, opt, len(args)+1); cond != "" {
		args = append(args, stateArgs...)
		conds = append(conds, cond)
	}

	return strings.Join(conds, " AND "), args
}

// stateCondition renders the time or status predicate for a booking state.
// ALL and the empty state add nothing.
func stateCondition(state model.BookingState, opt repo.ListBookingsOptions, idx int) (string, []any) {
	switch state {
	case model.BookingStateCurrent:
		return fmt.Sprintf("b.start_date <= $%d AND b.end_date > $%d", idx, idx), []any{opt.Now}
	case model.BookingStatePast:
		return fmt.Sprintf("b.end_date < $%d", idx), []any{opt.Now}
	case model.BookingStateFuture:
		return fmt.Sprintf("b.start_date > $%d", idx), []any{opt.Now}
	case model.BookingStateWaiting:
		return fmt.Sprintf("b.status = $%d", idx), []any{string(model.BookingStatusWaiting)}
	case model.BookingStateRejected:
		return fmt.Sprintf("b.status = $%d", idx), []any{string(model.BookingStatusRejected)}
	default:
		return "", nil
	}
}

func (r *implRepository) appendPaging(query string, args []any, opt repo.ListBookingsOptions) (string, []any) {
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
