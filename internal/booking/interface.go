package booking

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateBookingInput) (CreateBookingOutput, error)
	Approve(ctx context.Context, sc model.Scope, id int64) (DecideBookingOutput, error)
	Reject(ctx context.Context, sc model.Scope, id int64) (DecideBookingOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (DetailBookingOutput, error)
	List(ctx context.Context, sc model.Scope, input ListBookingsInput) (ListBookingsOutput, error)
}
