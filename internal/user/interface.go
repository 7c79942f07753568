package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateUserInput) (CreateUserOutput, error)
	List(ctx context.Context) (ListUsersOutput, error)
	Detail(ctx context.Context, id int64) (DetailUserOutput, error)
	Update(ctx context.Context, input UpdateUserInput) (UpdateUserOutput, error)
	Delete(ctx context.Context, id int64) error
}
