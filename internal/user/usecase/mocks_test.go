package usecase_test

import (
	"context"
	"strings"

	"shareit/internal/model"
	repo "shareit/internal/user/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memUserRepo is an in-memory user store keyed by id.
type memUserRepo struct {
	users  map[int64]model.User
	nextID int64

	getErr    error
	deleteErr error
	keepOnDel bool // simulate a delete that silently does nothing
}

func newMemUserRepo(users ...model.User) *memUserRepo {
	r := &memUserRepo{users: map[int64]model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *memUserRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, opt.Email) {
			return model.User{}, repo.ErrDuplicateEmail
		}
	}
	r.nextID++
	u := model.User{ID: r.nextID, Name: opt.Name, Email: opt.Email}
	r.users[u.ID] = u
	return u, nil
}

func (r *memUserRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	if r.getErr != nil {
		return model.User{}, r.getErr
	}
	for _, u := range r.users {
		if opt.ID != 0 && u.ID != opt.ID {
			continue
		}
		if opt.Email != "" && !strings.EqualFold(u.Email, opt.Email) {
			continue
		}
		return u, nil
	}
	return model.User{}, nil
}

func (r *memUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	if _, ok := r.users[opt.ID]; !ok {
		return model.User{}, nil
	}
	u := model.User{ID: opt.ID, Name: opt.Name, Email: opt.Email}
	r.users[opt.ID] = u
	return u, nil
}

func (r *memUserRepo) DeleteUser(ctx context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if !r.keepOnDel {
		delete(r.users, id)
	}
	return nil
}
