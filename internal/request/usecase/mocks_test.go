package usecase

import (
	"context"
	"time"

	itemRepo "shareit/internal/item/repository"
	"shareit/internal/model"
	repo "shareit/internal/request/repository"
	userRepo "shareit/internal/user/repository"
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

type fakeUserRepo struct {
	userRepo.Repository // only GetOneUser is used
	users               map[int64]model.User
}

func (r *fakeUserRepo) GetOneUser(ctx context.Context, opt userRepo.GetOneUserOptions) (model.User, error) {
	return r.users[opt.ID], nil
}

type fakeItemRepo struct {
	itemRepo.Repository // only ListItems is used
	items               []model.Item
	calls               int
}

func (r *fakeItemRepo) ListItems(ctx context.Context, opt itemRepo.ListItemsOptions) ([]model.Item, error) {
	r.calls++
	want := make(map[int64]bool, len(opt.RequestIDs))
	for _, id := range opt.RequestIDs {
		want[id] = true
	}
	out := make([]model.Item, 0)
	for _, it := range r.items {
		if it.RequestID != nil && want[*it.RequestID] {
			out = append(out, it)
		}
	}
	return out, nil
}

type memRequestRepo struct {
	requests []model.ItemRequest
	lastList repo.ListRequestsOptions
}

func (r *memRequestRepo) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.ItemRequest, error) {
	rq := model.ItemRequest{
		ID:          int64(len(r.requests) + 1),
		Description: opt.Description,
		RequestorID: opt.RequestorID,
		Created:     opt.Created,
	}
	r.requests = append(r.requests, rq)
	return rq, nil
}

func (r *memRequestRepo) GetOneRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	for _, rq := range r.requests {
		if rq.ID == id {
			return rq, nil
		}
	}
	return model.ItemRequest{}, nil
}

// ListRequests applies the requestor filters and returns newest first.
func (r *memRequestRepo) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.ItemRequest, error) {
	r.lastList = opt
	out := make([]model.ItemRequest, 0)
	for i := len(r.requests) - 1; i >= 0; i-- {
		rq := r.requests[i]
		if opt.RequestorID != 0 && rq.RequestorID != opt.RequestorID {
			continue
		}
		if opt.ExcludeRequestorID != 0 && rq.RequestorID == opt.ExcludeRequestorID {
			continue
		}
		out = append(out, rq)
	}
	return out, nil
}

var fixedNow = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *implUseCase
	requests *memRequestRepo
	items    *fakeItemRepo
}

func newFixture(requests ...model.ItemRequest) fixture {
	rr := &memRequestRepo{requests: requests}
	ir := &fakeItemRepo{}
	uc := New(rr, &fakeUserRepo{users: map[int64]model.User{
		1: {ID: 1, Name: "alice"},
		2: {ID: 2, Name: "bob"},
	}}, ir, &mockLogger{})
	uc.now = func() time.Time { return fixedNow }
	return fixture{uc: uc, requests: rr, items: ir}
}
