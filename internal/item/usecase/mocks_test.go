package usecase

import (
	"context"
	"time"

	bookingRepo "shareit/internal/booking/repository"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
	requestRepo "shareit/internal/request/repository"
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

// --- user repository ---

type fakeUserRepo struct {
	users map[int64]model.User
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, opt userRepo.CreateUserOptions) (model.User, error) {
	return model.User{}, nil
}

func (r *fakeUserRepo) GetOneUser(ctx context.Context, opt userRepo.GetOneUserOptions) (model.User, error) {
	return r.users[opt.ID], nil
}

func (r *fakeUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, opt userRepo.UpdateUserOptions) (model.User, error) {
	return model.User{}, nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id int64) error {
	return nil
}

// --- request repository ---

type fakeRequestRepo struct {
	requests map[int64]model.ItemRequest
}

func (r *fakeRequestRepo) CreateRequest(ctx context.Context, opt requestRepo.CreateRequestOptions) (model.ItemRequest, error) {
	return model.ItemRequest{}, nil
}

func (r *fakeRequestRepo) GetOneRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	return r.requests[id], nil
}

func (r *fakeRequestRepo) ListRequests(ctx context.Context, opt requestRepo.ListRequestsOptions) ([]model.ItemRequest, error) {
	return nil, nil
}

// --- booking repository ---

type fakeBookingRepo struct {
	listFn   func(opt bookingRepo.ListBookingsOptions) ([]model.Booking, error)
	lastList bookingRepo.ListBookingsOptions
	calls    int
}

func (r *fakeBookingRepo) CreateBooking(ctx context.Context, opt bookingRepo.CreateBookingOptions) (model.Booking, error) {
	return model.Booking{}, nil
}

func (r *fakeBookingRepo) GetOneBooking(ctx context.Context, id int64) (model.Booking, error) {
	return model.Booking{}, nil
}

func (r *fakeBookingRepo) UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) (model.Booking, error) {
	return model.Booking{}, nil
}

func (r *fakeBookingRepo) ListBookings(ctx context.Context, opt bookingRepo.ListBookingsOptions) ([]model.Booking, error) {
	r.calls++
	r.lastList = opt
	if r.listFn != nil {
		return r.listFn(opt)
	}
	return []model.Booking{}, nil
}

// --- item repository ---

type memItemRepo struct {
	items    map[int64]model.Item
	comments []model.Comment
	authors  map[int64]string
	nextID   int64

	searchCalls int
	lastSearch  repo.SearchItemsOptions
	keepOnDel   bool
}

func newMemItemRepo(items ...model.Item) *memItemRepo {
	r := &memItemRepo{items: map[int64]model.Item{}, authors: map[int64]string{}}
	for _, it := range items {
		r.items[it.ID] = it
		if it.ID > r.nextID {
			r.nextID = it.ID
		}
	}
	return r
}

func (r *memItemRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	r.nextID++
	it := model.Item{
		ID:          r.nextID,
		Name:        opt.Name,
		Description: opt.Description,
		Available:   opt.Available,
		OwnerID:     opt.OwnerID,
		RequestID:   opt.RequestID,
	}
	r.items[it.ID] = it
	return it, nil
}

func (r *memItemRepo) GetOneItem(ctx context.Context, id int64) (model.Item, error) {
	return r.items[id], nil
}

func (r *memItemRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	out := make([]model.Item, 0)
	for id := int64(1); id <= r.nextID; id++ {
		it, ok := r.items[id]
		if ok && (opt.OwnerID == 0 || it.OwnerID == opt.OwnerID) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memItemRepo) SearchItems(ctx context.Context, opt repo.SearchItemsOptions) ([]model.Item, error) {
	r.searchCalls++
	r.lastSearch = opt
	return []model.Item{}, nil
}

func (r *memItemRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	it, ok := r.items[opt.ID]
	if !ok {
		return model.Item{}, nil
	}
	it.Name, it.Description, it.Available = opt.Name, opt.Description, opt.Available
	r.items[it.ID] = it
	return it, nil
}

func (r *memItemRepo) DeleteItem(ctx context.Context, id int64) error {
	if !r.keepOnDel {
		delete(r.items, id)
	}
	return nil
}

func (r *memItemRepo) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.Comment, error) {
	c := model.Comment{
		ID:         int64(len(r.comments) + 1),
		Text:       opt.Text,
		ItemID:     opt.ItemID,
		AuthorID:   opt.AuthorID,
		AuthorName: r.authors[opt.AuthorID],
		Created:    opt.Created,
	}
	r.comments = append(r.comments, c)
	return c, nil
}

func (r *memItemRepo) ListComments(ctx context.Context, itemIDs []int64) ([]model.Comment, error) {
	want := make(map[int64]bool, len(itemIDs))
	for _, id := range itemIDs {
		want[id] = true
	}
	out := make([]model.Comment, 0)
	for _, c := range r.comments {
		if want[c.ItemID] {
			out = append(out, c)
		}
	}
	return out, nil
}

// --- fixture ---

var fixedNow = time.Date(2023, 8, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *implUseCase
	items    *memItemRepo
	bookings *fakeBookingRepo
}

func newFixture(items ...model.Item) fixture {
	itemRepo := newMemItemRepo(items...)
	itemRepo.authors[2] = "booker"
	bookings := &fakeBookingRepo{}
	uc := New(
		itemRepo,
		&fakeUserRepo{users: map[int64]model.User{
			1: {ID: 1, Name: "owner", Email: "owner@mail.ru"},
			2: {ID: 2, Name: "booker", Email: "booker@mail.ru"},
		}},
		&fakeRequestRepo{requests: map[int64]model.ItemRequest{
			4: {ID: 4, Description: "need a drill", RequestorID: 2},
		}},
		bookings,
		&mockLogger{},
	)
	uc.now = func() time.Time { return fixedNow }
	return fixture{uc: uc, items: itemRepo, bookings: bookings}
}
