package usecase

import (
	"context"
	"time"

	repo "shareit/internal/booking/repository"
	itemRepo "shareit/internal/item/repository"
	"shareit/internal/model"
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

// --- item repository ---

type fakeItemRepo struct {
	itemRepo.Repository // only GetOneItem is used
	items               map[int64]model.Item
}

func (r *fakeItemRepo) GetOneItem(ctx context.Context, id int64) (model.Item, error) {
	return r.items[id], nil
}

// --- booking repository ---

type memBookingRepo struct {
	bookings map[int64]model.Booking
	users    map[int64]model.User
	items    map[int64]model.Item
	nextID   int64

	lastList repo.ListBookingsOptions
	listErr  error
}

func (r *memBookingRepo) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
	r.nextID++
	b := model.Booking{
		ID:     r.nextID,
		Start:  opt.Start,
		End:    opt.End,
		Status: opt.Status,
		Item:   r.items[opt.ItemID],
		Booker: r.users[opt.BookerID],
	}
	r.bookings[b.ID] = b
	return b, nil
}

func (r *memBookingRepo) GetOneBooking(ctx context.Context, id int64) (model.Booking, error) {
	return r.bookings[id], nil
}

func (r *memBookingRepo) UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) (model.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return model.Booking{}, nil
	}
	b.Status = status
	r.bookings[id] = b
	return b, nil
}

func (r *memBookingRepo) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, error) {
	r.lastList = opt
	if r.listErr != nil {
		return nil, r.listErr
	}
	return []model.Booking{}, nil
}

// --- fixture ---

var fixedNow = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

var (
	owner  = model.User{ID: 1, Name: "user", Email: "email@email.ru"}
	booker = model.User{ID: 2, Name: "booker", Email: "booker@email.ru"}
	other  = model.User{ID: 3, Name: "other", Email: "other@email.ru"}

	drill  = model.Item{ID: 1, Name: "drill", Description: "cordless", Available: true, OwnerID: owner.ID}
	broken = model.Item{ID: 2, Name: "saw", Description: "broken", Available: false, OwnerID: owner.ID}
)

type fixture struct {
	uc       *implUseCase
	bookings *memBookingRepo
}

func newFixture(bookings ...model.Booking) fixture {
	users := map[int64]model.User{owner.ID: owner, booker.ID: booker, other.ID: other}
	items := map[int64]model.Item{drill.ID: drill, broken.ID: broken}

	br := &memBookingRepo{bookings: map[int64]model.Booking{}, users: users, items: items}
	for _, b := range bookings {
		br.bookings[b.ID] = b
		if b.ID > br.nextID {
			br.nextID = b.ID
		}
	}

	uc := New(br, &fakeUserRepo{users: users}, &fakeItemRepo{items: items}, &mockLogger{})
	uc.now = func() time.Time { return fixedNow }
	return fixture{uc: uc, bookings: br}
}
