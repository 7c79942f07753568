package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shareit/internal/booking"
	"shareit/internal/middleware"
	"shareit/internal/model"
	"shareit/pkg/log"
)

type stubUseCase struct {
	booking.UseCase

	gotCreate booking.CreateBookingInput
	gotList   booking.ListBookingsInput
	decided   string
	err       error
}

func (s *stubUseCase) Create(ctx context.Context, sc model.Scope, input booking.CreateBookingInput) (booking.CreateBookingOutput, error) {
	s.gotCreate = input
	return booking.CreateBookingOutput{Booking: model.Booking{
		ID: 1, Start: input.Start, End: input.End, Status: model.BookingStatusWaiting,
		Item: model.Item{ID: input.ItemID}, Booker: model.User{ID: sc.UserID},
	}}, s.err
}

func (s *stubUseCase) Approve(ctx context.Context, sc model.Scope, id int64) (booking.DecideBookingOutput, error) {
	s.decided = "approve"
	return booking.DecideBookingOutput{Booking: model.Booking{ID: id, Status: model.BookingStatusApproved}}, s.err
}

func (s *stubUseCase) Reject(ctx context.Context, sc model.Scope, id int64) (booking.DecideBookingOutput, error) {
	s.decided = "reject"
	return booking.DecideBookingOutput{Booking: model.Booking{ID: id, Status: model.BookingStatusRejected}}, s.err
}

func (s *stubUseCase) List(ctx context.Context, sc model.Scope, input booking.ListBookingsInput) (booking.ListBookingsOutput, error) {
	s.gotList = input
	if !input.State.Valid() {
		return booking.ListBookingsOutput{}, booking.ErrUnknownState
	}
	return booking.ListBookingsOutput{Bookings: []model.Booking{}}, s.err
}

func newTestRouter(uc booking.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group(""), New(l, uc), middleware.New(l, nil))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.UserIDHeader, "2")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &stubUseCase{}
		w := do(newTestRouter(uc), http.MethodPost, "/bookings",
			`{"itemId":1,"start":"2023-06-12T10:00:00","end":"2023-07-12T10:00:00"}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, int64(1), uc.gotCreate.ItemID)
		require.Equal(t, time.Date(2023, 6, 12, 10, 0, 0, 0, time.Local), uc.gotCreate.Start)

		var body struct {
			Data bookingResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "WAITING", body.Data.Status)
		require.Equal(t, int64(2), body.Data.Booker.ID)
	})

	t.Run("Missing End", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{}), http.MethodPost, "/bookings", `{"itemId":1,"start":"2023-06-12T10:00:00"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Owner Books Own Item", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{err: booking.ErrBookerIsOwner}), http.MethodPost, "/bookings",
			`{"itemId":1,"start":"2023-06-12T10:00:00","end":"2023-07-12T10:00:00"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDecideHandler(t *testing.T) {
	tcs := map[string]struct {
		query    string
		err      error
		wantCode int
		want     string
	}{
		"approve":          {query: "?approved=true", wantCode: http.StatusOK, want: "approve"},
		"reject":           {query: "?approved=false", wantCode: http.StatusOK, want: "reject"},
		"missing approved": {query: "", wantCode: http.StatusBadRequest},
		"already approved": {query: "?approved=false", err: booking.ErrAlreadyApproved, wantCode: http.StatusBadRequest, want: "reject"},
		"unknown booking":  {query: "?approved=true", err: booking.ErrBookingNotFound, wantCode: http.StatusNotFound, want: "approve"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &stubUseCase{err: tc.err}
			w := do(newTestRouter(uc), http.MethodPatch, "/bookings/5"+tc.query, "")
			require.Equal(t, tc.wantCode, w.Code)
			require.Equal(t, tc.want, uc.decided)
		})
	}
}

func TestListHandler(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		uc := &stubUseCase{}
		w := do(newTestRouter(uc), http.MethodGet, "/bookings", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, booking.ViewBooker, uc.gotList.View)
		require.Equal(t, model.BookingStateAll, uc.gotList.State)
		require.Equal(t, 10, uc.gotList.Paging.Size)
	})

	t.Run("Owner Lower Case State", func(t *testing.T) {
		uc := &stubUseCase{}
		w := do(newTestRouter(uc), http.MethodGet, "/bookings/owner?state=future&from=5&size=5", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, booking.ViewOwner, uc.gotList.View)
		require.Equal(t, model.BookingStateFuture, uc.gotList.State)
		require.Equal(t, 5, uc.gotList.Paging.From)
	})

	t.Run("Unknown State", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{}), http.MethodGet, "/bookings?state=UNSUPPORTED_STATUS", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, w.Body.String(), "Unknown state: UNSUPPORTED_STATUS")
	})

	t.Run("Non Numeric From", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{}), http.MethodGet, "/bookings?from=abc", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
