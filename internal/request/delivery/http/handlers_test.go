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

	"shareit/internal/middleware"
	"shareit/internal/model"
	"shareit/internal/request"
	"shareit/pkg/log"
)

type stubUseCase struct {
	request.UseCase

	gotScope  model.Scope
	gotCreate request.CreateRequestInput
	gotAll    request.ListAllInput
	views     []request.RequestView
	err       error
}

func (s *stubUseCase) Create(ctx context.Context, sc model.Scope, input request.CreateRequestInput) (request.CreateRequestOutput, error) {
	s.gotScope, s.gotCreate = sc, input
	return request.CreateRequestOutput{RequestView: request.RequestView{
		Request: model.ItemRequest{ID: 1, Description: input.Description, RequestorID: sc.UserID},
		Items:   []model.Item{},
	}}, s.err
}

func (s *stubUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (request.DetailRequestOutput, error) {
	s.gotScope = sc
	if len(s.views) == 0 {
		return request.DetailRequestOutput{}, s.err
	}
	return request.DetailRequestOutput{RequestView: s.views[0]}, s.err
}

func (s *stubUseCase) ListOwn(ctx context.Context, sc model.Scope) (request.ListRequestsOutput, error) {
	s.gotScope = sc
	return request.ListRequestsOutput{Requests: s.views}, s.err
}

func (s *stubUseCase) ListAll(ctx context.Context, sc model.Scope, input request.ListAllInput) (request.ListRequestsOutput, error) {
	s.gotScope, s.gotAll = sc, input
	return request.ListRequestsOutput{Requests: s.views}, s.err
}

func newTestRouter(uc request.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group(""), New(l, uc), middleware.New(l, nil))
	return r
}

func do(r http.Handler, method, path, body string, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &stubUseCase{}
		w := do(newTestRouter(uc), http.MethodPost, "/requests", `{"description":"need a ladder"}`, "3")

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, int64(3), uc.gotScope.UserID)
		require.Equal(t, "need a ladder", uc.gotCreate.Description)

		var body struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, float64(3), body.Data["requestorId"])
		require.Equal(t, []any{}, body.Data["items"])
	})

	t.Run("Missing Description", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{}), http.MethodPost, "/requests", `{}`, "3")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown User", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{err: request.ErrUserNotFound}), http.MethodPost, "/requests",
			`{"description":"need a ladder"}`, "3")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDetailHandler(t *testing.T) {
	created := time.Date(2023, 7, 1, 9, 30, 0, 0, time.Local)
	reqID := int64(1)
	uc := &stubUseCase{views: []request.RequestView{{
		Request: model.ItemRequest{ID: 1, Description: "need a ladder", RequestorID: 3, Created: created},
		Items:   []model.Item{{ID: 5, Name: "ladder", Available: true, OwnerID: 4, RequestID: &reqID}},
	}}}

	w := do(newTestRouter(uc), http.MethodGet, "/requests/1", "", "3")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Created string `json:"created"`
			Items   []struct {
				ID        int64  `json:"id"`
				RequestID *int64 `json:"requestId"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "2023-07-01T09:30:00", body.Data.Created)
	require.Len(t, body.Data.Items, 1)
	require.Equal(t, int64(1), *body.Data.Items[0].RequestID)

	t.Run("Not Found", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{err: request.ErrRequestNotFound}), http.MethodGet, "/requests/9", "", "3")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{}), http.MethodGet, "/requests/x", "", "3")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListAllHandler(t *testing.T) {
	tcs := map[string]struct {
		query    string
		err      error
		wantCode int
		wantFrom int
		wantSize int
	}{
		"Defaults": {
			wantCode: http.StatusOK,
			wantFrom: 0,
			wantSize: 10,
		},
		"Explicit Paging": {
			query:    "?from=4&size=2",
			wantCode: http.StatusOK,
			wantFrom: 4,
			wantSize: 2,
		},
		"Non Numeric Size": {
			query:    "?size=two",
			wantCode: http.StatusBadRequest,
		},
		"Invalid Paging From Use Case": {
			query:    "?from=-1",
			err:      request.ErrInvalidPaging,
			wantCode: http.StatusBadRequest,
			wantFrom: -1,
			wantSize: 10,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &stubUseCase{views: []request.RequestView{}, err: tc.err}
			w := do(newTestRouter(uc), http.MethodGet, "/requests/all"+tc.query, "", "3")

			require.Equal(t, tc.wantCode, w.Code)
			if tc.wantSize != 0 {
				require.Equal(t, tc.wantFrom, uc.gotAll.Paging.From)
				require.Equal(t, tc.wantSize, uc.gotAll.Paging.Size)
			}
		})
	}
}

func TestListOwnHandler(t *testing.T) {
	uc := &stubUseCase{views: []request.RequestView{}}
	w := do(newTestRouter(uc), http.MethodGet, "/requests", "", "3")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(3), uc.gotScope.UserID)
	require.JSONEq(t, `{"error_code":0,"message":"Success","data":[]}`, w.Body.String())
}
