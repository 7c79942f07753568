package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	"shareit/internal/model"
	"shareit/pkg/paging"
)

func (h *handler) scope(c *gin.Context) model.Scope {
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	return sc
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processDecideReq(c *gin.Context) (decideReq, error) {
	id, err := h.processID(c)
	if err != nil {
		return decideReq{}, err
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		return decideReq{}, errInvalidApproved
	}
	return decideReq{ID: id, Approved: approved}, nil
}

// processListReq reads state and paging. An unrecognised state keyword is
// passed on as the zero state, which the use case rejects.
func (h *handler) processListReq(c *gin.Context, view booking.View) (listReq, error) {
	p, err := paging.Parse(c.Query("from"), c.Query("size"))
	if err != nil {
		return listReq{}, err
	}
	st, _ := model.ParseBookingState(c.DefaultQuery("state", string(model.BookingStateAll)))
	return listReq{View: view, State: st, Paging: p}, nil
}

// processID parses the :id URI param.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
