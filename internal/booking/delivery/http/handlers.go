package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	"shareit/pkg/response"
)

// Create godoc
// @Summary     Book an item
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Caller id"
// @Param       body             body   createReq true "Booking period and item"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request - unavailable item, bad dates or own item"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(output.Booking))
}

// Decide godoc
// @Summary     Approve or reject a booking
// @Description Only the item owner may decide. Approval is final.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int  true "Caller id"
// @Param       id               path   int  true "Booking ID"
// @Param       approved         query  bool true "true to approve, false to reject"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings/{id} [PATCH]
func (h *handler) Decide(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDecideReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var output booking.DecideBookingOutput
	if req.Approved {
		output, err = h.uc.Approve(ctx, h.scope(c), req.ID)
	} else {
		output, err = h.uc.Reject(ctx, h.scope(c), req.ID)
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.Decide: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(output.Booking))
}

// Detail godoc
// @Summary     Get booking
// @Description Visible to the booker and the item owner only.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller id"
// @Param       id               path   int true "Booking ID"
// @Success     200 {object} bookingResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, h.scope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(output.Booking))
}

// ListForBooker godoc
// @Summary     List the caller's bookings
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Caller id"
// @Param       state            query  string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param       from             query  int    false "Offset" default(0)
// @Param       size             query  int    false "Page size" default(10)
// @Success     200 {array}  bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Unknown state"
// @Router      /bookings [GET]
func (h *handler) ListForBooker(c *gin.Context) {
	h.list(c, booking.ViewBooker)
}

// ListForOwner godoc
// @Summary     List bookings on the caller's items
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Caller id"
// @Param       state            query  string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param       from             query  int    false "Offset" default(0)
// @Param       size             query  int    false "Page size" default(10)
// @Success     200 {array}  bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Unknown state"
// @Router      /bookings/owner [GET]
func (h *handler) ListForOwner(c *gin.Context) {
	h.list(c, booking.ViewOwner)
}

func (h *handler) list(c *gin.Context, view booking.View) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c, view)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
