package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     List a new item
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Caller id"
// @Param       body             body   createReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - user or request"
// @Router      /items [POST]
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

	response.OK(c, newItemResp(output.Item))
}

// List godoc
// @Summary     List the caller's items
// @Description Each item carries its comments and the last/next approved booking.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller id"
// @Success     200 {array}  itemDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, h.scope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item
// @Description Booking summaries are only filled in for the owner.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller id"
// @Param       id               path   int true "Item ID"
// @Success     200 {object} itemDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [GET]
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

	response.OK(c, newItemDetailResp(output.ItemView))
}

// Update godoc
// @Summary     Update item
// @Description Partial update by the owner: omitted fields keep their stored value.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Caller id"
// @Param       id               path   int       true "Item ID"
// @Param       body             body   updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete item
// @Tags        Items
// @Param       id path int true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, true)
}

// Search godoc
// @Summary     Search available items
// @Description Case-insensitive match on name or description. Blank text returns an empty list.
// @Tags        Items
// @Produce     json
// @Param       text query string false "Search text"
// @Param       from query int    false "Offset" default(0)
// @Param       size query int    false "Page size" default(10)
// @Success     200 {array}  itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /items/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// AddComment godoc
// @Summary     Comment on an item
// @Description Only users with a finished booking of the item may comment.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int        true "Caller id"
// @Param       id               path   int        true "Item ID"
// @Param       body             body   commentReq true "Comment"
// @Success     200 {object} commentResp
// @Failure     400 {object} response.Resp "Bad Request - never rented"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id}/comment [POST]
func (h *handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddComment(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddComment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCommentResp(output.Comment))
}
