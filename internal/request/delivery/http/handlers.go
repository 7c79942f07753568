package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     Post an item request
// @Tags        Requests
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Caller id"
// @Param       body             body   createReq true "What is wanted"
// @Success     200 {object} requestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests [POST]
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

	response.OK(c, newRequestResp(output.RequestView))
}

// ListOwn godoc
// @Summary     List the caller's requests
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller id"
// @Success     200 {array}  requestResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests [GET]
func (h *handler) ListOwn(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListOwn(ctx, h.scope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOwn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListAll godoc
// @Summary     Browse other users' requests
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true  "Caller id"
// @Param       from             query  int false "Offset" default(0)
// @Param       size             query  int false "Page size" default(10)
// @Success     200 {array}  requestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests/all [GET]
func (h *handler) ListAll(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListAllReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListAll(ctx, h.scope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get request
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller id"
// @Param       id               path   int true "Request ID"
// @Success     200 {object} requestResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests/{id} [GET]
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

	response.OK(c, newRequestResp(output.RequestView))
}
