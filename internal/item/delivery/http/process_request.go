package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

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

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	p, err := paging.Parse(c.Query("from"), c.Query("size"))
	if err != nil {
		return searchReq{}, err
	}
	return searchReq{Text: c.Query("text"), Paging: p}, nil
}

func (h *handler) processCommentReq(c *gin.Context) (commentReq, error) {
	var req commentReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ItemID = id
	return req, nil
}

// processID parses the :id URI param.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
