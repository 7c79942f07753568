package gateway

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	"shareit/pkg/paging"
	"shareit/pkg/response"
)

// Forward passes the request to the core server unchanged.
func (g *Gateway) Forward(c *gin.Context) {
	g.proxy.ServeHTTP(c.Writer, c.Request)
}

// forwardIfValid forwards when err is nil and answers with err otherwise.
func (g *Gateway) forwardIfValid(c *gin.Context, err error) {
	if err != nil {
		g.l.Debugf(c.Request.Context(), "gateway %s %s rejected: %v", c.Request.Method, c.Request.URL.Path, err)
		response.Error(c, err)
		return
	}
	g.Forward(c)
}

// checkBody decodes the body into dst and validates it.
func (g *Gateway) checkBody(c *gin.Context, dst any) error {
	if err := readBody(c, dst); err != nil {
		return err
	}
	return g.check(dst)
}

func (g *Gateway) CreateUser(c *gin.Context) {
	var body userCreateBody
	g.forwardIfValid(c, g.checkBody(c, &body))
}

func (g *Gateway) UpdateUser(c *gin.Context) {
	var body userUpdateBody
	g.forwardIfValid(c, g.checkBody(c, &body))
}

func (g *Gateway) CreateItem(c *gin.Context) {
	var body itemCreateBody
	g.forwardIfValid(c, g.checkBody(c, &body))
}

func (g *Gateway) AddComment(c *gin.Context) {
	var body commentBody
	g.forwardIfValid(c, g.checkBody(c, &body))
}

func (g *Gateway) CreateRequest(c *gin.Context) {
	var body requestCreateBody
	g.forwardIfValid(c, g.checkBody(c, &body))
}

func (g *Gateway) CreateBooking(c *gin.Context) {
	var body bookingCreateBody
	if err := readBody(c, &body); err != nil {
		g.forwardIfValid(c, err)
		return
	}
	g.forwardIfValid(c, g.check(body.toValidated()))
}

// DecideBooking requires approved to be a boolean.
func (g *Gateway) DecideBooking(c *gin.Context) {
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		g.forwardIfValid(c, errApproved)
		return
	}
	g.Forward(c)
}

// ListBookings checks paging first, then the state keyword.
func (g *Gateway) ListBookings(c *gin.Context) {
	if err := checkPaging(c); err != nil {
		g.forwardIfValid(c, err)
		return
	}
	raw := c.DefaultQuery("state", string(model.BookingStateAll))
	if _, ok := model.ParseBookingState(raw); !ok {
		g.forwardIfValid(c, errUnknownState(raw))
		return
	}
	g.Forward(c)
}

// Search answers blank text with an empty list without asking the server.
func (g *Gateway) Search(c *gin.Context) {
	if err := checkPaging(c); err != nil {
		g.forwardIfValid(c, err)
		return
	}
	if strings.TrimSpace(c.Query("text")) == "" {
		response.OK(c, []any{})
		return
	}
	g.Forward(c)
}

func (g *Gateway) ListAllRequests(c *gin.Context) {
	g.forwardIfValid(c, checkPaging(c))
}

func checkPaging(c *gin.Context) error {
	p, err := paging.Parse(c.Query("from"), c.Query("size"))
	if err != nil || p.Validate() != nil {
		return errInvalidPaging
	}
	return nil
}
