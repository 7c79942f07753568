package gateway

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"shareit/internal/middleware"
	"shareit/pkg/log"
	"shareit/pkg/response"
)

// Config is the dependency bag passed to New().
type Config struct {
	Logger    log.Logger
	ServerURL string
	Timeout   time.Duration
}

// Gateway validates request shapes and forwards valid requests to the core server.
type Gateway struct {
	l        log.Logger
	proxy    *httputil.ReverseProxy
	validate *validator.Validate
	now      func() time.Time
}

// New creates a Gateway forwarding to cfg.ServerURL.
func New(cfg Config) (*Gateway, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	target, err := url.Parse(cfg.ServerURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, errors.New("server url must be an absolute URL")
	}

	g := &Gateway{
		l:   cfg.Logger,
		now: time.Now,
	}
	g.proxy = g.newProxy(target, cfg.Timeout)
	g.validate = g.newValidator()
	return g, nil
}

// Handler builds the gin engine with the shared middleware chain and CORS on top.
func (g *Gateway) Handler(mw middleware.Middleware, allowedOrigins []string) http.Handler {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		g.l.Errorf(c.Request.Context(), "gateway panic recovered: %v", recovered)
		response.InternalError(c, nil)
		c.Abort()
	}))
	r.Use(mw.RequestID())
	r.Use(mw.RateLimit())

	RegisterRoutes(r, g, mw)
	return middleware.CORS(allowedOrigins, r)
}
