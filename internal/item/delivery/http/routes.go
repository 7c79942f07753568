package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Delete and search are open; everything else requires the identity header.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.GET("/search", h.Search)
		items.DELETE("/:id", h.Delete)

		items.POST("", mw.Auth(), h.Create)
		items.GET("", mw.Auth(), h.List)
		items.GET("/:id", mw.Auth(), h.Detail)
		items.PATCH("/:id", mw.Auth(), h.Update)
		items.POST("/:id/comment", mw.Auth(), h.AddComment)
	}
}
