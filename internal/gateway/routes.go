package gateway

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	"shareit/pkg/response"
)

// RegisterRoutes validates the routes that carry client input and forwards the rest.
func RegisterRoutes(r *gin.Engine, g *Gateway, mw middleware.Middleware) {
	r.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "healthy", "service": "shareit-gateway"})
	})

	users := r.Group("/users")
	{
		users.POST("", g.CreateUser)
		users.PATCH("/:id", g.UpdateUser)
		users.GET("", g.Forward)
		users.GET("/:id", g.Forward)
		users.DELETE("/:id", g.Forward)
	}

	items := r.Group("/items")
	{
		items.GET("/search", g.Search)
		items.DELETE("/:id", g.Forward)

		items.POST("", mw.Auth(), g.CreateItem)
		items.GET("", mw.Auth(), g.Forward)
		items.GET("/:id", mw.Auth(), g.Forward)
		items.PATCH("/:id", mw.Auth(), g.Forward)
		items.POST("/:id/comment", mw.Auth(), g.AddComment)
	}

	bookings := r.Group("/bookings", mw.Auth())
	{
		bookings.POST("", g.CreateBooking)
		bookings.GET("", g.ListBookings)
		bookings.GET("/owner", g.ListBookings)
		bookings.GET("/:id", g.Forward)
		bookings.PATCH("/:id", g.DecideBooking)
	}

	requests := r.Group("/requests", mw.Auth())
	{
		requests.POST("", g.CreateRequest)
		requests.GET("", g.Forward)
		requests.GET("/all", g.ListAllRequests)
		requests.GET("/:id", g.Forward)
	}
}
