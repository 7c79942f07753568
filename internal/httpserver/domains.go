package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookingHTTP "shareit/internal/booking/delivery/http"
	bookingRepo "shareit/internal/booking/repository/postgre"
	bookingUC "shareit/internal/booking/usecase"
	itemHTTP "shareit/internal/item/delivery/http"
	itemRepo "shareit/internal/item/repository/postgre"
	itemUC "shareit/internal/item/usecase"
	"shareit/internal/middleware"
	requestHTTP "shareit/internal/request/delivery/http"
	requestRepo "shareit/internal/request/repository/postgre"
	requestUC "shareit/internal/request/usecase"
	userHTTP "shareit/internal/user/delivery/http"
	userRepo "shareit/internal/user/repository/postgre"
	userUC "shareit/internal/user/usecase"
)

// Every domain follows the same steps:
//  1. Repository:   repo := xRepo.New(srv.postgresDB, srv.l)
//  2. UseCase:      uc := xUC.New(repo, <other repositories>, srv.l)
//  3. HTTP Handler: h := xHTTP.New(srv.l, uc)
//  4. Routes:       xHTTP.RegisterRoutes(api, h, mw)

func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, _ middleware.Middleware) error {
	repo := userRepo.New(srv.postgresDB, srv.l)
	uc := userUC.New(repo, srv.l)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}

func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := itemRepo.New(srv.postgresDB, srv.l)
	uc := itemUC.New(
		repo,
		userRepo.New(srv.postgresDB, srv.l),
		requestRepo.New(srv.postgresDB, srv.l),
		bookingRepo.New(srv.postgresDB, srv.l),
		srv.l,
	)
	h := itemHTTP.New(srv.l, uc)
	itemHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}

func (srv HTTPServer) setupBookingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := bookingRepo.New(srv.postgresDB, srv.l)
	uc := bookingUC.New(
		repo,
		userRepo.New(srv.postgresDB, srv.l),
		itemRepo.New(srv.postgresDB, srv.l),
		srv.l,
	)
	h := bookingHTTP.New(srv.l, uc)
	bookingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Booking domain registered")
	return nil
}

func (srv HTTPServer) setupRequestDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := requestRepo.New(srv.postgresDB, srv.l)
	uc := requestUC.New(
		repo,
		userRepo.New(srv.postgresDB, srv.l),
		itemRepo.New(srv.postgresDB, srv.l),
		srv.l,
	)
	h := requestHTTP.New(srv.l, uc)
	requestHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Request domain registered")
	return nil
}
