package usecase

import (
	"time"

	bookingRepo "shareit/internal/booking/repository"
	"shareit/internal/item/repository"
	requestRepo "shareit/internal/request/repository"
	userRepo "shareit/internal/user/repository"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo        repository.Repository
	userRepo    userRepo.Repository
	requestRepo requestRepo.Repository
	bookingRepo bookingRepo.Repository
	l           log.Logger
	now         func() time.Time
}

// New creates a new item UseCase implementation.
func New(
	repo repository.Repository,
	userRepo userRepo.Repository,
	requestRepo requestRepo.Repository,
	bookingRepo bookingRepo.Repository,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:        repo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		bookingRepo: bookingRepo,
		l:           l,
		now:         time.Now,
	}
}
