package usecase

import (
	"time"

	"shareit/internal/booking/repository"
	itemRepo "shareit/internal/item/repository"
	userRepo "shareit/internal/user/repository"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of booking.UseCase.
type implUseCase struct {
	repo     repository.Repository
	userRepo userRepo.Repository
	itemRepo itemRepo.Repository
	l        log.Logger
	now      func() time.Time
}

// New creates a new booking UseCase implementation.
func New(repo repository.Repository, userRepo userRepo.Repository, itemRepo itemRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		userRepo: userRepo,
		itemRepo: itemRepo,
		l:        l,
		now:      time.Now,
	}
}
