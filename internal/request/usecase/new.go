package usecase

import (
	"time"

	itemRepo "shareit/internal/item/repository"
	"shareit/internal/request/repository"
	userRepo "shareit/internal/user/repository"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of request.UseCase.
type implUseCase struct {
	repo     repository.Repository
	userRepo userRepo.Repository
	itemRepo itemRepo.Repository
	l        log.Logger
	now      func() time.Time
}

// New creates a new request UseCase implementation.
func New(repo repository.Repository, userRepo userRepo.Repository, itemRepo itemRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		userRepo: userRepo,
		itemRepo: itemRepo,
		l:        l,
		now:      time.Now,
	}
}
