package http

import (
	"shareit/internal/request"
	"shareit/pkg/log"
)

type handler struct {
	l  log.Logger
	uc request.UseCase
}

// New creates a new HTTP handler for the item request domain.
func New(l log.Logger, uc request.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
