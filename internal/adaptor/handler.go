package adaptor

import (
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/session"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Movie *MovieHandler
	Page  *PageHandler
}

func NewHandler(service *usecase.Service, sessions session.Store, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, sessions, config, log),
		Movie: NewMovieHandler(service.Movie, log),
		Page:  NewPageHandler(log),
	}
}
