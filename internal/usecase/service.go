package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Movie MovieService
}

func NewService(repo *repository.Repository, tokens *token.Manager, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, tokens, config, log),
		Movie: NewMovieService(repo, log),
	}
}
