package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/session"
	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	sessions session.Store,
	tokens *token.Manager,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes
	r.Get("/api/register", authHandler.RegisterForm)
	r.Post("/api/register", authHandler.Register)
	r.Get("/api/login", authHandler.LoginForm)
	r.Post("/api/login", authHandler.Login)

	// Logout requires a valid session
	r.With(middleware.AuthSession(sessions, tokens, config.Session.CookieName, log)).
		Post("/api/logout", authHandler.Logout)
}
