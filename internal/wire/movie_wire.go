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

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	sessions session.Store,
	tokens *token.Manager,
	config *utils.Config,
	log *zap.Logger,
) {
	// Every movie route sits behind the session gate
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(sessions, tokens, config.Session.CookieName, log))

		r.Get("/api/search", movieHandler.SearchPage)

		r.Route("/api/movies", func(r chi.Router) {
			r.Get("/", movieHandler.MoviesPage)
			r.Post("/", movieHandler.CreateMovie)
			r.Get("/{id}", movieHandler.GetMovieByID)
			r.Put("/{id}", movieHandler.UpdateMovie)
			r.Delete("/{id}", movieHandler.DeleteMovie)
		})
	})
}
