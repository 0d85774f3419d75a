package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// movieRow is the flattened view-model for the rendered list pages.
type movieRow struct {
	ID       string
	Title    string
	Plot     string
	Genres   string
	Runtime  int
	Rated    string
	Released string
}

type moviePageData struct {
	Filter     string
	Movies     []movieRow
	Pagination response.PaginationMeta
}

// SearchPage handles GET /api/search
func (h *MovieHandler) SearchPage(w http.ResponseWriter, r *http.Request) {
	h.listPage(w, r, "search.html")
}

// MoviesPage handles GET /api/movies
func (h *MovieHandler) MoviesPage(w http.ResponseWriter, r *http.Request) {
	h.listPage(w, r, "movies.html")
}

func (h *MovieHandler) listPage(w http.ResponseWriter, r *http.Request, template string) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("perPage"), 10),
	}

	var title *string
	if t := query.Get("title"); t != "" {
		title = &t
	}

	movies, err := h.service.GetMovies(r.Context(), req, title)
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	data := moviePageData{
		Filter:     query.Get("title"),
		Movies:     make([]movieRow, 0, len(movies.Data)),
		Pagination: movies.Pagination,
	}
	for _, movie := range movies.Data {
		data.Movies = append(data.Movies, toMovieRow(movie))
	}

	renderPage(w, h.log, template, data)
}

// CreateMovie handles POST /api/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// UpdateMovie handles PUT /api/movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// DeleteMovie handles DELETE /api/movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.DeleteMovie(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", movie)
}

// handleServiceError maps movie service errors to response codes
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func toMovieRow(movie *entity.Movie) movieRow {
	row := movieRow{ID: movie.ID.String()}
	if movie.Title != nil {
		row.Title = *movie.Title
	}
	if movie.Plot != nil {
		row.Plot = *movie.Plot
	}
	if len(movie.Genres) > 0 {
		row.Genres = strings.Join(movie.Genres, ", ")
	}
	if movie.Runtime != nil {
		row.Runtime = *movie.Runtime
	}
	if movie.Rated != nil {
		row.Rated = *movie.Rated
	}
	if movie.Released != nil {
		row.Released = movie.Released.Format("2006-01-02")
	}
	return row
}
