package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMovieService struct {
	movies *response.PaginatedResponse[*entity.Movie]
	movie  *entity.Movie
	err    error

	lastPage    int
	lastPerPage int
	lastTitle   *string
	lastID      string
	lastReq     *request.MovieRequest
}

func (f *fakeMovieService) GetMovies(_ context.Context, req *request.PaginatedRequest, title *string) (*response.PaginatedResponse[*entity.Movie], error) {
	f.lastPage = req.Page
	f.lastPerPage = req.PerPage
	f.lastTitle = title
	return f.movies, f.err
}

func (f *fakeMovieService) GetMovieByID(_ context.Context, movieID string) (*entity.Movie, error) {
	f.lastID = movieID
	return f.movie, f.err
}

func (f *fakeMovieService) CreateMovie(_ context.Context, req *request.MovieRequest) (*entity.Movie, error) {
	f.lastReq = req
	return f.movie, f.err
}

func (f *fakeMovieService) UpdateMovie(_ context.Context, movieID string, req *request.MovieRequest) (*entity.Movie, error) {
	f.lastID = movieID
	f.lastReq = req
	return f.movie, f.err
}

func (f *fakeMovieService) DeleteMovie(_ context.Context, movieID string) (*entity.Movie, error) {
	f.lastID = movieID
	return f.movie, f.err
}

func sampleMovie(title string) *entity.Movie {
	return &entity.Movie{
		ID:     uuid.New(),
		Title:  &title,
		Genres: []string{"Action"},
	}
}

func TestMovieHandler_SearchPage(t *testing.T) {
	svc := &fakeMovieService{
		movies: response.NewPaginatedResponse(
			[]*entity.Movie{sampleMovie("The Matrix"), sampleMovie("Casablanca")}, 2, 10, 25),
	}
	handler := NewMovieHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/search?page=2&perPage=10&title=the", nil)
	rec := httptest.NewRecorder()

	handler.SearchPage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "The Matrix")
	assert.Contains(t, rec.Body.String(), "Casablanca")

	assert.Equal(t, 2, svc.lastPage)
	assert.Equal(t, 10, svc.lastPerPage)
	require.NotNil(t, svc.lastTitle)
	assert.Equal(t, "the", *svc.lastTitle)
}

func TestMovieHandler_SearchPage_DefaultQuery(t *testing.T) {
	svc := &fakeMovieService{
		movies: response.NewPaginatedResponse([]*entity.Movie{}, 1, 10, 0),
	}
	handler := NewMovieHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/search?page=abc", nil)
	rec := httptest.NewRecorder()

	handler.SearchPage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// Malformed and absent parameters fall back to the defaults
	assert.Equal(t, 1, svc.lastPage)
	assert.Equal(t, 10, svc.lastPerPage)
	assert.Nil(t, svc.lastTitle)
}

func TestMovieHandler_CreateMovie(t *testing.T) {
	svc := &fakeMovieService{movie: sampleMovie("The Matrix")}
	handler := NewMovieHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/movies",
		strings.NewReader(`{"title":"The Matrix","runtime":136}`))
	rec := httptest.NewRecorder()

	handler.CreateMovie(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "The Matrix", *svc.lastReq.Title)
	assert.Equal(t, 136, *svc.lastReq.Runtime)
}

func TestMovieHandler_CreateMovie_BadBody(t *testing.T) {
	svc := &fakeMovieService{}
	handler := NewMovieHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	handler.CreateMovie(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastReq)
}

func TestMovieHandler_GetMovieByID_NotFound(t *testing.T) {
	svc := &fakeMovieService{err: fmt.Errorf("movie not found")}
	handler := NewMovieHandler(svc, zap.NewNop())

	router := chi.NewRouter()
	router.Get("/api/movies/{id}", handler.GetMovieByID)

	req := httptest.NewRequest(http.MethodGet, "/api/movies/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "movie not found")
}

func TestMovieHandler_UpdateMovie(t *testing.T) {
	svc := &fakeMovieService{movie: sampleMovie("The Matrix Reloaded")}
	handler := NewMovieHandler(svc, zap.NewNop())

	router := chi.NewRouter()
	router.Put("/api/movies/{id}", handler.UpdateMovie)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodPut, "/api/movies/"+id,
		strings.NewReader(`{"title":"The Matrix Reloaded"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, svc.lastID)
	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "The Matrix Reloaded", *svc.lastReq.Title)
}

func TestMovieHandler_DeleteMovie(t *testing.T) {
	svc := &fakeMovieService{movie: sampleMovie("Gone")}
	handler := NewMovieHandler(svc, zap.NewNop())

	router := chi.NewRouter()
	router.Delete("/api/movies/{id}", handler.DeleteMovie)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodDelete, "/api/movies/"+id, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, svc.lastID)
	// The deleted record travels back in the response body
	assert.Contains(t, rec.Body.String(), "Gone")
}
