package request

import (
	"time"

	"movie-catalog/internal/data/entity"
)

// MovieRequest carries movie fields for both create and update. Every field
// is optional; on update only the fields present in the body are applied, and
// the nested objects replace the stored value wholesale.
type MovieRequest struct {
	Plot        *string          `json:"plot"`
	Genres      []string         `json:"genres"`
	Runtime     *int             `json:"runtime"`
	Cast        []string         `json:"cast"`
	NumComments *int             `json:"num_comments"`
	Poster      *string          `json:"poster"`
	Title       *string          `json:"title"`
	LastUpdated *time.Time       `json:"lastupdated"`
	Languages   []string         `json:"languages"`
	Released    *time.Time       `json:"released"`
	Directors   []string         `json:"directors"`
	Rated       *string          `json:"rated"`
	Awards      *entity.Awards   `json:"awards"`
	IMDB        *entity.IMDB     `json:"imdb"`
	Countries   []string         `json:"countries"`
	Type        *string          `json:"type"`
	Tomatoes    *entity.Tomatoes `json:"tomatoes"`
}

// ToEntity builds a fresh record from the request; the caller assigns the id.
func (r *MovieRequest) ToEntity() *entity.Movie {
	return &entity.Movie{
		Plot:        r.Plot,
		Genres:      r.Genres,
		Runtime:     r.Runtime,
		Cast:        r.Cast,
		NumComments: r.NumComments,
		Poster:      r.Poster,
		Title:       r.Title,
		LastUpdated: r.LastUpdated,
		Languages:   r.Languages,
		Released:    r.Released,
		Directors:   r.Directors,
		Rated:       r.Rated,
		Awards:      r.Awards,
		IMDB:        r.IMDB,
		Countries:   r.Countries,
		Type:        r.Type,
		Tomatoes:    r.Tomatoes,
	}
}

// ApplyTo merges the request into an existing record, field by field at the
// top level. Absent fields (nil after decoding) leave the stored value alone.
func (r *MovieRequest) ApplyTo(movie *entity.Movie) {
	if r.Plot != nil {
		movie.Plot = r.Plot
	}
	if r.Genres != nil {
		movie.Genres = r.Genres
	}
	if r.Runtime != nil {
		movie.Runtime = r.Runtime
	}
	if r.Cast != nil {
		movie.Cast = r.Cast
	}
	if r.NumComments != nil {
		movie.NumComments = r.NumComments
	}
	if r.Poster != nil {
		movie.Poster = r.Poster
	}
	if r.Title != nil {
		movie.Title = r.Title
	}
	if r.LastUpdated != nil {
		movie.LastUpdated = r.LastUpdated
	}
	if r.Languages != nil {
		movie.Languages = r.Languages
	}
	if r.Released != nil {
		movie.Released = r.Released
	}
	if r.Directors != nil {
		movie.Directors = r.Directors
	}
	if r.Rated != nil {
		movie.Rated = r.Rated
	}
	if r.Awards != nil {
		movie.Awards = r.Awards
	}
	if r.IMDB != nil {
		movie.IMDB = r.IMDB
	}
	if r.Countries != nil {
		movie.Countries = r.Countries
	}
	if r.Type != nil {
		movie.Type = r.Type
	}
	if r.Tomatoes != nil {
		movie.Tomatoes = r.Tomatoes
	}
}
