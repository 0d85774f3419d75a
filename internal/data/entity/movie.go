package entity

import (
	"time"

	"github.com/google/uuid"
)

// Movie is a catalog record. The store assigns the id on insert; every other
// field is optional. List fields map to text[] columns, the nested structs to
// jsonb, so a nested object supplied on update replaces the stored one
// wholesale.
type Movie struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Plot        *string    `db:"plot" json:"plot,omitempty"`
	Genres      []string   `db:"genres" json:"genres,omitempty"`
	Runtime     *int       `db:"runtime" json:"runtime,omitempty"`
	Cast        []string   `db:"cast_members" json:"cast,omitempty"`
	NumComments *int       `db:"num_comments" json:"num_comments,omitempty"`
	Poster      *string    `db:"poster" json:"poster,omitempty"`
	Title       *string    `db:"title" json:"title,omitempty"`
	LastUpdated *time.Time `db:"lastupdated" json:"lastupdated,omitempty"`
	Languages   []string   `db:"languages" json:"languages,omitempty"`
	Released    *time.Time `db:"released" json:"released,omitempty"`
	Directors   []string   `db:"directors" json:"directors,omitempty"`
	Rated       *string    `db:"rated" json:"rated,omitempty"`
	Awards      *Awards    `db:"awards" json:"awards,omitempty"`
	IMDB        *IMDB      `db:"imdb" json:"imdb,omitempty"`
	Countries   []string   `db:"countries" json:"countries,omitempty"`
	Type        *string    `db:"type" json:"type,omitempty"`
	Tomatoes    *Tomatoes  `db:"tomatoes" json:"tomatoes,omitempty"`
}

type Awards struct {
	Wins        *int    `json:"wins,omitempty"`
	Nominations *int    `json:"nominations,omitempty"`
	Text        *string `json:"text,omitempty"`
}

type IMDB struct {
	Rating *float64 `json:"rating,omitempty"`
	Votes  *int     `json:"votes,omitempty"`
	ID     *int     `json:"id,omitempty"`
}

// TomatoMeter is the shared shape of the viewer and critic ratings.
type TomatoMeter struct {
	Meter      *int     `json:"meter,omitempty"`
	NumReviews *int     `json:"numReviews,omitempty"`
	MeterClass *string  `json:"meterClass,omitempty"`
	MeterScore *float64 `json:"meterScore,omitempty"`
}

type Tomatoes struct {
	Viewer      *TomatoMeter `json:"viewer,omitempty"`
	DVD         *time.Time   `json:"dvd,omitempty"`
	Critic      *TomatoMeter `json:"critic,omitempty"`
	LastUpdated *time.Time   `json:"lastUpdated,omitempty"`
	Rotten      *int         `json:"rotten,omitempty"`
	Production  *string      `json:"production,omitempty"`
	Fresh       *int         `json:"fresh,omitempty"`
}
