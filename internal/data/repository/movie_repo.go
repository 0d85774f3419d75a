package repository

import (
	"context"
	"fmt"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context, limit, offset int, title *string) ([]*entity.Movie, error)
	CountAll(ctx context.Context, title *string) (int64, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// movieColumns keeps column order in sync across all movie queries.
const movieColumns = `id, plot, genres, runtime, cast_members, num_comments, poster, title,
	       lastupdated, languages, released, directors, rated, awards, imdb,
	       countries, type, tomatoes`

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (` + movieColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Plot,
		movie.Genres,
		movie.Runtime,
		movie.Cast,
		movie.NumComments,
		movie.Poster,
		movie.Title,
		movie.LastUpdated,
		movie.Languages,
		movie.Released,
		movie.Directors,
		movie.Rated,
		movie.Awards,
		movie.IMDB,
		movie.Countries,
		movie.Type,
		movie.Tomatoes,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, limit, offset int, title *string) ([]*entity.Movie, error) {
	// Build query with the optional title filter
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + movieColumns + ` FROM movies`)

	args := []interface{}{}
	argCount := 1

	if title != nil && *title != "" {
		// Case-insensitive substring match on the title
		queryBuilder.WriteString(fmt.Sprintf(" WHERE title ILIKE '%%' || $%d || '%%'", argCount))
		args = append(args, *title)
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Stringp("title", title),
		)
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Int("limit", limit),
		zap.Int("offset", offset),
	)

	return movies, nil
}

func (r *movieRepository) CountAll(ctx context.Context, title *string) (int64, error) {
	query := `SELECT COUNT(*) FROM movies`
	args := []interface{}{}

	if title != nil && *title != "" {
		query += ` WHERE title ILIKE '%' || $1 || '%'`
		args = append(args, *title)
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count movies",
			zap.Error(err),
			zap.Stringp("title", title),
		)
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}

	return total, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET plot = $2, genres = $3, runtime = $4, cast_members = $5,
		    num_comments = $6, poster = $7, title = $8, lastupdated = $9,
		    languages = $10, released = $11, directors = $12, rated = $13,
		    awards = $14, imdb = $15, countries = $16, type = $17, tomatoes = $18
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Plot,
		movie.Genres,
		movie.Runtime,
		movie.Cast,
		movie.NumComments,
		movie.Poster,
		movie.Title,
		movie.LastUpdated,
		movie.Languages,
		movie.Released,
		movie.Directors,
		movie.Rated,
		movie.Awards,
		movie.IMDB,
		movie.Countries,
		movie.Type,
		movie.Tomatoes,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("failed to update movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie not found")
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie not found")
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Plot,
		&movie.Genres,
		&movie.Runtime,
		&movie.Cast,
		&movie.NumComments,
		&movie.Poster,
		&movie.Title,
		&movie.LastUpdated,
		&movie.Languages,
		&movie.Released,
		&movie.Directors,
		&movie.Rated,
		&movie.Awards,
		&movie.IMDB,
		&movie.Countries,
		&movie.Type,
		&movie.Tomatoes,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
