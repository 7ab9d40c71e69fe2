package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"fyyur/shared/go/models"
)

const (
	insertArtistQuery = `
		INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link,
		                     website, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	selectArtistQuery = `
		SELECT id, name, city, state, phone, genres, image_link, facebook_link,
		       website, seeking_venue, seeking_description
		FROM artists
		WHERE id = $1
	`

	listArtistsQuery = `
		SELECT id, name
		FROM artists
		ORDER BY id
	`

	searchArtistsQuery = `
		SELECT a.id, a.name,
		       COUNT(s.id) FILTER (WHERE s.date_time > $2) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE $1 ESCAPE '\'
		GROUP BY a.id
		ORDER BY a.name, a.id
	`

	updateArtistQuery = `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
		    image_link = $6, facebook_link = $7, website = $8,
		    seeking_venue = $9, seeking_description = $10
		WHERE id = $11
	`
)

// CreateArtist persists a new artist and returns it with its generated id.
func (s *Store) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	if artist.Genres == nil {
		artist.Genres = []string{}
	}

	err := s.db.QueryRowContext(ctx, insertArtistQuery,
		artist.Name, artist.City, artist.State, artist.Phone, pq.Array(artist.Genres),
		artist.ImageLink, artist.FacebookLink, artist.Website,
		artist.SeekingVenue, artist.SeekingDescription,
	).Scan(&artist.ID)
	if err != nil {
		return models.Artist{}, fmt.Errorf("insert artist: %w", err)
	}

	return artist, nil
}

// GetArtist retrieves a single artist by ID.
func (s *Store) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	var a models.Artist
	err := s.db.QueryRowContext(ctx, selectArtistQuery, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, pq.Array(&a.Genres),
		&a.ImageLink, &a.FacebookLink, &a.Website,
		&a.SeekingVenue, &a.SeekingDescription,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return models.Artist{}, fmt.Errorf("select artist: %w", err)
	}

	return a, nil
}

// ListArtists returns the id and name of every artist ordered by id.
func (s *Store) ListArtists(ctx context.Context) ([]models.ArtistSummary, error) {
	rows, err := s.db.QueryContext(ctx, listArtistsQuery)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	artists := []models.ArtistSummary{}
	for rows.Next() {
		var a models.ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

// SearchArtists returns artists whose name contains term, ignoring case.
// An empty term matches every artist.
func (s *Store) SearchArtists(ctx context.Context, term string, now time.Time) ([]models.ArtistSummary, error) {
	rows, err := s.db.QueryContext(ctx, searchArtistsQuery, likePattern(term), now)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	artists := []models.ArtistSummary{}
	for rows.Next() {
		var a models.ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name, &a.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

// UpdateArtist overwrites every editable field of an existing artist.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist models.Artist) error {
	if artist.Genres == nil {
		artist.Genres = []string{}
	}

	result, err := s.db.ExecContext(ctx, updateArtistQuery,
		artist.Name, artist.City, artist.State, artist.Phone, pq.Array(artist.Genres),
		artist.ImageLink, artist.FacebookLink, artist.Website,
		artist.SeekingVenue, artist.SeekingDescription,
		id,
	)
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	if rows == 0 {
		return ErrArtistNotFound
	}

	return nil
}
