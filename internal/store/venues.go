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
	insertVenueQuery = `
		INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link,
		                    website, seeking_talent, seeking_description, genres)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	selectVenueQuery = `
		SELECT id, name, city, state, address, phone, image_link, facebook_link,
		       website, seeking_talent, seeking_description, genres
		FROM venues
		WHERE id = $1
	`

	listVenueSummariesQuery = `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(s.id) FILTER (WHERE s.date_time > $1) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		GROUP BY v.id
		ORDER BY v.state, v.city, v.id
	`

	searchVenuesQuery = `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(s.id) FILTER (WHERE s.date_time > $2) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		WHERE v.name ILIKE $1 ESCAPE '\'
		GROUP BY v.id
		ORDER BY v.name, v.id
	`

	updateVenueQuery = `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5,
		    image_link = $6, facebook_link = $7, website = $8,
		    seeking_talent = $9, seeking_description = $10, genres = $11
		WHERE id = $12
	`

	deleteVenueQuery = `DELETE FROM venues WHERE id = $1 RETURNING name`

	deleteVenueShowsQuery = `DELETE FROM shows WHERE venue_id = $1`
)

// CreateVenue persists a new venue and returns it with its generated id.
func (s *Store) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if venue.Genres == nil {
		venue.Genres = []string{}
	}

	err := s.db.QueryRowContext(ctx, insertVenueQuery,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		venue.ImageLink, venue.FacebookLink, venue.Website,
		venue.SeekingTalent, venue.SeekingDescription, pq.Array(venue.Genres),
	).Scan(&venue.ID)
	if err != nil {
		return models.Venue{}, fmt.Errorf("insert venue: %w", err)
	}

	return venue, nil
}

// GetVenue retrieves a single venue by ID.
func (s *Store) GetVenue(ctx context.Context, id int64) (models.Venue, error) {
	var v models.Venue
	err := s.db.QueryRowContext(ctx, selectVenueQuery, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.Website,
		&v.SeekingTalent, &v.SeekingDescription, pq.Array(&v.Genres),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return models.Venue{}, fmt.Errorf("select venue: %w", err)
	}

	return v, nil
}

// ListVenueSummaries returns every venue ordered by (state, city) with the
// number of its shows starting after now.
func (s *Store) ListVenueSummaries(ctx context.Context, now time.Time) ([]models.VenueSummary, error) {
	return s.queryVenueSummaries(ctx, listVenueSummariesQuery, now)
}

// SearchVenues returns venues whose name contains term, ignoring case.
// An empty term matches every venue.
func (s *Store) SearchVenues(ctx context.Context, term string, now time.Time) ([]models.VenueSummary, error) {
	return s.queryVenueSummaries(ctx, searchVenuesQuery, likePattern(term), now)
}

func (s *Store) queryVenueSummaries(ctx context.Context, query string, args ...any) ([]models.VenueSummary, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}
	defer rows.Close()

	venues := []models.VenueSummary{}
	for rows.Next() {
		var v models.VenueSummary
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}

	return venues, nil
}

// UpdateVenue overwrites every editable field of an existing venue.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue models.Venue) error {
	if venue.Genres == nil {
		venue.Genres = []string{}
	}

	result, err := s.db.ExecContext(ctx, updateVenueQuery,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		venue.ImageLink, venue.FacebookLink, venue.Website,
		venue.SeekingTalent, venue.SeekingDescription, pq.Array(venue.Genres),
		id,
	)
	if err != nil {
		return fmt.Errorf("update venue: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update venue: %w", err)
	}
	if rows == 0 {
		return ErrVenueNotFound
	}

	return nil
}

// DeleteVenue removes a venue that has no shows and returns its name.
// Venues that still host shows are refused with ErrVenueHasShows.
func (s *Store) DeleteVenue(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, deleteVenueQuery, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrVenueNotFound
	}
	if constraint, ok := foreignKeyConstraint(err); ok && constraint == showsVenueFK {
		return "", ErrVenueHasShows
	}
	if err != nil {
		return "", fmt.Errorf("delete venue: %w", err)
	}

	return name, nil
}

// DeleteVenueCascade removes a venue together with all of its shows in one
// transaction and returns the venue name.
func (s *Store) DeleteVenueCascade(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteVenueShowsQuery, id); err != nil {
			return fmt.Errorf("delete venue shows: %w", err)
		}

		err := tx.QueryRowContext(ctx, deleteVenueQuery, id).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		if err != nil {
			return fmt.Errorf("delete venue: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return name, nil
}
