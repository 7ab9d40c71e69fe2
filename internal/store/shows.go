package store

import (
	"context"
	"fmt"

	"fyyur/shared/go/models"
)

const (
	insertShowQuery = `
		INSERT INTO shows (artist_id, venue_id, date_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	selectShowsWithDetails = `
		SELECT
			s.id, s.artist_id, s.venue_id, s.date_time,
			a.name AS artist_name, a.image_link AS artist_image_link,
			v.name AS venue_name, v.image_link AS venue_image_link
		FROM shows s
		INNER JOIN artists a ON s.artist_id = a.id
		INNER JOIN venues v ON s.venue_id = v.id
	`

	listShowsQuery = selectShowsWithDetails + `ORDER BY s.date_time, s.id`

	listShowsByVenueQuery = selectShowsWithDetails + `WHERE s.venue_id = $1
		ORDER BY s.date_time, s.id`

	listShowsByArtistQuery = selectShowsWithDetails + `WHERE s.artist_id = $1
		ORDER BY s.date_time, s.id`
)

// CreateShow schedules an artist at a venue. Unknown artist or venue ids are
// reported as ErrArtistNotFound or ErrVenueNotFound.
func (s *Store) CreateShow(ctx context.Context, show models.Show) (models.Show, error) {
	err := s.db.QueryRowContext(ctx, insertShowQuery,
		show.ArtistID, show.VenueID, show.StartsAt,
	).Scan(&show.ID)
	if constraint, ok := foreignKeyConstraint(err); ok {
		switch constraint {
		case showsArtistFK:
			return models.Show{}, ErrArtistNotFound
		case showsVenueFK:
			return models.Show{}, ErrVenueNotFound
		}
	}
	if err != nil {
		return models.Show{}, fmt.Errorf("insert show: %w", err)
	}

	return show, nil
}

// ListShows returns every show with artist and venue details.
func (s *Store) ListShows(ctx context.Context) ([]models.ShowWithDetails, error) {
	return s.queryShows(ctx, listShowsQuery)
}

// ListShowsByVenue returns all shows at a specific venue.
func (s *Store) ListShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowWithDetails, error) {
	return s.queryShows(ctx, listShowsByVenueQuery, venueID)
}

// ListShowsByArtist returns all shows of a specific artist.
func (s *Store) ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowWithDetails, error) {
	return s.queryShows(ctx, listShowsByArtistQuery, artistID)
}

func (s *Store) queryShows(ctx context.Context, query string, args ...any) ([]models.ShowWithDetails, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	shows := []models.ShowWithDetails{}
	for rows.Next() {
		var sh models.ShowWithDetails
		err := rows.Scan(
			&sh.ID, &sh.ArtistID, &sh.VenueID, &sh.StartsAt,
			&sh.ArtistName, &sh.ArtistImageLink,
			&sh.VenueName, &sh.VenueImageLink,
		)
		if err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}

	return shows, nil
}
