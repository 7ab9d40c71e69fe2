package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/shared/go/models"
)

// directorySeeder is the slice of the store the demo bootstrap writes through.
type directorySeeder interface {
	ListVenueSummaries(ctx context.Context, now time.Time) ([]models.VenueSummary, error)
	ListArtists(ctx context.Context) ([]models.ArtistSummary, error)
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
}

// bootstrapDemoData fills an empty directory with a few venues, artists and
// shows. Anything already listed leaves the database untouched.
func bootstrapDemoData(ctx context.Context, seeder directorySeeder) error {
	venues, err := seeder.ListVenueSummaries(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("check venues: %w", err)
	}
	artists, err := seeder.ListArtists(ctx)
	if err != nil {
		return fmt.Errorf("check artists: %w", err)
	}
	if len(venues) > 0 || len(artists) > 0 {
		return nil
	}

	seedVenues := []models.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			Website:            "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
			Website:      "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=400",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=400",
		},
	}

	seedArtists := []models.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             []string{"Rock n Roll"},
			Website:            "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
		},
		{
			Name:         "Matt Quevedo",
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			Genres:       []string{"Jazz"},
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			Genres:    []string{"Jazz", "Classical"},
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
		},
	}

	venueIDs := make([]int64, 0, len(seedVenues))
	for _, venue := range seedVenues {
		created, err := seeder.CreateVenue(ctx, venue)
		if err != nil {
			return fmt.Errorf("seed venue %s: %w", venue.Name, err)
		}
		venueIDs = append(venueIDs, created.ID)
	}

	artistIDs := make([]int64, 0, len(seedArtists))
	for _, artist := range seedArtists {
		created, err := seeder.CreateArtist(ctx, artist)
		if err != nil {
			return fmt.Errorf("seed artist %s: %w", artist.Name, err)
		}
		artistIDs = append(artistIDs, created.ID)
	}

	seedShows := []struct {
		venue, artist int
		startsAt      time.Time
	}{
		{venue: 0, artist: 0, startsAt: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
		{venue: 2, artist: 1, startsAt: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
		{venue: 2, artist: 2, startsAt: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
		{venue: 2, artist: 2, startsAt: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
		{venue: 2, artist: 2, startsAt: time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
	}
	for _, s := range seedShows {
		show := models.Show{VenueID: venueIDs[s.venue], ArtistID: artistIDs[s.artist], StartsAt: s.startsAt}
		if _, err := seeder.CreateShow(ctx, show); err != nil {
			return fmt.Errorf("seed show: %w", err)
		}
	}

	log.Info().
		Int("venues", len(seedVenues)).
		Int("artists", len(seedArtists)).
		Int("shows", len(seedShows)).
		Msg("Seeded demo directory")
	return nil
}
