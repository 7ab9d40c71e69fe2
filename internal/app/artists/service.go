package artists

import (
	"context"
	"time"

	"fyyur/internal/app/schedule"
	"fyyur/shared/go/models"
)

// Store defines persistence operations for artists.
type Store interface {
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
	ListArtists(ctx context.Context) ([]models.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string, now time.Time) ([]models.ArtistSummary, error)
	UpdateArtist(ctx context.Context, id int64, artist models.Artist) error
	ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowWithDetails, error)
}

// Service provides artist-centric operations.
type Service interface {
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	Detail(ctx context.Context, id int64) (models.ArtistDetail, error)
	List(ctx context.Context) ([]models.ArtistSummary, error)
	Search(ctx context.Context, term string) (models.SearchResult[models.ArtistSummary], error)
	Update(ctx context.Context, id int64, artist models.Artist) error
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs an artist Service backed by the supplied Store.
func New(store Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) Create(ctx context.Context, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) Get(ctx context.Context, id int64) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.GetArtist(ctx, id)
}

func (s *service) Detail(ctx context.Context, id int64) (models.ArtistDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.ArtistDetail{}, err
	}

	artist, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return models.ArtistDetail{}, err
	}

	shows, err := s.store.ListShowsByArtist(ctx, id)
	if err != nil {
		return models.ArtistDetail{}, err
	}

	past, upcoming := schedule.Split(shows, s.now())
	return models.ArtistDetail{
		Artist:             artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) List(ctx context.Context) ([]models.ArtistSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

func (s *service) Search(ctx context.Context, term string) (models.SearchResult[models.ArtistSummary], error) {
	if err := ctx.Err(); err != nil {
		return models.SearchResult[models.ArtistSummary]{}, err
	}

	artists, err := s.store.SearchArtists(ctx, term, s.now())
	if err != nil {
		return models.SearchResult[models.ArtistSummary]{}, err
	}
	return models.SearchResult[models.ArtistSummary]{Count: len(artists), Data: artists}, nil
}

func (s *service) Update(ctx context.Context, id int64, artist models.Artist) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateArtist(ctx, id, artist)
}
