package venues

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyyur/internal/app/schedule"
	"fyyur/shared/go/models"
)

// DeletePolicy decides what happens to a venue's shows when the venue is deleted.
type DeletePolicy string

const (
	// DeleteRestrict refuses to delete venues that still host shows.
	DeleteRestrict DeletePolicy = "restrict"
	// DeleteCascade deletes the venue's shows together with the venue.
	DeleteCascade DeletePolicy = "cascade"
)

// ParseDeletePolicy maps a configuration value onto a DeletePolicy.
func ParseDeletePolicy(raw string) (DeletePolicy, error) {
	switch policy := DeletePolicy(strings.ToLower(strings.TrimSpace(raw))); policy {
	case DeleteRestrict, DeleteCascade:
		return policy, nil
	case "":
		return DeleteRestrict, nil
	default:
		return "", fmt.Errorf("unknown delete policy %q", raw)
	}
}

// Store defines persistence operations for venues.
type Store interface {
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	GetVenue(ctx context.Context, id int64) (models.Venue, error)
	ListVenueSummaries(ctx context.Context, now time.Time) ([]models.VenueSummary, error)
	SearchVenues(ctx context.Context, term string, now time.Time) ([]models.VenueSummary, error)
	UpdateVenue(ctx context.Context, id int64, venue models.Venue) error
	DeleteVenue(ctx context.Context, id int64) (string, error)
	DeleteVenueCascade(ctx context.Context, id int64) (string, error)
	ListShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowWithDetails, error)
}

// Service coordinates venue-related operations.
type Service interface {
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Detail(ctx context.Context, id int64) (models.VenueDetail, error)
	ListByArea(ctx context.Context) ([]models.Area, error)
	Search(ctx context.Context, term string) (models.SearchResult[models.VenueSummary], error)
	Update(ctx context.Context, id int64, venue models.Venue) error
	Delete(ctx context.Context, id int64) (string, error)
}

type service struct {
	store  Store
	policy DeletePolicy
	now    func() time.Time
}

// New constructs a venues Service backed by the provided Store.
func New(store Store, policy DeletePolicy) Service {
	if policy == "" {
		policy = DeleteRestrict
	}
	return &service{store: store, policy: policy, now: time.Now}
}

func (s *service) Create(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.CreateVenue(ctx, venue)
}

func (s *service) Get(ctx context.Context, id int64) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.GetVenue(ctx, id)
}

func (s *service) Detail(ctx context.Context, id int64) (models.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.VenueDetail{}, err
	}

	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return models.VenueDetail{}, err
	}

	shows, err := s.store.ListShowsByVenue(ctx, id)
	if err != nil {
		return models.VenueDetail{}, err
	}

	past, upcoming := schedule.Split(shows, s.now())
	return models.VenueDetail{
		Venue:              venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) ListByArea(ctx context.Context) ([]models.Area, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	venues, err := s.store.ListVenueSummaries(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return GroupByArea(venues), nil
}

func (s *service) Search(ctx context.Context, term string) (models.SearchResult[models.VenueSummary], error) {
	if err := ctx.Err(); err != nil {
		return models.SearchResult[models.VenueSummary]{}, err
	}

	venues, err := s.store.SearchVenues(ctx, term, s.now())
	if err != nil {
		return models.SearchResult[models.VenueSummary]{}, err
	}
	return models.SearchResult[models.VenueSummary]{Count: len(venues), Data: venues}, nil
}

func (s *service) Update(ctx context.Context, id int64, venue models.Venue) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateVenue(ctx, id, venue)
}

// Delete removes a venue according to the configured policy and returns the
// name of the deleted venue.
func (s *service) Delete(ctx context.Context, id int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if s.policy == DeleteCascade {
		return s.store.DeleteVenueCascade(ctx, id)
	}
	return s.store.DeleteVenue(ctx, id)
}
