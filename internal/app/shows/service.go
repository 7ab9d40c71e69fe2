package shows

import (
	"context"

	"fyyur/shared/go/models"
)

// Store defines persistence operations for shows.
type Store interface {
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
	ListShows(ctx context.Context) ([]models.ShowWithDetails, error)
}

// Service coordinates show-related operations.
type Service interface {
	Create(ctx context.Context, show models.Show) (models.Show, error)
	List(ctx context.Context) ([]models.ShowWithDetails, error)
}

type service struct {
	store Store
}

// New constructs a shows Service.
func New(store Store) Service {
	return &service{store: store}
}

// Create relies on the database foreign keys to reject unknown artists or
// venues; the store reports them as not-found errors.
func (s *service) Create(ctx context.Context, show models.Show) (models.Show, error) {
	if err := ctx.Err(); err != nil {
		return models.Show{}, err
	}
	return s.store.CreateShow(ctx, show)
}

func (s *service) List(ctx context.Context) ([]models.ShowWithDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListShows(ctx)
}
