package shows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/store"
	"fyyur/shared/go/models"
)

type fakeStore struct {
	shows     []models.ShowWithDetails
	createErr error
	created   []models.Show
}

func (f *fakeStore) CreateShow(_ context.Context, show models.Show) (models.Show, error) {
	if f.createErr != nil {
		return models.Show{}, f.createErr
	}
	show.ID = int64(len(f.created) + 1)
	f.created = append(f.created, show)
	return show, nil
}

func (f *fakeStore) ListShows(context.Context) ([]models.ShowWithDetails, error) {
	return f.shows, nil
}

func TestCreate(t *testing.T) {
	st := &fakeStore{}
	svc := New(st)

	startsAt := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	got, err := svc.Create(context.Background(), models.Show{ArtistID: 3, VenueID: 3, StartsAt: startsAt})
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.ID)
	require.Len(t, st.created, 1)
	assert.True(t, st.created[0].StartsAt.Equal(startsAt))
}

func TestCreateUnknownReferences(t *testing.T) {
	for _, wantErr := range []error{store.ErrArtistNotFound, store.ErrVenueNotFound} {
		svc := New(&fakeStore{createErr: wantErr})

		_, err := svc.Create(context.Background(), models.Show{ArtistID: 99, VenueID: 99, StartsAt: time.Now()})
		assert.ErrorIs(t, err, wantErr)
	}
}

func TestListKeepsStoreOrder(t *testing.T) {
	st := &fakeStore{shows: []models.ShowWithDetails{
		{Show: models.Show{ID: 1}, ArtistName: "Guns N Petals", VenueName: "The Musical Hop"},
		{Show: models.Show{ID: 2}, ArtistName: "Matt Quevedo", VenueName: "Park Square Live Music & Coffee"},
	}}

	got, err := New(st).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Guns N Petals", got[0].ArtistName)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestCanceledContext(t *testing.T) {
	st := &fakeStore{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(st).Create(ctx, models.Show{ArtistID: 1, VenueID: 1, StartsAt: time.Now()})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, st.created)
}
