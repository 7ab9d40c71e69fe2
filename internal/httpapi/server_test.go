package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"fyyur/internal/store"
	"fyyur/shared/go/models"
)

type stubVenueService struct {
	created    models.Venue
	createErr  error
	createCall int

	venue  models.Venue
	getErr error

	detail    models.VenueDetail
	detailErr error

	areas []models.Area

	searchTerm string
	results    models.SearchResult[models.VenueSummary]

	updatedID int64
	updated   models.Venue
	updateErr error

	deleteName string
	deleteErr  error
}

func (s *stubVenueService) Create(ctx context.Context, venue models.Venue) (models.Venue, error) {
	s.createCall++
	if s.createErr != nil {
		return models.Venue{}, s.createErr
	}
	venue.ID = 1
	s.created = venue
	return venue, nil
}

func (s *stubVenueService) Get(ctx context.Context, id int64) (models.Venue, error) {
	return s.venue, s.getErr
}

func (s *stubVenueService) Detail(ctx context.Context, id int64) (models.VenueDetail, error) {
	return s.detail, s.detailErr
}

func (s *stubVenueService) ListByArea(ctx context.Context) ([]models.Area, error) {
	return s.areas, nil
}

func (s *stubVenueService) Search(ctx context.Context, term string) (models.SearchResult[models.VenueSummary], error) {
	s.searchTerm = term
	return s.results, nil
}

func (s *stubVenueService) Update(ctx context.Context, id int64, venue models.Venue) error {
	s.updatedID = id
	s.updated = venue
	return s.updateErr
}

func (s *stubVenueService) Delete(ctx context.Context, id int64) (string, error) {
	return s.deleteName, s.deleteErr
}

type stubArtistService struct {
	artist models.Artist
	getErr error

	detail    models.ArtistDetail
	detailErr error

	list      []models.ArtistSummary
	listPanic bool

	results models.SearchResult[models.ArtistSummary]

	updatedID   int64
	updateErr   error
	updateCalls int
}

func (s *stubArtistService) Create(ctx context.Context, artist models.Artist) (models.Artist, error) {
	artist.ID = 1
	return artist, nil
}

func (s *stubArtistService) Get(ctx context.Context, id int64) (models.Artist, error) {
	return s.artist, s.getErr
}

func (s *stubArtistService) Detail(ctx context.Context, id int64) (models.ArtistDetail, error) {
	return s.detail, s.detailErr
}

func (s *stubArtistService) List(ctx context.Context) ([]models.ArtistSummary, error) {
	if s.listPanic {
		panic("artist listing exploded")
	}
	return s.list, nil
}

func (s *stubArtistService) Search(ctx context.Context, term string) (models.SearchResult[models.ArtistSummary], error) {
	return s.results, nil
}

func (s *stubArtistService) Update(ctx context.Context, id int64, artist models.Artist) error {
	s.updateCalls++
	s.updatedID = id
	return s.updateErr
}

type stubShowService struct {
	created   models.Show
	createErr error
	shows     []models.ShowWithDetails
}

func (s *stubShowService) Create(ctx context.Context, show models.Show) (models.Show, error) {
	if s.createErr != nil {
		return models.Show{}, s.createErr
	}
	show.ID = 1
	s.created = show
	return show, nil
}

func (s *stubShowService) List(ctx context.Context) ([]models.ShowWithDetails, error) {
	return s.shows, nil
}

type stubHealth struct{ err error }

func (h stubHealth) Ping(context.Context) error { return h.err }

func newTestServer(t *testing.T, venues *stubVenueService, artists *stubArtistService, shows *stubShowService) *Server {
	t.Helper()
	if venues == nil {
		venues = &stubVenueService{}
	}
	if artists == nil {
		artists = &stubArtistService{}
	}
	if shows == nil {
		shows = &stubShowService{}
	}

	server, err := New(venues, artists, shows, stubHealth{}, nil, "test-flash-secret-0123456789")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return server
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func flashCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == flashCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatalf("expected %s cookie to be set", flashCookieName)
	return nil
}

func validVenueForm() url.Values {
	return url.Values{
		"name":           {"The Fillmore"},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"address":        {"1805 Geary Blvd"},
		"genres":         {"Rock n Roll", "Jazz"},
		"seeking_talent": {"y"},
	}
}

func TestHomeRendersQueuedFlash(t *testing.T) {
	venues := &stubVenueService{}
	server := newTestServer(t, venues, nil, nil)
	handler := server.Routes()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postForm("/venues/create", validVenueForm()))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	cookie := flashCookie(t, rr)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	home := httptest.NewRecorder()
	handler.ServeHTTP(home, req)

	if home.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", home.Code)
	}
	if !strings.Contains(home.Body.String(), "Venue The Fillmore was successfully listed!") {
		t.Fatalf("expected flash on home page, got:\n%s", home.Body.String())
	}

	var cleared bool
	for _, c := range home.Result().Cookies() {
		if c.Name == flashCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected flash cookie to be cleared after display")
	}
}

func TestCreateVenueBindsForm(t *testing.T) {
	venues := &stubVenueService{}
	server := newTestServer(t, venues, nil, nil)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, postForm("/venues/create", validVenueForm()))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}
	got := venues.created
	if got.Name != "The Fillmore" || got.State != "CA" || !got.SeekingTalent {
		t.Fatalf("unexpected venue: %+v", got)
	}
	if len(got.Genres) != 2 || got.Genres[0] != "Rock n Roll" {
		t.Fatalf("expected genres in submitted order, got %v", got.Genres)
	}
}

func TestCreateVenueMissingFields(t *testing.T) {
	venues := &stubVenueService{}
	server := newTestServer(t, venues, nil, nil)

	form := validVenueForm()
	form.Del("city")
	form.Del("genres")

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, postForm("/venues/create", form))

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rr.Code)
	}
	if venues.createCall != 0 {
		t.Fatalf("expected no create call for an invalid form")
	}
	if strings.Count(rr.Body.String(), "This field is required.") != 2 {
		t.Fatalf("expected two field errors, got:\n%s", rr.Body.String())
	}
}

func TestCreateVenuePersistenceFailure(t *testing.T) {
	venues := &stubVenueService{createErr: errors.New("connection reset")}
	server := newTestServer(t, venues, nil, nil)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, postForm("/venues/create", validVenueForm()))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "An error occurred. Venue The Fillmore could not be listed.") {
		t.Fatalf("expected failure flash, got:\n%s", rr.Body.String())
	}
}

func TestShowVenueSplitsShows(t *testing.T) {
	venues := &stubVenueService{detail: models.VenueDetail{
		Venue: models.Venue{ID: 1, Name: "The Fillmore", City: "San Francisco", State: "CA"},
		UpcomingShows: []models.ShowWithDetails{{
			Show:       models.Show{ID: 1, ArtistID: 2, VenueID: 1, StartsAt: time.Date(2099, 5, 21, 21, 30, 0, 0, time.UTC)},
			ArtistName: "Guns N Petals",
			VenueName:  "The Fillmore",
		}},
		PastShows:          []models.ShowWithDetails{},
		UpcomingShowsCount: 1,
	}}
	server := newTestServer(t, venues, nil, nil)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/venues/1", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{"1 Upcoming Show", "0 Past Shows", "Guns N Petals", "Thursday May, 21, 2099 at 9:30PM"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body, got:\n%s", want, body)
		}
	}
}

func TestShowVenueNotFound(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "unknown id", path: "/venues/404"},
		{name: "non-numeric id", path: "/venues/abc"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			venues := &stubVenueService{detailErr: store.ErrVenueNotFound}
			server := newTestServer(t, venues, nil, nil)

			rr := httptest.NewRecorder()
			server.Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))

			if rr.Code != http.StatusNotFound {
				t.Fatalf("expected status 404, got %d", rr.Code)
			}
		})
	}
}

func TestListVenuesRendersAreas(t *testing.T) {
	venues := &stubVenueService{areas: []models.Area{
		{City: "San Francisco", State: "CA", Venues: []models.VenueSummary{{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2}}},
		{City: "New York", State: "NY", Venues: []models.VenueSummary{{ID: 2, Name: "The Dueling Pianos Bar"}}},
	}}
	server := newTestServer(t, venues, nil, nil)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/venues", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if strings.Index(body, "San Francisco, CA") > strings.Index(body, "New York, NY") {
		t.Fatalf("expected areas in service order, got:\n%s", body)
	}
}

func TestSearchVenues(t *testing.T) {
	venues := &stubVenueService{results: models.SearchResult[models.VenueSummary]{
		Count: 1,
		Data:  []models.VenueSummary{{ID: 2, Name: "The Dueling Pianos Bar"}},
	}}
	server := newTestServer(t, venues, nil, nil)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, postForm("/venues/search", url.Values{"search_term": {"Music"}}))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if venues.searchTerm != "Music" {
		t.Fatalf("expected search term to reach the service, got %q", venues.searchTerm)
	}
	if !strings.Contains(rr.Body.String(), "The Dueling Pianos Bar") {
		t.Fatalf("expected hit in body, got:\n%s", rr.Body.String())
	}
}

func TestDeleteVenue(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		deleteName string
		deleteErr  error
		wantStatus int
		wantBody   string
	}{
		{name: "existing venue", method: http.MethodPost, deleteName: "The Fillmore", wantStatus: http.StatusSeeOther},
		{name: "delete verb", method: http.MethodDelete, deleteName: "The Fillmore", wantStatus: http.StatusSeeOther},
		{name: "unknown venue", method: http.MethodPost, deleteErr: store.ErrVenueNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "venue with shows",
			method:     http.MethodPost,
			deleteErr:  store.ErrVenueHasShows,
			wantStatus: http.StatusConflict,
			wantBody:   "This venue still has shows and cannot be deleted.",
		},
		{
			name:       "storage failure",
			method:     http.MethodPost,
			deleteErr:  errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "An error occurred. Venue could not be deleted.",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			venues := &stubVenueService{deleteName: tc.deleteName, deleteErr: tc.deleteErr}
			server := newTestServer(t, venues, nil, nil)

			rr := httptest.NewRecorder()
			server.Routes().ServeHTTP(rr, httptest.NewRequest(tc.method, "/venues/3", nil))

			if rr.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			if tc.wantBody != "" && !strings.Contains(rr.Body.String(), tc.wantBody) {
				t.Fatalf("expected %q in body, got:\n%s", tc.wantBody, rr.Body.String())
			}
			if tc.wantStatus == http.StatusSeeOther {
				flashCookie(t, rr)
			}
		})
	}
}

func TestEditVenueFormForMissingVenueIsBlank(t *testing.T) {
	venues := &stubVenueService{getErr: store.ErrVenueNotFound}
	server := newTestServer(t, venues, nil, nil)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/venues/77/edit", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `action="/venues/77/edit"`) {
		t.Fatalf("expected edit form, got:\n%s", rr.Body.String())
	}
}

var checkedGenre = regexp.MustCompile(`name="genres" value="([^"]+)" checked`)

func TestEditVenueKeepsGenresOutsideChoices(t *testing.T) {
	venues := &stubVenueService{venue: models.Venue{
		ID:      1,
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Genres:  []string{"Jazz", "Swing", "Folk"},
	}}
	server := newTestServer(t, venues, nil, nil)
	handler := server.Routes()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/venues/1/edit", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var checked []string
	for _, m := range checkedGenre.FindAllStringSubmatch(rr.Body.String(), -1) {
		checked = append(checked, m[1])
	}
	if len(checked) != 3 {
		t.Fatalf("expected every stored genre checked, got %v", checked)
	}

	form := url.Values{
		"name":    {venues.venue.Name},
		"city":    {venues.venue.City},
		"state":   {venues.venue.State},
		"address": {venues.venue.Address},
		"genres":  checked,
	}
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, postForm("/venues/1/edit", form))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}
	for _, want := range venues.venue.Genres {
		found := false
		for _, got := range venues.updated.Genres {
			found = found || got == want
		}
		if !found {
			t.Fatalf("expected genre %q to survive the edit, got %v", want, venues.updated.Genres)
		}
	}
}

func TestEditVenueRedirectsToDetail(t *testing.T) {
	venues := &stubVenueService{}
	server := newTestServer(t, venues, nil, nil)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, postForm("/venues/5/edit", validVenueForm()))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/venues/5" {
		t.Fatalf("expected redirect to /venues/5, got %q", loc)
	}
	if venues.updatedID != 5 {
		t.Fatalf("expected update of venue 5, got %d", venues.updatedID)
	}
}

func TestEditMissingArtistRedirects(t *testing.T) {
	artists := &stubArtistService{updateErr: store.ErrArtistNotFound}
	server := newTestServer(t, nil, artists, nil)

	form := url.Values{
		"name":   {"Nobody"},
		"city":   {"Austin"},
		"state":  {"TX"},
		"genres": {"Folk"},
	}

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, postForm("/artists/9/edit", form))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/artists/9" {
		t.Fatalf("expected redirect to /artists/9, got %q", loc)
	}
	if artists.updateCalls != 1 || artists.updatedID != 9 {
		t.Fatalf("expected one update attempt for artist 9, got %d calls for %d", artists.updateCalls, artists.updatedID)
	}
}

func TestListArtists(t *testing.T) {
	artists := &stubArtistService{list: []models.ArtistSummary{{ID: 4, Name: "Guns N Petals"}, {ID: 5, Name: "Matt Quevedo"}}}
	server := newTestServer(t, nil, artists, nil)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/artists", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `href="/artists/5"`) {
		t.Fatalf("expected artist link, got:\n%s", rr.Body.String())
	}
}

func TestShowArtistNotFound(t *testing.T) {
	artists := &stubArtistService{detailErr: store.ErrArtistNotFound}
	server := newTestServer(t, nil, artists, nil)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/artists/12", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestCreateShow(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		createErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid show",
			form:       url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"2099-05-21 21:30:00"}},
			wantStatus: http.StatusSeeOther,
		},
		{
			name:       "missing start time",
			form:       url.Values{"artist_id": {"4"}, "venue_id": {"1"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "This field is required.",
		},
		{
			name:       "unparseable start time",
			form:       url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"next friday"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "Use the format YYYY-MM-DD HH:MM:SS.",
		},
		{
			name:       "non-numeric artist",
			form:       url.Values{"artist_id": {"four"}, "venue_id": {"1"}, "start_time": {"2099-05-21 21:30:00"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "Invalid value.",
		},
		{
			name:       "unknown artist",
			form:       url.Values{"artist_id": {"99"}, "venue_id": {"1"}, "start_time": {"2099-05-21T21:30"}},
			createErr:  store.ErrArtistNotFound,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "No artist has this id.",
		},
		{
			name:       "unknown venue",
			form:       url.Values{"artist_id": {"4"}, "venue_id": {"99"}, "start_time": {"2099-05-21T21:30"}},
			createErr:  store.ErrVenueNotFound,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "No venue has this id.",
		},
		{
			name:       "storage failure",
			form:       url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"2099-05-21 21:30:00"}},
			createErr:  errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "An error occurred. Show could not be listed.",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			shows := &stubShowService{createErr: tc.createErr}
			server := newTestServer(t, nil, nil, shows)

			rr := httptest.NewRecorder()
			server.Routes().ServeHTTP(rr, postForm("/shows/create", tc.form))

			if rr.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			if tc.wantBody != "" && !strings.Contains(rr.Body.String(), tc.wantBody) {
				t.Fatalf("expected %q in body, got:\n%s", tc.wantBody, rr.Body.String())
			}
		})
	}
}

func TestCreateShowParsesStartTime(t *testing.T) {
	shows := &stubShowService{}
	server := newTestServer(t, nil, nil, shows)

	form := url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"2099-05-21 21:30:00"}}
	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, postForm("/shows/create", form))

	want := time.Date(2099, 5, 21, 21, 30, 0, 0, time.Local)
	if !shows.created.StartsAt.Equal(want) || shows.created.ArtistID != 4 || shows.created.VenueID != 1 {
		t.Fatalf("unexpected show: %+v", shows.created)
	}
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	server := newTestServer(t, nil, nil, nil)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "404") {
		t.Fatalf("expected 404 page, got:\n%s", rr.Body.String())
	}
}

func TestPanicRendersServerErrorPage(t *testing.T) {
	artists := &stubArtistService{listPanic: true}
	server := newTestServer(t, nil, artists, nil)

	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/artists", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Something went wrong") {
		t.Fatalf("expected 500 page, got:\n%s", rr.Body.String())
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "database reachable", wantStatus: http.StatusOK},
		{name: "database down", err: errors.New("dial tcp: refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			server, err := New(&stubVenueService{}, &stubArtistService{}, &stubShowService{}, stubHealth{err: tc.err}, nil, "test-flash-secret-0123456789")
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			rr := httptest.NewRecorder()
			server.Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rr.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
		})
	}
}

func TestMetricsEndpointCountsRoutes(t *testing.T) {
	server := newTestServer(t, nil, nil, nil)
	handler := server.Routes()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `route="GET /{$}"`) {
		t.Fatalf("expected home route in metrics, got:\n%s", rr.Body.String())
	}
}
