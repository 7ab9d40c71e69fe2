package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"fyyur/internal/metrics"
	"fyyur/shared/go/logging"
	"fyyur/shared/go/middleware"
	"fyyur/shared/go/models"
)

// VenueService captures the venue workflows used by the handlers.
type VenueService interface {
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Detail(ctx context.Context, id int64) (models.VenueDetail, error)
	ListByArea(ctx context.Context) ([]models.Area, error)
	Search(ctx context.Context, term string) (models.SearchResult[models.VenueSummary], error)
	Update(ctx context.Context, id int64, venue models.Venue) error
	Delete(ctx context.Context, id int64) (string, error)
}

// ArtistService describes artist workflows.
type ArtistService interface {
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	Detail(ctx context.Context, id int64) (models.ArtistDetail, error)
	List(ctx context.Context) ([]models.ArtistSummary, error)
	Search(ctx context.Context, term string) (models.SearchResult[models.ArtistSummary], error)
	Update(ctx context.Context, id int64, artist models.Artist) error
}

// ShowService coordinates show listing and booking.
type ShowService interface {
	Create(ctx context.Context, show models.Show) (models.Show, error)
	List(ctx context.Context) ([]models.ShowWithDetails, error)
}

// HealthChecker reports whether backing services are reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService
	health  HealthChecker
	metrics *metrics.Metrics

	views *renderer
	forms *formBinder
	flash *flashStore
}

// New configures a Server. flashSecret seeds the key that seals flash cookies.
func New(
	venues VenueService,
	artists ArtistService,
	shows ShowService,
	health HealthChecker,
	m *metrics.Metrics,
	flashSecret string,
) (*Server, error) {
	views, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	if m == nil {
		m = metrics.New()
	}

	return &Server{
		venues:  venues,
		artists: artists,
		shows:   shows,
		health:  health,
		metrics: m,
		views:   views,
		forms:   newFormBinder(),
		flash:   newFlashStore(flashSecret),
	}, nil
}

// Handler returns the routes wrapped in request logging and panic recovery.
func (s *Server) Handler() http.Handler {
	recovery := middleware.Recovery(http.HandlerFunc(s.handleServerError))
	return middleware.RequestLogging()(recovery(s.Routes()))
}

// Routes exposes the pages of the directory.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	// Venue routes
	mux.HandleFunc("GET /venues", s.handleListVenues)
	mux.HandleFunc("POST /venues/search", s.handleSearchVenues)
	mux.HandleFunc("GET /venues/create", s.handleNewVenueForm)
	mux.HandleFunc("POST /venues/create", s.handleCreateVenue)
	mux.HandleFunc("GET /venues/{id}", s.handleShowVenue)
	mux.HandleFunc("POST /venues/{id}", s.handleDeleteVenue)
	mux.HandleFunc("DELETE /venues/{id}", s.handleDeleteVenue)
	mux.HandleFunc("GET /venues/{id}/edit", s.handleEditVenueForm)
	mux.HandleFunc("POST /venues/{id}/edit", s.handleEditVenue)

	// Artist routes
	mux.HandleFunc("GET /artists", s.handleListArtists)
	mux.HandleFunc("POST /artists/search", s.handleSearchArtists)
	mux.HandleFunc("GET /artists/create", s.handleNewArtistForm)
	mux.HandleFunc("POST /artists/create", s.handleCreateArtist)
	mux.HandleFunc("GET /artists/{id}", s.handleShowArtist)
	mux.HandleFunc("GET /artists/{id}/edit", s.handleEditArtistForm)
	mux.HandleFunc("POST /artists/{id}/edit", s.handleEditArtist)

	// Show routes
	mux.HandleFunc("GET /shows", s.handleListShows)
	mux.HandleFunc("GET /shows/create", s.handleNewShowForm)
	mux.HandleFunc("POST /shows/create", s.handleCreateShow)

	mux.HandleFunc("/", s.handleNotFound)

	return s.metrics.Instrument(mux)
}

// page renders a template with any flashes queued by the previous request
// followed by the ones raised while handling this one.
func (s *Server) page(w http.ResponseWriter, r *http.Request, status int, name, title string, data any, flashes ...string) {
	queued := s.flash.Pop(w, r)
	s.views.render(w, r, status, name, pageData{
		Title:   title,
		Flashes: append(queued, flashes...),
		Data:    data,
	})
}

// redirectWithFlash queues message for the next page and sends a 303.
func (s *Server) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message string) {
	if err := s.flash.Add(w, r, message); err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Msg("Failed to queue flash message")
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// failWrite logs a failed write, counts it and renders the home page with a
// 500 and the given flash.
func (s *Server) failWrite(w http.ResponseWriter, r *http.Request, entity, operation string, err error, message string) {
	logging.WithContext(r.Context()).Error().
		Err(err).
		Str("entity", entity).
		Str("operation", operation).
		Str("route", r.Pattern).
		Msg("Write failed")
	s.metrics.ObserveWrite(entity, operation, "error")
	s.page(w, r, http.StatusInternalServerError, "home.html", "Fyyur", nil, message)
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
