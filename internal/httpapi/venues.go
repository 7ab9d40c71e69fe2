package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/store"
	"fyyur/shared/go/logging"
	"fyyur/shared/go/models"
)

type venueSearchView struct {
	SearchTerm string
	Results    models.SearchResult[models.VenueSummary]
}

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.ListByArea(r.Context())
	if err != nil {
		s.serverError(w, r, err, "list venues")
		return
	}
	s.page(w, r, http.StatusOK, "venues.html", "Venues", areas)
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	term := r.PostForm.Get("search_term")

	results, err := s.venues.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err, "search venues")
		return
	}
	s.page(w, r, http.StatusOK, "search_venues.html", "Venue Search",
		venueSearchView{SearchTerm: term, Results: results})
}

func (s *Server) handleShowVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	detail, err := s.venues.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			s.handleNotFound(w, r)
			return
		}
		s.serverError(w, r, err, "load venue")
		return
	}
	s.page(w, r, http.StatusOK, "show_venue.html", detail.Name, detail)
}

func (s *Server) handleNewVenueForm(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, "new_venue.html", "New Venue",
		formView{Action: "/venues/create", Form: venueForm{}})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	var form venueForm
	problems, err := s.forms.bind(r, &form)
	if err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("Unreadable venue form")
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	if problems != nil {
		s.metrics.ObserveWrite("venue", "create", "invalid")
		s.page(w, r, http.StatusUnprocessableEntity, "new_venue.html", "New Venue",
			formView{Action: "/venues/create", Form: form, Errors: problems})
		return
	}

	venue, err := s.venues.Create(r.Context(), form.venue())
	if err != nil {
		s.failWrite(w, r, "venue", "create", err,
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return
	}

	logging.WithContext(r.Context()).Info().Int64("venue_id", venue.ID).Msg("Venue listed")
	s.metrics.ObserveWrite("venue", "create", "ok")
	s.redirectWithFlash(w, r, "/", fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	name, err := s.venues.Delete(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrVenueNotFound):
		logging.WithContext(r.Context()).Warn().Int64("venue_id", id).Msg("Delete of unknown venue")
		s.metrics.ObserveWrite("venue", "delete", "not_found")
		s.handleNotFound(w, r)
		return
	case errors.Is(err, store.ErrVenueHasShows):
		logging.WithContext(r.Context()).Warn().Int64("venue_id", id).Msg("Venue still has shows")
		s.metrics.ObserveWrite("venue", "delete", "conflict")
		s.page(w, r, http.StatusConflict, "home.html", "Fyyur", nil,
			"This venue still has shows and cannot be deleted.")
		return
	case err != nil:
		s.failWrite(w, r, "venue", "delete", err, "An error occurred. Venue could not be deleted.")
		return
	}

	s.metrics.ObserveWrite("venue", "delete", "ok")
	s.redirectWithFlash(w, r, "/", fmt.Sprintf("Successfully deleted venue %s", name))
}

func (s *Server) handleEditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	form := venueForm{}
	venue, err := s.venues.Get(r.Context(), id)
	switch {
	case err == nil:
		form = venueFormFrom(venue)
	case !errors.Is(err, store.ErrVenueNotFound):
		s.serverError(w, r, err, "load venue")
		return
	}

	s.page(w, r, http.StatusOK, "edit_venue.html", "Edit Venue",
		formView{Action: fmt.Sprintf("/venues/%d/edit", id), ID: id, Form: form})
}

func (s *Server) handleEditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	var form venueForm
	problems, err := s.forms.bind(r, &form)
	if err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("Unreadable venue form")
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	if problems != nil {
		s.metrics.ObserveWrite("venue", "update", "invalid")
		s.page(w, r, http.StatusUnprocessableEntity, "edit_venue.html", "Edit Venue",
			formView{Action: fmt.Sprintf("/venues/%d/edit", id), ID: id, Form: form, Errors: problems})
		return
	}

	err = s.venues.Update(r.Context(), id, form.venue())
	switch {
	case errors.Is(err, store.ErrVenueNotFound):
		logging.WithContext(r.Context()).Warn().Int64("venue_id", id).Msg("Edit of unknown venue skipped")
		s.metrics.ObserveWrite("venue", "update", "not_found")
	case err != nil:
		s.failWrite(w, r, "venue", "update", err,
			fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		return
	default:
		s.metrics.ObserveWrite("venue", "update", "ok")
	}

	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}

// serverError logs a failed read and renders the 500 page.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error, action string) {
	logging.WithContext(r.Context()).Error().Err(err).Str("route", r.Pattern).Msg("Failed to " + action)
	s.handleServerError(w, r)
}
