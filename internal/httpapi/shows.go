package httpapi

import (
	"errors"
	"net/http"

	"fyyur/internal/store"
	"fyyur/shared/go/logging"
)

const showFailedMessage = "An error occurred. Show could not be listed."

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		s.serverError(w, r, err, "list shows")
		return
	}
	s.page(w, r, http.StatusOK, "shows.html", "Shows", shows)
}

func (s *Server) handleNewShowForm(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, "new_show.html", "New Show",
		formView{Action: "/shows/create", Form: showForm{}})
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	var form showForm
	problems, err := s.forms.bind(r, &form)
	if err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("Unreadable show form")
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	show, err := form.show()
	if err != nil && !problems.Has("start_time") {
		if problems == nil {
			problems = fieldErrors{}
		}
		problems["start_time"] = "Use the format YYYY-MM-DD HH:MM:SS."
	}
	if problems != nil {
		s.rejectShow(w, r, form, problems)
		return
	}

	created, err := s.shows.Create(r.Context(), show)
	switch {
	case errors.Is(err, store.ErrArtistNotFound):
		s.rejectShow(w, r, form, fieldErrors{"artist_id": "No artist has this id."}, showFailedMessage)
		return
	case errors.Is(err, store.ErrVenueNotFound):
		s.rejectShow(w, r, form, fieldErrors{"venue_id": "No venue has this id."}, showFailedMessage)
		return
	case err != nil:
		s.failWrite(w, r, "show", "create", err, showFailedMessage)
		return
	}

	logging.WithContext(r.Context()).Info().Int64("show_id", created.ID).Msg("Show listed")
	s.metrics.ObserveWrite("show", "create", "ok")
	s.redirectWithFlash(w, r, "/", "Show was successfully listed!")
}

func (s *Server) rejectShow(w http.ResponseWriter, r *http.Request, form showForm, problems fieldErrors, flashes ...string) {
	s.metrics.ObserveWrite("show", "create", "invalid")
	s.page(w, r, http.StatusUnprocessableEntity, "new_show.html", "New Show",
		formView{Action: "/shows/create", Form: form, Errors: problems}, flashes...)
}
