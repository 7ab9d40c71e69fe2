package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/store"
	"fyyur/shared/go/logging"
	"fyyur/shared/go/models"
)

type artistSearchView struct {
	SearchTerm string
	Results    models.SearchResult[models.ArtistSummary]
}

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		s.serverError(w, r, err, "list artists")
		return
	}
	s.page(w, r, http.StatusOK, "artists.html", "Artists", artists)
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	term := r.PostForm.Get("search_term")

	results, err := s.artists.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err, "search artists")
		return
	}
	s.page(w, r, http.StatusOK, "search_artists.html", "Artist Search",
		artistSearchView{SearchTerm: term, Results: results})
}

func (s *Server) handleShowArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	detail, err := s.artists.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			s.handleNotFound(w, r)
			return
		}
		s.serverError(w, r, err, "load artist")
		return
	}
	s.page(w, r, http.StatusOK, "show_artist.html", detail.Name, detail)
}

func (s *Server) handleNewArtistForm(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, "new_artist.html", "New Artist",
		formView{Action: "/artists/create", Form: artistForm{}})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	var form artistForm
	problems, err := s.forms.bind(r, &form)
	if err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("Unreadable artist form")
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	if problems != nil {
		s.metrics.ObserveWrite("artist", "create", "invalid")
		s.page(w, r, http.StatusUnprocessableEntity, "new_artist.html", "New Artist",
			formView{Action: "/artists/create", Form: form, Errors: problems})
		return
	}

	artist, err := s.artists.Create(r.Context(), form.artist())
	if err != nil {
		s.failWrite(w, r, "artist", "create", err,
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return
	}

	logging.WithContext(r.Context()).Info().Int64("artist_id", artist.ID).Msg("Artist listed")
	s.metrics.ObserveWrite("artist", "create", "ok")
	s.redirectWithFlash(w, r, "/", fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

func (s *Server) handleEditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	form := artistForm{}
	artist, err := s.artists.Get(r.Context(), id)
	switch {
	case err == nil:
		form = artistFormFrom(artist)
	case !errors.Is(err, store.ErrArtistNotFound):
		s.serverError(w, r, err, "load artist")
		return
	}

	s.page(w, r, http.StatusOK, "edit_artist.html", "Edit Artist",
		formView{Action: fmt.Sprintf("/artists/%d/edit", id), ID: id, Form: form})
}

func (s *Server) handleEditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	var form artistForm
	problems, err := s.forms.bind(r, &form)
	if err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("Unreadable artist form")
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	if problems != nil {
		s.metrics.ObserveWrite("artist", "update", "invalid")
		s.page(w, r, http.StatusUnprocessableEntity, "edit_artist.html", "Edit Artist",
			formView{Action: fmt.Sprintf("/artists/%d/edit", id), ID: id, Form: form, Errors: problems})
		return
	}

	err = s.artists.Update(r.Context(), id, form.artist())
	switch {
	case errors.Is(err, store.ErrArtistNotFound):
		logging.WithContext(r.Context()).Warn().Int64("artist_id", id).Msg("Edit of unknown artist skipped")
		s.metrics.ObserveWrite("artist", "update", "not_found")
	case err != nil:
		s.failWrite(w, r, "artist", "update", err,
			fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		return
	default:
		s.metrics.ObserveWrite("artist", "update", "ok")
	}

	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}
