package httpapi

import (
	"context"
	"net/http"
	"time"

	"fyyur/shared/go/logging"
)

const healthTimeout = 2 * time.Second

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, "home.html", "Fyyur", nil)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusNotFound, "404.html", "Not Found", nil)
}

func (s *Server) handleServerError(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusInternalServerError, "500.html", "Server Error", nil)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := s.health.Ping(ctx); err != nil {
			logging.WithContext(r.Context()).Warn().Err(err).Msg("Health check failed")
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
