package main

import (
	"fmt"
	"net/http"
	"time"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/httpapi"
	"fyyur/internal/metrics"
	"fyyur/internal/store"
	"fyyur/shared/go/config"
)

func newHTTPServer(cfg *config.Config, dataStore *store.Store) (*http.Server, error) {
	policy, err := venues.ParseDeletePolicy(cfg.Directory.DeletePolicy)
	if err != nil {
		return nil, err
	}

	api, err := httpapi.New(
		venues.New(dataStore, policy),
		artists.New(dataStore),
		shows.New(dataStore),
		dataStore,
		metrics.New(),
		cfg.Flash.Secret,
	)
	if err != nil {
		return nil, fmt.Errorf("build http api: %w", err)
	}

	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}
