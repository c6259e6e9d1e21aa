// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pollbooth/catalog"
	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/handlers"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/votestore"
)

func NewRouter(cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	loader := catalog.NewLoader(cfg.ConfigPath)
	store := votestore.New(cfg.DataDir)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(loader, store)
	apiHandler := handlers.NewAPIHandler(loader, store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.ListPolls))
	mux.HandleFunc("GET /poll/{id}", middleware.WithLogging(pageHandler.ShowPoll))
	mux.HandleFunc("POST /poll/{id}", middleware.WithLogging(pageHandler.SubmitVote))

	// Live results for the client-side refresh
	mux.HandleFunc("GET /api", middleware.WithLogging(apiHandler.Results))

	return mux
}
