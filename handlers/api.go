// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollbooth/catalog"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/tally"
	"github.com/danielhkuo/pollbooth/votestore"
)

type APIHandler struct {
	catalog *catalog.Loader
	store   *votestore.Store
}

func NewAPIHandler(catalog *catalog.Loader, store *votestore.Store) *APIHandler {
	return &APIHandler{catalog: catalog, store: store}
}

// Results handles GET /api?id=<pollId>
//
// The poll page's refresh script polls this endpoint every couple of
// seconds. Error bodies carry success=false with HTTP 200 because that
// script branches on the flag, not the status code.
func (h *APIHandler) Results(w http.ResponseWriter, r *http.Request) {
	pollID := r.URL.Query().Get("id")
	if pollID == "" {
		middleware.APIErrorResponse(w, "Poll ID required")
		return
	}

	poll, err := h.catalog.Poll(pollID)
	if err != nil {
		slog.Error("failed to load poll config", "error", err)
		middleware.APIErrorResponse(w, "Poll not found")
		return
	}
	if poll == nil {
		middleware.APIErrorResponse(w, "Poll not found")
		return
	}

	counts, err := tally.Counts(h.store, pollID)
	if err != nil {
		slog.Error("failed to tally poll", "poll_id", pollID, "error", err)
		middleware.APIErrorResponse(w, "Failed to read votes")
		return
	}
	total := tally.Total(counts)

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Success:     true,
		PollID:      pollID,
		TotalVotes:  total,
		Counts:      counts,
		Percentages: tally.Percentages(poll, counts, total),
	})
}
