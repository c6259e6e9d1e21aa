// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/danielhkuo/pollbooth/catalog"
	"github.com/danielhkuo/pollbooth/identity"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/tally"
	"github.com/danielhkuo/pollbooth/votestore"
)

type PageHandler struct {
	catalog *catalog.Loader
	store   *votestore.Store
}

func NewPageHandler(catalog *catalog.Loader, store *votestore.Store) *PageHandler {
	return &PageHandler{catalog: catalog, store: store}
}

// pollSummary is one row on the list page.
type pollSummary struct {
	Poll       models.Poll
	Voted      bool
	TotalVotes int
}

type listPageData struct {
	Active bool
	Polls  []pollSummary
}

type pollPageData struct {
	Poll        *models.Poll
	Active      bool
	UserVote    string
	Voted       bool
	Counts      map[string]int
	Percentages map[string]float64
	TotalVotes  int
	ShowResults bool
}

// userID resolves the browser identity and sets the cookie on first
// visit.
func (h *PageHandler) userID(w http.ResponseWriter, r *http.Request) string {
	id, created := identity.FromRequest(r)
	if created {
		http.SetCookie(w, identity.NewCookie(id))
	}
	return id
}

// ListPolls handles GET /
func (h *PageHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(w, r)

	cfg, err := h.catalog.Load()
	if err != nil {
		slog.Error("failed to load poll config", "error", err)
		http.Error(w, "Configuration error: unable to load polls.", http.StatusInternalServerError)
		return
	}

	data := listPageData{Active: cfg.Active}
	for _, poll := range cfg.Polls {
		summary := pollSummary{Poll: poll}

		if _, voted, err := h.store.UserVote(poll.ID, userID); err == nil {
			summary.Voted = voted
		} else {
			slog.Error("failed to read user vote", "poll_id", poll.ID, "error", err)
		}

		counts, err := tally.Counts(h.store, poll.ID)
		if err != nil {
			slog.Error("failed to tally poll", "poll_id", poll.ID, "error", err)
		} else {
			summary.TotalVotes = tally.Total(counts)
		}

		data.Polls = append(data.Polls, summary)
	}

	render(w, "list.html.tmpl", data)
}

// ShowPoll handles GET /poll/{id}
func (h *PageHandler) ShowPoll(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(w, r)

	pollID := r.PathValue("id")
	if pollID == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	cfg, err := h.catalog.Load()
	if err != nil {
		slog.Error("failed to load poll config", "error", err)
		http.Error(w, "Configuration error: unable to load polls.", http.StatusInternalServerError)
		return
	}

	poll, ok := cfg.Poll(pollID)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	userVote, voted, err := h.store.UserVote(pollID, userID)
	if err != nil {
		slog.Error("failed to read user vote", "poll_id", pollID, "error", err)
	}

	counts, err := tally.Counts(h.store, pollID)
	if err != nil {
		slog.Error("failed to tally poll", "poll_id", pollID, "error", err)
		counts = map[string]int{}
	}
	total := tally.Total(counts)

	render(w, "poll.html.tmpl", pollPageData{
		Poll:        poll,
		Active:      cfg.Active,
		UserVote:    userVote,
		Voted:       voted,
		Counts:      counts,
		Percentages: tally.Percentages(poll, counts, total),
		TotalVotes:  total,
		ShowResults: voted || !cfg.Active,
	})
}

// SubmitVote handles POST /poll/{id}
//
// Accepts answer=<answerId> to cast or change a vote, or remove_vote=1
// to retract it. Always redirects back to the poll page so a refresh
// never resubmits the form. Submissions while voting is inactive, or
// naming an answer the poll does not define, are dropped without a
// write.
func (h *PageHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(w, r)

	pollID := r.PathValue("id")
	if pollID == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	back := "/poll/" + url.PathEscape(pollID)

	cfg, err := h.catalog.Load()
	if err != nil {
		slog.Error("failed to load poll config", "error", err)
		http.Error(w, "Configuration error: unable to load polls.", http.StatusInternalServerError)
		return
	}

	poll, ok := cfg.Poll(pollID)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if !cfg.Active {
		// Voting is closed; results remain viewable
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	switch {
	case r.PostFormValue("remove_vote") != "":
		if err := h.store.Remove(pollID, userID); err != nil {
			slog.Error("failed to remove vote", "poll_id", pollID, "error", err)
		} else {
			slog.Info("vote removed", "poll_id", pollID)
		}

	case r.PostFormValue("answer") != "":
		answerID := r.PostFormValue("answer")
		if _, valid := poll.Answer(answerID); !valid {
			// Unknown answer id: rejected as a no-op
			break
		}
		if err := h.store.Save(pollID, userID, answerID); err != nil {
			// Not retried; the redirect lets the user try again
			slog.Error("failed to save vote", "poll_id", pollID, "error", err)
		} else {
			slog.Info("vote saved", "poll_id", pollID, "answer_id", answerID)
		}
	}

	http.Redirect(w, r, back, http.StatusSeeOther)
}
