// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Cookie settings for the anonymous browser identity
const (
	CookieName   = "poll_user_id"
	CookieMaxAge = 30 * 24 * 60 * 60 // 30 days in seconds
)

// Domain types

type Answer struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Poll struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Question string   `json:"question"`
	Answers  []Answer `json:"answers"`
}

// Answer returns the answer with the given id, or false if the poll
// does not define it.
func (p *Poll) Answer(answerID string) (Answer, bool) {
	for _, a := range p.Answers {
		if a.ID == answerID {
			return a, true
		}
	}
	return Answer{}, false
}

// PollConfig is the operator-edited configuration file: the global
// voting switch plus every poll definition.
type PollConfig struct {
	Active bool   `json:"active"`
	Polls  []Poll `json:"polls"`
}

// Poll returns the poll with the given id, or false if no poll matches.
func (c *PollConfig) Poll(pollID string) (*Poll, bool) {
	for i := range c.Polls {
		if c.Polls[i].ID == pollID {
			return &c.Polls[i], true
		}
	}
	return nil, false
}

// VoteRecord is one committed vote as enumerated by the vote store.
type VoteRecord struct {
	UserID   string
	AnswerID string
}

// Response types

// ResultsResponse is the JSON body of GET /api?id=<pollId>.
type ResultsResponse struct {
	Success     bool               `json:"success"`
	PollID      string             `json:"pollId"`
	TotalVotes  int                `json:"totalVotes"`
	Counts      map[string]int     `json:"counts"`
	Percentages map[string]float64 `json:"percentages"`
}

// APIError is the JSON error body of the results endpoint. The
// reference client checks the success flag, not the HTTP status.
type APIError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
