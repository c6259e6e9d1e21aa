// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and response types shared across the service.

# Domain Types

  - Poll: a question with an ordered list of answers, loaded from config
  - Answer: one selectable option within a poll
  - PollConfig: the full configuration file (active flag + poll list)
  - VoteRecord: a (user, answer) pair enumerated from the vote store

Polls and answers are read-only at runtime: the catalog loads them fresh
from the configuration file on every request and nothing mutates them.

# Response Types

Types for the JSON results endpoint:

  - ResultsResponse: success, pollId, totalVotes, counts, percentages
  - APIError: success=false plus an error string

# Constants

Identity cookie:

	CookieName   = "poll_user_id"
	CookieMaxAge = 30 days
*/
package models
