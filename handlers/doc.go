// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the presentation layer: poll pages and the
JSON results endpoint.

# Handlers

  - PageHandler.ListPolls: GET / — poll list with voted markers and totals
  - PageHandler.ShowPoll: GET /poll/{id} — vote form or live results
  - PageHandler.SubmitVote: POST /poll/{id} — cast, change, or remove a vote
  - APIHandler.Results: GET /api?id= — JSON counts/percentages for the
    2-second client-side refresh

# Request Flow

Every page handler resolves the browser identity first (setting the
poll_user_id cookie on first visit), then re-reads the poll catalog, so
an operator edit to the configuration file is visible on the very next
request.

Vote submissions always answer with a redirect back to the poll page
(POST-redirect-GET); refreshing never resubmits the form. A submission
is silently dropped when voting is inactive or the answer id is not one
the poll defines. A storage failure is logged and the vote simply not
recorded; the user retries with a fresh request.

# Error Surfaces

A missing or malformed configuration file is fatal for any page that
needs poll data (HTTP 500, generic message). An unknown poll id on a
page redirects to the list. The JSON endpoint reports every failure as
{"success":false,...} with HTTP 200 for compatibility with the refresh
script.

# Templates

Pages render from html/template files embedded at build time under
templates/.
*/
package handlers
