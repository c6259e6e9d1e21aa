// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method patterns:

	GET  /health      liveness probe
	GET  /{$}         poll list page
	GET  /poll/{id}   poll detail page (vote form or results)
	POST /poll/{id}   vote submission (answer= or remove_vote=1)
	GET  /api         JSON results (?id=<pollId>)

NewRouter wires the catalog loader and vote store from the parsed
configuration and injects them into the handlers.
*/
package router
