// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity assigns a durable anonymous identifier to each browser.

# Identity Model

There is no user registry. A browser is identified by an opaque UUID v4
carried in the poll_user_id cookie; the only server-side trace of an
identity is the votes it authors. Uniqueness is probabilistic at UUID v4
entropy (122 random bits), which is negligible collision risk at this
scale.

# Usage

Handlers resolve identity at the top of every request:

	userID, created := identity.FromRequest(r)
	if created {
		http.SetCookie(w, identity.NewCookie(userID))
	}

GetOrCreate is the cookie-free core: it returns a presented token
unchanged when it parses as a UUID, and mints a fresh one otherwise.
Values that do not parse as UUIDs are replaced rather than trusted, so a
tampered cookie can never smuggle arbitrary strings into vote record
names.

# Cookie

	Name:    poll_user_id
	Path:    /
	Max-Age: 30 days
	HttpOnly, SameSite=Lax
*/
package identity
