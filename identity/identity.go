// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/danielhkuo/pollbooth/models"
)

// GetOrCreate returns the presented token unchanged when it is a valid
// UUID, or a freshly generated UUID v4 otherwise. created reports
// whether a new identity was issued and must be persisted client-side.
func GetOrCreate(token string) (userID string, created bool) {
	if token != "" {
		if _, err := uuid.Parse(token); err == nil {
			return token, false
		}
		// Garbage cookie values are replaced, not trusted
	}
	return uuid.NewString(), true
}

// FromRequest resolves the browser's identity from the poll_user_id
// cookie. When created is true the caller must send NewCookie back with
// the response or the identity is lost.
func FromRequest(r *http.Request) (userID string, created bool) {
	c, err := r.Cookie(models.CookieName)
	if err != nil {
		return GetOrCreate("")
	}
	return GetOrCreate(c.Value)
}

// NewCookie builds the persistent identity cookie: path "/", 30 day
// expiry, HttpOnly.
func NewCookie(userID string) *http.Cookie {
	return &http.Cookie{
		Name:     models.CookieName,
		Value:    userID,
		Path:     "/",
		MaxAge:   models.CookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
