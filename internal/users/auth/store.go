// Copyright (c) 2026 Chaekdam. All rights reserved.
// Author: dahee.park.dev@gmail.com

package auth

import (
	"context"
	"time"
)

// UserRepository abstracts account persistence (Postgres).
type UserRepository interface {
	// Create persists a new account. A duplicate email surfaces as
	// apperr.Conflict through the dberr mapping.
	Create(ctx context.Context, user *User) error

	// FindByEmail returns the account for an email, or apperr.NotFound.
	// Lookup is case-insensitive.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the account for an ID, or apperr.NotFound.
	FindByID(ctx context.Context, id string) (*User, error)
}

// SessionRepository abstracts live-session storage (Redis).
//
// A session exists exactly while its record is present; expiry is delegated
// to the store's TTL so no background reaper is needed.
type SessionRepository interface {
	// Save stores sessionID -> userID with the given TTL.
	Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error

	// Get returns the userID owning the session, or apperr.NotFound if the
	// session is absent, expired, or revoked.
	Get(ctx context.Context, sessionID string) (string, error)

	// Delete revokes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, sessionID string) error
}
