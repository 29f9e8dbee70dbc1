// Copyright (c) 2026 Chaekdam. All rights reserved.
// Author: dahee.park.dev@gmail.com

// Package sec provides cryptographic primitives and session token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, token signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import "github.com/golang-jwt/jwt/v5"

// SessionClaims represents the payload embedded inside the signed session cookie.
//
// # Why custom claims?
//
// By embedding the UserID and SessionID directly inside the token, middleware
// can reconstruct the active user context with a single Redis existence check
// instead of a database query on every API request.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the token payload small.
	UserID    string `json:"uid"`
	Email     string `json:"eml"`
	SessionID string `json:"sid"`
}
