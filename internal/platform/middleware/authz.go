// Copyright (c) 2026 Chaekdam. All rights reserved.
// Author: dahee.park.dev@gmail.com

package middleware

import (
	"net/http"

	"github.com/daheepark/chaekdam/internal/platform/apperr"
	"github.com/daheepark/chaekdam/internal/platform/constants"
	"github.com/daheepark/chaekdam/internal/platform/ctxutil"
	"github.com/daheepark/chaekdam/internal/platform/respond"
	"github.com/daheepark/chaekdam/internal/platform/sec"
)

// SessionVerifier defines the interface needed to verify session cookies.
//
// # Why an interface?
//
// Defining SessionVerifier here decouples the middleware from the auth
// service implementation, allowing us to easily inject mocks during unit testing.
type SessionVerifier interface {
	// VerifySession validates the signed cookie value and confirms the
	// referenced session has not been revoked.
	VerifySession(request *http.Request, token string) (*sec.SessionClaims, error)
}

// Authenticate extracts and verifies the session cookie.
//
// # Flow
//  1. Check for the session cookie.
//  2. If absent, request proceeds as anonymous.
//  3. If present, verify the signed token and the live session via [SessionVerifier].
//  4. Inject [*sec.SessionClaims] into the request context for downstream use.
//
// An invalid or revoked cookie does NOT fail the request here; the request
// simply proceeds anonymous and protected routes reject it. This keeps the
// public session-check endpoint able to answer {"authenticated": false}.
func Authenticate(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.VerifySession(request, cookie.Value)
			if err != nil {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithSession(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetSession(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
