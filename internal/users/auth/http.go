// Copyright (c) 2026 Chaekdam. All rights reserved.
// Author: dahee.park.dev@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daheepark/chaekdam/internal/platform/constants"
	requestutil "github.com/daheepark/chaekdam/internal/platform/request"
	"github.com/daheepark/chaekdam/internal/platform/respond"
	"github.com/daheepark/chaekdam/internal/platform/validate"
)

// Handler implements the authentication HTTP endpoints.
//
// # Scope
//
// Everything related to the account lifecycle entry points: signup, login,
// the session probe the frontend polls on load, and logout.
type Handler struct {
	authService *Service

	// secureCookies marks session cookies Secure. Disabled in development so
	// the cookie survives plain-HTTP localhost.
	secureCookies bool
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{
		authService:   service,
		secureCookies: secureCookies,
	}
}

// RegisterRoutes mounts the authentication routes.
//
// # Endpoints
//   - POST /signup      : Creates a new account.
//   - POST /basic-login : Authenticates and sets the session cookie.
//   - GET  /session     : Reports whether the caller holds a live session,
//     including the account profile when they do.
//   - POST /logout      : Revokes the session and clears the cookie.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/signup", handler.signup)
	router.Post("/basic-login", handler.basicLogin)
	router.Get("/session", handler.session)
	router.Post("/logout", handler.logout)
}

// signupRequest represents the JSON payload expected for account creation.
type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signup handles POST /api/auth/signup requests.
//
// # Returns
//   - Writes HTTP 201 Created on success with the account profile.
//   - Writes HTTP 400 Bad Request if validation rules fail.
//   - Writes HTTP 409 Conflict if the email is taken.
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Signup(request.Context(), SignupInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// basicLogin handles POST /api/auth/basic-login requests.
//
// # Returns
//   - Writes HTTP 200 OK on success, sets the session cookie, and returns
//     the account profile.
//   - Writes HTTP 401 Unauthorized for bad credentials, without revealing
//     whether the email or the password was wrong.
func (handler *Handler) basicLogin(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Email == "" || input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("email/password", "are required"))
		return
	}

	session, err := handler.authService.BasicLogin(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setSessionCookie(writer, session.Token)
	respond.OK(writer, session.User)
}

// session handles GET /api/auth/session requests.
//
// The frontend polls this on page load to decide between the login and
// logout UI, so it always answers 200 with a boolean instead of erroring on
// anonymous callers. Authenticated callers also get their profile, saving a
// second round trip.
func (handler *Handler) session(writer http.ResponseWriter, request *http.Request) {
	claims := requestutil.Session(request)
	if claims == nil {
		respond.OK(writer, map[string]any{"authenticated": false})
		return
	}

	user, err := handler.authService.CurrentUser(request.Context(), claims)
	if err != nil {
		// The cookie verified but the account is gone. Report anonymous so
		// the frontend falls back to the login UI.
		respond.OK(writer, map[string]any{"authenticated": false})
		return
	}

	respond.OK(writer, map[string]any{
		"authenticated": true,
		"user":          user,
	})
}

// logout handles POST /api/auth/logout requests.
//
// Revokes the Redis session record and expires the cookie. Logging out
// without a live session still succeeds.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	claims := requestutil.Session(request)

	if err := handler.authService.Logout(request.Context(), claims); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.clearSessionCookie(writer)
	respond.NoContent(writer)
}

// setSessionCookie attaches the signed session token as an HttpOnly cookie.
//
// SameSite=Lax keeps the cookie off cross-site POSTs while still sending it
// on top-level navigations from external links.
func (handler *Handler) setSessionCookie(writer http.ResponseWriter, token string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     constants.SessionCookiePath,
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie on the client.
func (handler *Handler) clearSessionCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
