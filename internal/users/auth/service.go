// Copyright (c) 2026 Chaekdam. All rights reserved.
// Author: dahee.park.dev@gmail.com

/*
Package auth implements account registration and cookie-session management.

It handles signup with bcrypt password hashing, email/password login, and the
session lifecycle: a signed token travels in an HttpOnly cookie while the
matching session record lives in Redis so that logout revokes it immediately.

Architecture:

  - Service: Orchestrates business logic (Signup, BasicLogin, VerifySession, Logout).
  - Repository: Abstracted interfaces for Postgres (Users) and Redis (Sessions).
  - Security: Bcrypt digests and HS256-signed session tokens via [sec].
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daheepark/chaekdam/internal/platform/apperr"
	"github.com/daheepark/chaekdam/internal/platform/sec"
	"github.com/daheepark/chaekdam/internal/platform/validate"
	"github.com/daheepark/chaekdam/pkg/uuid"
)

// Service implements the account and session use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, signup, or
// login logic must be reviewed carefully.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenService      *sec.TokenService
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	tokenService *sec.TokenService,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenService:      tokenService,
		logger:            logger,
	}
}

// SignupInput holds the data required to enroll a new account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// Signup validates, hashes, and persists a brand new account.
//
// # Returns
//   - A pointer to the newly created [*User].
//   - Returns [apperr.Conflict] if the email is already registered.
//
// # Business Rules
//   - Emails are unique, compared case-insensitively.
//   - Passwords are stored only as bcrypt digests.
func (service *Service) Signup(ctx context.Context, input SignupInput) (*User, error) {
	// ── 1. Validation ─────────────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 100)
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password).MinLen(FieldPassword, input.Password, MinPasswordLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// ── 2. Uniqueness Check ───────────────────────────────────────────────

	// Fast pre-check for a friendly error. The unique index on the email
	// column still backstops concurrent signups.
	if _, err := service.userRepository.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// ── 3. Security ───────────────────────────────────────────────────────

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 4. Entity Construction & Persistence ──────────────────────────────

	user := &User{
		ID:           uuid.New(), // Time-sortable ID to prevent PG index fragmentation.
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := service.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	service.logger.Info("account_created", slog.String("user_id", user.ID))
	return user, nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established cookie session.
type LoginSession struct {
	// Token is the signed value placed in the session cookie.
	Token string
	User  *User
}

// BasicLogin validates email/password credentials and establishes a session.
//
// # Returns
//   - A pointer to [LoginSession] containing the signed cookie token.
//   - Returns [apperr.Unauthorized] if credentials do not match.
//
// # Flow
//  1. Lookup account by email.
//  2. Verify password hash using bcrypt.
//  3. Store the session record in Redis with [SessionTTL].
//  4. Sign the cookie token embedding user and session IDs.
func (service *Service) BasicLogin(ctx context.Context, input LoginInput) (*LoginSession, error) {
	// ── 1. Fetch Account ──────────────────────────────────────────────────

	// Return a generic unauthorized error to prevent email enumeration.
	user, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	// bcrypt compares in constant time, protecting against timing attacks.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// ── 3. Session Establishment ──────────────────────────────────────────

	sessionID := uuid.New()
	if err := service.sessionRepository.Save(ctx, sessionID, user.ID, SessionTTL); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	// ── 4. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokenService.GenerateSessionToken(user.ID, user.Email, sessionID, SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.Info("login_succeeded", slog.String("user_id", user.ID))
	return &LoginSession{Token: token, User: user}, nil
}

// VerifySession validates a session cookie value end to end.
//
// It checks the token signature and expiry first, then confirms the embedded
// session ID still exists in Redis and still belongs to the same user. This
// is what makes logout take effect immediately despite the long-lived cookie.
//
// VerifySession satisfies the middleware SessionVerifier contract.
func (service *Service) VerifySession(request *http.Request, token string) (*sec.SessionClaims, error) {
	claims, err := service.tokenService.VerifyToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid session")
	}

	userID, err := service.sessionRepository.Get(request.Context(), claims.SessionID)
	if err != nil || userID != claims.UserID {
		return nil, apperr.Unauthorized("Session expired or revoked")
	}

	return claims, nil
}

// CurrentUser loads the account profile behind verified session claims.
//
// A session record can outlive its account (for example after a manual
// account purge), so a missing row maps to apperr.Unauthorized rather than
// leaking a bare not-found.
func (service *Service) CurrentUser(ctx context.Context, claims *sec.SessionClaims) (*User, error) {
	user, err := service.userRepository.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Session expired or revoked")
	}
	return user, nil
}

// Logout revokes the session referenced by the claims.
// Logging out an already-dead session succeeds (idempotent operation).
func (service *Service) Logout(ctx context.Context, claims *sec.SessionClaims) error {
	if claims == nil {
		return nil
	}

	if err := service.sessionRepository.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.logger.Info("logout_succeeded", slog.String("user_id", claims.UserID))
	return nil
}
