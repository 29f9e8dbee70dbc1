// Copyright (c) 2026 Chaekdam. All rights reserved.
// Author: dahee.park.dev@gmail.com

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daheepark/chaekdam/internal/platform/apperr"
	"github.com/daheepark/chaekdam/internal/platform/sec"
	"github.com/daheepark/chaekdam/internal/users/auth"
)

type fakeUserRepository struct {
	byEmail map[string]*auth.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: map[string]*auth.User{}}
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	key := strings.ToLower(user.Email)
	if _, exists := f.byEmail[key]; exists {
		return apperr.Conflict("Email is already registered")
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.byEmail[key] = user
	return nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	user, exists := f.byEmail[strings.ToLower(email)]
	if !exists {
		return nil, apperr.NotFound("Account")
	}
	return user, nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

type fakeSessionRepository struct {
	sessions map[string]string
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[string]string{}}
}

func (f *fakeSessionRepository) Save(_ context.Context, sessionID, userID string, _ time.Duration) error {
	f.sessions[sessionID] = userID
	return nil
}

func (f *fakeSessionRepository) Get(_ context.Context, sessionID string) (string, error) {
	userID, exists := f.sessions[sessionID]
	if !exists {
		return "", apperr.NotFound("Session")
	}
	return userID, nil
}

func (f *fakeSessionRepository) Delete(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func newAuthService(t *testing.T) (*auth.Service, *fakeSessionRepository) {
	t.Helper()

	tokenService, err := sec.NewTokenService("test-secret-test-secret-test-secret!", "chaekdam.test")
	require.NoError(t, err)

	sessions := newFakeSessionRepository()
	service := auth.NewService(newFakeUserRepository(), sessions, tokenService, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return service, sessions
}

func signupInput() auth.SignupInput {
	return auth.SignupInput{
		Name:     "박다희",
		Email:    "dahee@example.com",
		Password: "correct horse battery",
	}
}

func TestSignup(t *testing.T) {
	service, _ := newAuthService(t)

	user, err := service.Signup(context.Background(), signupInput())

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "박다희", user.Name)
	// The password must never be stored in the clear.
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "correct horse")
}

func TestSignupDuplicateEmail(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	input := signupInput()
	input.Email = "DAHEE@example.com" // same address, different case

	_, err = service.Signup(context.Background(), input)

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*auth.SignupInput)
	}{
		{"missing_name", func(in *auth.SignupInput) { in.Name = "" }},
		{"bad_email", func(in *auth.SignupInput) { in.Email = "not-an-email" }},
		{"short_password", func(in *auth.SignupInput) { in.Password = "short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newAuthService(t)

			input := signupInput()
			tt.mutate(&input)

			_, err := service.Signup(context.Background(), input)

			require.Error(t, err)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

func TestBasicLogin(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	session, err := service.BasicLogin(context.Background(), auth.LoginInput{
		Email:    "dahee@example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "dahee@example.com", session.User.Email)

	// The issued token must verify against the live session.
	request := httptest.NewRequest("GET", "/api/auth/session", nil)
	claims, err := service.VerifySession(request, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.UserID)
}

func TestBasicLoginBadCredentials(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	tests := []struct {
		name  string
		input auth.LoginInput
	}{
		{"wrong_password", auth.LoginInput{Email: "dahee@example.com", Password: "wrong"}},
		{"unknown_email", auth.LoginInput{Email: "nobody@example.com", Password: "correct horse battery"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.BasicLogin(context.Background(), tt.input)

			require.Error(t, err)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "UNAUTHORIZED", appError.Code)
			// Both failure modes must read identically to the client.
			assert.Equal(t, "Invalid email or password", appError.Message)
		})
	}
}

func TestCurrentUser(t *testing.T) {
	service, _ := newAuthService(t)

	user, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	session, err := service.BasicLogin(context.Background(), auth.LoginInput{
		Email:    "dahee@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	request := httptest.NewRequest("GET", "/api/auth/session", nil)
	claims, err := service.VerifySession(request, session.Token)
	require.NoError(t, err)

	got, err := service.CurrentUser(context.Background(), claims)

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "dahee@example.com", got.Email)
}

func TestCurrentUserDeletedAccount(t *testing.T) {
	service, _ := newAuthService(t)

	claims := &sec.SessionClaims{UserID: "0195efcb-0c4c-7e27-b974-b43b668e0001"}
	_, err := service.CurrentUser(context.Background(), claims)

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

func TestVerifySessionRejectsGarbage(t *testing.T) {
	service, _ := newAuthService(t)

	request := httptest.NewRequest("GET", "/api/auth/session", nil)
	_, err := service.VerifySession(request, "not-a-token")

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	service, sessions := newAuthService(t)

	_, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	session, err := service.BasicLogin(context.Background(), auth.LoginInput{
		Email:    "dahee@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	request := httptest.NewRequest("GET", "/api/auth/session", nil)
	claims, err := service.VerifySession(request, session.Token)
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), claims))
	assert.Empty(t, sessions.sessions)

	// The cookie is still signed and unexpired, but the session is gone.
	_, err = service.VerifySession(request, session.Token)
	require.Error(t, err)

	// Logout is idempotent.
	require.NoError(t, service.Logout(context.Background(), claims))
}
