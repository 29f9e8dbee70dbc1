// Copyright (c) 2026 Chaekdam. All rights reserved.
// Author: dahee.park.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daheepark/chaekdam/internal/platform/apperr"
	"github.com/daheepark/chaekdam/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository using Redis.
//
// Each live session is a single key (auth:session:{id}) holding the owning
// user ID. Redis TTL handles expiry, so a crashed server never leaks
// immortal sessions.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new Redis-backed SessionRepository.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

/*
Save stores a session record with its owning userID and TTL.

Parameters:
  - ctx: context.Context
  - sessionID: string
  - userID: string
  - ttl: time.Duration

Returns:
  - error: Storage failures
*/
func (repository *RedisSessionRepository) Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	key := sessionKey(sessionID)

	if err := repository.client.Set(ctx, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_save_failed: %w", err)
	}

	return nil
}

/*
Get retrieves the owning userID for a session.

Description: Returns apperr.NotFound if the session is absent or expired.

Parameters:
  - ctx: context.Context
  - sessionID: string

Returns:
  - string: Owning UserID
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSessionRepository) Get(ctx context.Context, sessionID string) (string, error) {
	key := sessionKey(sessionID)

	userID, err := repository.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Session")
		}
		return "", fmt.Errorf("redis_session_get_failed: %w", err)
	}

	return userID, nil
}

/*
Delete revokes a session. Missing keys are treated as success.

Parameters:
  - ctx: context.Context
  - sessionID: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	key := sessionKey(sessionID)

	if err := repository.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}

// sessionKey builds the namespaced Redis key for a session ID.
func sessionKey(sessionID string) string {
	return constants.RedisPrefixSession + sessionID
}
