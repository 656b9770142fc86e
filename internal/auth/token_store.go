package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks which refresh tokens are currently valid so they can be
// revoked server-side independent of cryptographic validity. Entries carry a
// TTL matching the token lifetime, so expired tokens are purged by Redis and
// the set never grows without bound. Backing the set with Redis instead of
// process memory lets multiple instances share revocation state.
type TokenStore interface {
	Save(ctx context.Context, token string, userID uint, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID uint) error
}

const refreshTokenKeyPrefix = "auth:refresh:"
const userTokenIndexPrefix = "auth:user-tokens:"

type redisTokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

// tokens are never stored in plaintext; only the digest is kept
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *redisTokenStore) tokenKey(token string) string {
	return refreshTokenKeyPrefix + hashToken(token)
}

func (s *redisTokenStore) userKey(userID uint) string {
	return userTokenIndexPrefix + strconv.FormatUint(uint64(userID), 10)
}

func (s *redisTokenStore) Save(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	key := s.tokenKey(token)
	if err := s.client.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}

	// Per-user index enables bulk revocation (password change, account delete)
	userKey := s.userKey(userID)
	pipe := s.client.Pipeline()
	pipe.SAdd(ctx, userKey, hashToken(token))
	pipe.Expire(ctx, userKey, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to index refresh token: %w", err)
	}

	return nil
}

func (s *redisTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	count, err := s.client.Exists(ctx, s.tokenKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check refresh token: %w", err)
	}
	return count > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, token string) error {
	val, err := s.client.Get(ctx, s.tokenKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil // already gone, revocation is idempotent
		}
		return fmt.Errorf("failed to look up refresh token: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.tokenKey(token))
	if userID, convErr := strconv.ParseUint(val, 10, 32); convErr == nil {
		pipe.SRem(ctx, s.userKey(uint(userID)), hashToken(token))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func (s *redisTokenStore) RevokeAllForUser(ctx context.Context, userID uint) error {
	userKey := s.userKey(userID)
	hashes, err := s.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list user refresh tokens: %w", err)
	}

	pipe := s.client.Pipeline()
	for _, h := range hashes {
		pipe.Del(ctx, refreshTokenKeyPrefix+h)
	}
	pipe.Del(ctx, userKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to revoke user refresh tokens: %w", err)
	}

	return nil
}
