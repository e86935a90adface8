package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/lms-api/internal/application/ports"
)

var _ ports.TokenStore = (*TokenStore)(nil)

// minTTL evita claves sin expiración cuando el token ya está por vencer.
const minTTL = time.Second

// TokenStore lista de revocación y registro de consumo de jti sobre Redis.
type TokenStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewTokenStore construye el store; prefix vacío usa DefaultPrefix.
func NewTokenStore(client goredis.UniversalClient, prefix string) *TokenStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &TokenStore{client: client, prefix: prefix}
}

func (s *TokenStore) revokedKey(jti string) string  { return s.prefix + "revoked:" + jti }
func (s *TokenStore) consumedKey(jti string) string { return s.prefix + "consumed:" + jti }

func clampTTL(ttl time.Duration) time.Duration {
	if ttl < minTTL {
		return minTTL
	}
	return ttl
}

// Revoke marca el jti como revocado hasta que el token expire.
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.revokedKey(jti), 1, clampTTL(ttl)).Err(); err != nil {
		return fmt.Errorf("revoke jti: %w", err)
	}
	return nil
}

// RevokeIfAbsent usa SETNX sobre la clave de revocación: sólo un llamador reclama el jti.
func (s *TokenStore) RevokeIfAbsent(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.revokedKey(jti), 1, clampTTL(ttl)).Result()
	if err != nil {
		return false, fmt.Errorf("claim revoked jti: %w", err)
	}
	return ok, nil
}

func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.revokedKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked jti: %w", err)
	}
	return n > 0, nil
}

// Consume usa SETNX: sólo la primera llamada para un jti devuelve true.
func (s *TokenStore) Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.consumedKey(jti), 1, clampTTL(ttl)).Result()
	if err != nil {
		return false, fmt.Errorf("consume jti: %w", err)
	}
	return ok, nil
}
