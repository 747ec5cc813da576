package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/cccc-2705/Mercado/internal/core/ports"
)

const tokenKeyPrefix = "tokens:"

// TokenStore persists bearer tokens under fixed keys in Redis. When a cipher
// is configured, token values are sealed before they touch the wire. It does
// not validate token well-formedness; callers treat unreadable values as
// absent.
type TokenStore struct {
	client *redis.Client
	cipher *TokenCipher // nil means plaintext
}

var _ ports.TokenStore = (*TokenStore)(nil)

// NewTokenStore wraps the given Redis client. cipher may be nil.
func NewTokenStore(client *redis.Client, cipher *TokenCipher) *TokenStore {
	return &TokenStore{client: client, cipher: cipher}
}

func (s *TokenStore) Get(ctx context.Context, name string) (string, error) {
	val, err := s.client.Get(ctx, tokenKeyPrefix+name).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("token get %q: %w", name, err)
	}

	if s.cipher != nil {
		opened, err := s.cipher.Open(val)
		if err != nil {
			// Unreadable at rest equals absent for callers.
			return "", nil
		}
		return opened, nil
	}
	return val, nil
}

func (s *TokenStore) Set(ctx context.Context, name, value string) error {
	if s.cipher != nil {
		sealed, err := s.cipher.Seal(value)
		if err != nil {
			return fmt.Errorf("token seal %q: %w", name, err)
		}
		value = sealed
	}
	if err := s.client.Set(ctx, tokenKeyPrefix+name, value, 0).Err(); err != nil {
		return fmt.Errorf("token set %q: %w", name, err)
	}
	return nil
}

func (s *TokenStore) Clear(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, tokenKeyPrefix+name).Err(); err != nil {
		return fmt.Errorf("token clear %q: %w", name, err)
	}
	return nil
}
