package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Remarks/internal/domain/contract"
)

// TokenDenylistStore keeps revoked access token ids in redis until their expiry.
type TokenDenylistStore struct {
	rdb *redis.Client
}

func NewTokenDenylistStore(rdb *redis.Client) *TokenDenylistStore {
	return &TokenDenylistStore{rdb: rdb}
}

var _ contract.ITokenDenylist = (*TokenDenylistStore)(nil)

func revokedTokenKey(tokenID string) string { return fmt.Sprintf("auth:revoked:%s", tokenID) }

func (s *TokenDenylistStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, revokedTokenKey(tokenID), 1, ttl).Err()
}

func (s *TokenDenylistStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedTokenKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
