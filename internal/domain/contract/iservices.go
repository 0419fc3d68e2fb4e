package contract

import (
	"context"
	"time"
)

// IHasher hashes and verifies user passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}

type IUUIDGenerator interface {
	NewUUID() string
}

// ITokenDenylist remembers revoked access tokens until they would have expired anyway.
type ITokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
