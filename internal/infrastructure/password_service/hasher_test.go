package passwordservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := NewHasherWithCost(bcrypt.MinCost)

	hash, err := h.HashPassword("Secret#123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret#123", hash)

	assert.NoError(t, h.ComparePasswordHash("Secret#123", hash))
	assert.EqualError(t, h.ComparePasswordHash("wrong", hash), "password verification failed")
}
