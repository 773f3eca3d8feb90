package crypto_test

import (
	"testing"

	"github.com/nguyentranbao-ct/price-scout/pkg/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher(t *testing.T) {
	t.Parallel()

	// MinCost keeps the test fast; production uses DefaultCost.
	h, err := crypto.NewHasher(4)
	require.NoError(t, err)

	t.Run("hash and compare round trip", func(t *testing.T) {
		hash, err := h.Hash("s3cret-pass")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-pass", hash, "hash must not be the raw password")
		assert.True(t, h.Compare(hash, "s3cret-pass"))
	})

	t.Run("wrong password does not match", func(t *testing.T) {
		hash, err := h.Hash("s3cret-pass")
		require.NoError(t, err)
		assert.False(t, h.Compare(hash, "other-pass"))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		h1, err := h.Hash("s3cret-pass")
		require.NoError(t, err)
		h2, err := h.Hash("s3cret-pass")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2, "bcrypt salts every hash")
	})

	t.Run("empty password rejected", func(t *testing.T) {
		_, err := h.Hash("")
		assert.Error(t, err)
	})

	t.Run("garbage hash never matches", func(t *testing.T) {
		assert.False(t, h.Compare("not-a-bcrypt-hash", "s3cret-pass"))
	})
}

func TestNewHasherCost(t *testing.T) {
	t.Parallel()

	t.Run("zero cost falls back to default", func(t *testing.T) {
		_, err := crypto.NewHasher(0)
		assert.NoError(t, err)
	})

	t.Run("out of range cost rejected", func(t *testing.T) {
		_, err := crypto.NewHasher(99)
		assert.Error(t, err)
	})
}
