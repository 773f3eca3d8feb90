package token_test

import (
	"testing"
	"time"

	"github.com/nguyentranbao-ct/price-scout/internal/models"
	"github.com/nguyentranbao-ct/price-scout/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testUser() *models.User {
	return &models.User{
		ID:    primitive.NewObjectID(),
		Email: "a@x.com",
		Name:  "A",
	}
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer, err := token.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	user := testUser()
	tok, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestVerifyFailsClosed(t *testing.T) {
	t.Parallel()

	issuer, err := token.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	t.Run("malformed token", func(t *testing.T) {
		_, err := issuer.Verify("not.a.jwt")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := issuer.Verify("")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := token.NewIssuer("other-secret", time.Hour)
		require.NoError(t, err)

		tok, err := other.Issue(testUser())
		require.NoError(t, err)

		_, err = issuer.Verify(tok)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := token.NewIssuer("test-secret", time.Millisecond)
		require.NoError(t, err)

		tok, err := expired.Issue(testUser())
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)
		_, err = issuer.Verify(tok)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := token.NewIssuer("", time.Hour)
	assert.Error(t, err)
}
