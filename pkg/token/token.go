package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nguyentranbao-ct/price-scout/internal/models"
)

const DefaultTTL = time.Hour

// ErrInvalidToken is returned for every verification failure: malformed
// token, wrong signing method, bad signature or expiry. Verification fails
// closed; callers branch on this single error, not on failure detail.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the verified contents of a session token.
type Claims struct {
	UserID string
	Email  string
}

// Issuer mints and verifies stateless session tokens. There is no revocation
// list; expiry is the only invalidation path.
type Issuer interface {
	Issue(user *models.User) (string, error)
	Verify(tokenString string) (*Claims, error)
}

type issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) (Issuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &issuer{secret: []byte(secret), ttl: ttl}, nil
}

func (i *issuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.Hex(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(i.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i *issuer) Verify(tokenString string) (*Claims, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)

	return &Claims{UserID: sub, Email: email}, nil
}
