package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = 12

// Hasher is the one-way password hashing capability. The raw password never
// leaves this package once hashed.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type hasher struct {
	cost int
}

func NewHasher(cost int) (Hasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &hasher{cost: cost}, nil
}

func (h *hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password is required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("generate password hash: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether password matches hash. bcrypt's comparison is
// constant-time on the digest.
func (h *hasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
