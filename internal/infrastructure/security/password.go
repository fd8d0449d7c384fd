package security

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the adaptive cost used when none is configured.
const DefaultBcryptCost = 12

// BcryptHasher hashes passwords with bcrypt. The cost factor is fixed at
// construction time; bcrypt embeds the salt in the encoded hash and compares
// in constant time.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
