package encode

import "golang.org/x/crypto/bcrypt"

// Hasher turns clear-text passwords into one-way digests and checks them.
type Hasher interface {
	Hash(cleartext string) (string, error)
	Verify(cleartext, digest string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt Hasher. A cost outside bcrypt's range
// falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(cleartext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(cleartext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *bcryptHasher) Verify(cleartext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(cleartext)) == nil
}
