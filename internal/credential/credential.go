package credential

import (
	"golang.org/x/crypto/bcrypt"
)

// Verifier hashes folder passwords and checks plaintext against stored hashes.
type Verifier interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type bcryptVerifier struct {
	cost int
}

// NewBcrypt returns a Verifier backed by bcrypt. Out-of-range costs use bcrypt.DefaultCost.
func NewBcrypt(cost int) Verifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptVerifier{cost: cost}
}

func (v *bcryptVerifier) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify reports whether password matches hash. An empty password or a
// malformed hash never matches.
func (v *bcryptVerifier) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
