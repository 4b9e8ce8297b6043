// Package password provides one-way password hashing and verification.
package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor used for new hashes.
const Cost = 10

// BcryptHasher implements auth.PasswordHasher with salted bcrypt digests.
// Two hashes of the same password differ (random salt) but both verify.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: Cost}
}

// Hash returns a salted digest of password. Errors are surfaced to the
// caller, never collapsed into a "verifies" result.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify recomputes the digest with the salt embedded in hash and compares
// in constant time. A non-nil error means the password does not match.
func (h *BcryptHasher) Verify(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
