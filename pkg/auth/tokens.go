package auth

import "context"

// TokenGenerator abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}

// PasswordHasher abstracts one-way credential hashing so the flows never
// see hashing internals. Verify returns a non-nil error on mismatch.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
