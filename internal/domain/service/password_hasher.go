// Package service declares the infrastructure ports the usecases depend on.
package service

// PasswordHasher turns plaintext passwords into salted one-way hashes.
type PasswordHasher interface {
	// Hash fails with ErrPasswordHashFailed for an empty password.
	Hash(password string) (string, error)

	// Verify reports a mismatch as (false, nil). An empty password or a
	// malformed hash is an error.
	Verify(password, hash string) (bool, error)
}
