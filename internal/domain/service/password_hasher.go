// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within
// a single entity.
package service

import "errors"

// ErrInvalidHash is returned by Check when the stored hash is structurally
// absent (empty string). That is a programmer error, not a failed login: a
// merely malformed hash fails closed with (false, nil) instead.
var ErrInvalidHash = errors.New("invalid password hash")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (bcrypt), keeping the
// domain pure. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Each call
	// embeds a fresh salt, so equal inputs produce different outputs.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	// A malformed hash yields (false, nil); an empty hash yields
	// (false, ErrInvalidHash).
	Check(password, hash string) (bool, error)
}
