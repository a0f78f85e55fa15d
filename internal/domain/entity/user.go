// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can authenticate and own tasks.
// PasswordHash is the bcrypt-encoded credential; the plaintext password is
// never stored and the hash is never serialized outward.
type User struct {
	ID           uuid.UUID // Unique identifier, generated once at registration.
	Email        string    // Login identifier. Unique across all users, compared case-sensitively.
	PasswordHash string    // One-way salted hash of the password.
	CreatedAt    time.Time // Timestamp of when the account was registered.
	Tasks        []*Task   // Back-reference to the tasks owned by this user.
}
