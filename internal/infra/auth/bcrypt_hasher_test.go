package auth

import (
	"testing"

	"taskhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashRoundTrip(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	ok, err := hasher.Check(password, hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_HashEmbedsFreshSalt(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same input")
	require.NoError(t, err)
	second, err := hasher.Hash("same input")
	require.NoError(t, err)

	// Equal inputs are not required to produce equal outputs.
	assert.NotEqual(t, first, second)

	ok, err := hasher.Check("same input", first)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = hasher.Check("same input", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_CheckWrongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("first password")
	require.NoError(t, err)

	ok, err := hasher.Check("second password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_CheckMalformedHashFailsClosed(t *testing.T) {
	hasher := NewBcryptHasher()

	for _, malformed := range []string{
		"not a bcrypt hash",
		"$2a$xx$garbage",
		"plaintext",
	} {
		ok, err := hasher.Check("whatever", malformed)
		assert.NoError(t, err, "hash %q", malformed)
		assert.False(t, ok, "hash %q", malformed)
	}
}

func TestBcryptHasher_CheckEmptyHash(t *testing.T) {
	hasher := NewBcryptHasher()

	ok, err := hasher.Check("whatever", "")
	assert.ErrorIs(t, err, service.ErrInvalidHash)
	assert.False(t, ok)
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(6)

	hash, err := hasher.Hash("some password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	hash, err := hasher.Hash("some password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
