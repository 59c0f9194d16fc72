package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"erpauth/config"
	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/errors"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	// Salts differ between calls
	other, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))

	_, err = hasher.Verify("", "$2a$04$abcdefghijklmnopqrstuu")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	ok, err := hasher.Verify(password, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("WrongPass123!", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	ok, err := hasher.Verify("StrongPass123!", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost + 1}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)

	assert.Equal(t, DefaultBcryptCost, NewBcryptHasher(&config.Config{}).(*bcryptHasher).cost)
}
