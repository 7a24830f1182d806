package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()
	verifier := NewBcryptVerifier()

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "bcrypt hash format")

	assert.NoError(t, verifier.Compare(hash, "correct horse battery"))
	assert.Error(t, verifier.Compare(hash, "wrong password"))
	assert.Error(t, verifier.Compare("not-a-hash", "correct horse battery"))
}

func TestBcryptHashIsSalted(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash carries its own salt")
}
