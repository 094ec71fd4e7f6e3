package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, Verify("correct horse battery staple", hash))
	assert.False(t, Verify("wrong password", hash))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same input", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := Hash("same input", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashInvalidCostFallsBack(t *testing.T) {
	hash, err := Hash("secret", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, Verify("anything", ""))
}
