package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/lms-api/pkg/password"
)

func TestHash_NuncaIgualAlTextoPlano(t *testing.T) {
	hash, err := password.Hash("Secr3t@pass")
	require.NoError(t, err)

	assert.NotEqual(t, "Secr3t@pass", hash)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, password.Cost, cost)
}

func TestCompare(t *testing.T) {
	hash, err := password.Hash("Secr3t@pass")
	require.NoError(t, err)

	assert.True(t, password.Compare("Secr3t@pass", hash))
	assert.False(t, password.Compare("otra", hash))
	assert.False(t, password.Compare("Secr3t@pass", "no-es-un-hash"))
}
