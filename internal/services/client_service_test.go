package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-recipe-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEnsureClient(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewClientService(db)

	created, err := service.EnsureClient("recipe-api", "first-secret", "Recipe API")
	require.NoError(t, err)
	assert.NotEqual(t, "first-secret", created.Secret)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Secret), []byte("first-secret")))

	t.Run("same secret keeps the stored hash", func(t *testing.T) {
		again, err := service.EnsureClient("recipe-api", "first-secret", "Recipe API")
		require.NoError(t, err)
		assert.Equal(t, created.Secret, again.Secret)
	})

	t.Run("new secret rotates the hash", func(t *testing.T) {
		rotated, err := service.EnsureClient("recipe-api", "second-secret", "Recipe API")
		require.NoError(t, err)

		stored, err := service.GetClientByID("recipe-api")
		require.NoError(t, err)
		assert.Equal(t, rotated.Secret, stored.Secret)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Secret), []byte("second-secret")))
	})

	_, err = service.GetClientByID("missing")
	assert.Error(t, err)
}
