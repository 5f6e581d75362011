//go:build unit

package session_test

import (
	"testing"
	"time"

	"ev-campus-client/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func credentialFor(t *testing.T, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestStoreBootstrap(t *testing.T) {
	t.Run("empty storage leaves no session", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryStorage())

		require.NoError(t, store.Bootstrap())

		_, ok := store.Current()
		assert.False(t, ok)
	})

	t.Run("valid credential restores the session", func(t *testing.T) {
		storage := session.NewMemoryStorage()
		require.NoError(t, storage.Save(credentialFor(t, "alice@example.edu")))
		store := session.NewStore(storage)

		require.NoError(t, store.Bootstrap())

		sess, ok := store.Current()
		require.True(t, ok)
		assert.Equal(t, "alice", sess.DisplayName)
		assert.Equal(t, "alice@example.edu", sess.Email)
	})

	t.Run("invalid credential is discarded from storage", func(t *testing.T) {
		storage := session.NewMemoryStorage()
		require.NoError(t, storage.Save("garbage-not-a-token"))
		store := session.NewStore(storage)

		require.NoError(t, store.Bootstrap())

		_, ok := store.Current()
		assert.False(t, ok)
		_, present, err := storage.Load()
		require.NoError(t, err)
		assert.False(t, present)
	})
}

func TestStoreEstablish(t *testing.T) {
	t.Run("preferred name wins over derived local part", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryStorage())

		sess, err := store.Establish(credentialFor(t, "alice@example.edu"), "Alice")
		require.NoError(t, err)
		assert.Equal(t, "Alice", sess.DisplayName)
		assert.Equal(t, "alice@example.edu", sess.Email)
	})

	t.Run("without preferred name the local part is used", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryStorage())

		sess, err := store.Establish(credentialFor(t, "alice@example.edu"), "")
		require.NoError(t, err)
		assert.Equal(t, "alice", sess.DisplayName)
	})

	t.Run("credential is persisted and exposed to the pipeline", func(t *testing.T) {
		storage := session.NewMemoryStorage()
		store := session.NewStore(storage)
		credential := credentialFor(t, "alice@example.edu")

		_, err := store.Establish(credential, "")
		require.NoError(t, err)

		stored, present, err := storage.Load()
		require.NoError(t, err)
		require.True(t, present)
		assert.Equal(t, credential, stored)

		got, ok := store.Credential()
		require.True(t, ok)
		assert.Equal(t, credential, got)
	})

	t.Run("malformed credential is rejected without touching storage", func(t *testing.T) {
		storage := session.NewMemoryStorage()
		store := session.NewStore(storage)

		_, err := store.Establish("garbage", "Alice")
		assert.ErrorIs(t, err, session.ErrInvalidCredential)

		_, present, loadErr := storage.Load()
		require.NoError(t, loadErr)
		assert.False(t, present)
	})
}

func TestStoreClear(t *testing.T) {
	t.Run("drops session and storage", func(t *testing.T) {
		storage := session.NewMemoryStorage()
		store := session.NewStore(storage)
		_, err := store.Establish(credentialFor(t, "alice@example.edu"), "")
		require.NoError(t, err)

		require.NoError(t, store.Clear())

		_, ok := store.Current()
		assert.False(t, ok)
		_, ok = store.Credential()
		assert.False(t, ok)
		_, present, loadErr := storage.Load()
		require.NoError(t, loadErr)
		assert.False(t, present)
	})

	t.Run("clearing an absent session is a no-op", func(t *testing.T) {
		storage := session.NewMemoryStorage()
		store := session.NewStore(storage)

		require.NoError(t, store.Clear())
		require.NoError(t, store.Clear())

		_, present, err := storage.Load()
		require.NoError(t, err)
		assert.False(t, present)
	})
}
