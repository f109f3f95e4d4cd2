package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerStoreAndRetrieve(t *testing.T) {
	store := NewMockStore()
	m := NewManagerWithStores(store)

	require.NoError(t, m.Store(&Credentials{APIKey: "abcdef0123456789"}))

	creds, err := m.Retrieve()
	require.NoError(t, err)
	assert.Equal(t, "abcdef0123456789", creds.APIKey)
	assert.False(t, creds.LastModified.IsZero())
}

func TestManagerStoreRejectsEmptyKey(t *testing.T) {
	m := NewManagerWithStores(NewMockStore())

	assert.ErrorIs(t, m.Store(&Credentials{}), ErrInvalidCredentials)
	assert.ErrorIs(t, m.Store(nil), ErrInvalidCredentials)
}

func TestManagerFallsBackToSecondStore(t *testing.T) {
	broken := NewMockStore()
	broken.StoreErr = errors.New("keychain locked")
	working := NewMockStore()
	m := NewManagerWithStores(broken, working)

	require.NoError(t, m.Store(&Credentials{APIKey: "abcdef0123456789"}))

	assert.False(t, broken.Exists())
	assert.True(t, working.Exists())
}

func TestManagerRetrieveNotFound(t *testing.T) {
	m := NewManagerWithStores(NewMockStore())

	_, err := m.Retrieve()
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestManagerDelete(t *testing.T) {
	store := NewMockStore()
	m := NewManagerWithStores(store)

	require.NoError(t, m.Store(&Credentials{APIKey: "abcdef0123456789"}))
	require.NoError(t, m.Delete())

	assert.False(t, m.Exists())
	assert.ErrorIs(t, m.Delete(), ErrCredentialsNotFound)
}

func TestEnvironmentStore(t *testing.T) {
	t.Setenv("FLICKR_API_KEY", "env-key")

	store := NewEnvironmentStore()
	assert.True(t, store.Exists())

	creds, err := store.Retrieve()
	require.NoError(t, err)
	assert.Equal(t, "env-key", creds.APIKey)

	assert.ErrorIs(t, store.Store(&Credentials{APIKey: "x"}), ErrStoreReadOnly)
	assert.ErrorIs(t, store.Delete(), ErrStoreReadOnly)
}

func TestEnvironmentStoreEmpty(t *testing.T) {
	t.Setenv("FLICKR_API_KEY", "")

	store := NewEnvironmentStore()
	assert.False(t, store.Exists())

	_, err := store.Retrieve()
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "********", MaskKey("short"))
	assert.Equal(t, "abcd...wxyz", MaskKey("abcdefghijklmnopqrstuvwxyz"))
}
