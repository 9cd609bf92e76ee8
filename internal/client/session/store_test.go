package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyToken, []byte("abc")))

	got, err := store.Get(KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestFileStore_MissingKeyIsNil(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	got, err := store.Get(KeyUser)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStore_Clear(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyUser, []byte(`{"id":"u"}`)))
	require.NoError(t, store.Set(KeyToken, []byte("abc")))
	require.NoError(t, store.Clear())

	user, err := store.Get(KeyUser)
	require.NoError(t, err)
	assert.Nil(t, user)
	token, err := store.Get(KeyToken)
	require.NoError(t, err)
	assert.Nil(t, token)

	// clearing an already empty store is fine
	require.NoError(t, store.Clear())
}
