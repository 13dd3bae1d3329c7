package session

import (
	"path/filepath"
	"testing"

	"gotest.tools/assert"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestStoreRoundTrip(t *testing.T) {
	store := testStore(t)

	saved := Session{
		User:  User{ID: "u-1", Name: "Amiya", Email: "amiya@example.com", Role: RoleUser},
		Token: "header.payload.sig",
	}
	assert.Equal(t, nil, store.Save(saved))

	loaded, ok, err := store.Load()
	assert.Equal(t, nil, err)
	assert.Assert(t, ok)
	assert.Equal(t, saved, loaded)
}

func TestStoreLoadMissing(t *testing.T) {
	store := testStore(t)

	_, ok, err := store.Load()
	assert.Equal(t, nil, err)
	assert.Assert(t, !ok)
}

func TestStoreClear(t *testing.T) {
	store := testStore(t)

	assert.Equal(t, nil, store.Save(Session{Token: "t"}))
	assert.Equal(t, nil, store.Clear())

	_, ok, err := store.Load()
	assert.Equal(t, nil, err)
	assert.Assert(t, !ok)

	// clearing twice is fine
	assert.Equal(t, nil, store.Clear())
}

func TestStoreSaveReplaces(t *testing.T) {
	store := testStore(t)

	assert.Equal(t, nil, store.Save(Session{Token: "first"}))
	assert.Equal(t, nil, store.Save(Session{Token: "second"}))

	loaded, ok, err := store.Load()
	assert.Equal(t, nil, err)
	assert.Assert(t, ok)
	assert.Equal(t, "second", loaded.Token)
}
