package services

import (
	"context"
	"errors"
	"testing"

	"github.com/invotrack/invocli/internal/client/models"
	"github.com/invotrack/invocli/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserGet(t *testing.T) {
	f := &fakeClient{ProfileRet: models.User{ID: 42, Name: "Alice", Email: "alice@example.org"}}
	u := NewUserService(f, session.NewMemoryStore())

	got, err := u.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestUserUpdate_RejectsBadEmailLocally(t *testing.T) {
	f := &fakeClient{}
	u := NewUserService(f, session.NewMemoryStore())

	_, err := u.Update(context.Background(), "Alice", "nope")

	var ferr FieldErrors
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr, "email")
}

func TestUserUpdate_Success(t *testing.T) {
	f := &fakeClient{UpdateRet: models.User{ID: 42, Name: "Alicia", Email: "alicia@example.org"}}
	u := NewUserService(f, session.NewMemoryStore())

	got, err := u.Update(context.Background(), "Alicia", "alicia@example.org")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)
	assert.Equal(t, "Alicia", f.LastUpd.Name)
}

func TestUserDelete_ClearsSession(t *testing.T) {
	f := &fakeClient{}
	store := &countingStore{Store: session.NewMemoryStore()}
	require.NoError(t, store.Set(session.Session{AccessToken: "tok"}))

	u := NewUserService(f, store)
	require.NoError(t, u.Delete(context.Background()))

	assert.Equal(t, 1, f.DeleteN)
	_, ok := store.Get()
	assert.False(t, ok, "deleting the account destroys the session")
}

func TestUserDelete_ServerFailureKeepsSession(t *testing.T) {
	f := &fakeClient{DeleteErr: errors.New("boom")}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(session.Session{AccessToken: "tok"}))

	u := NewUserService(f, store)
	require.Error(t, u.Delete(context.Background()))

	_, ok := store.Get()
	assert.True(t, ok)
}
