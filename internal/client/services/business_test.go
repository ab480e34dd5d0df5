package services

import (
	"context"
	"errors"
	"testing"

	"github.com/invotrack/invocli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterBusiness_OnlyEmailErrorForMalformedEmail(t *testing.T) {
	f := &fakeClient{}
	b := NewBusinessService(f)

	_, err := b.Register(context.Background(), "Acme Ltd", "not-an-email", "0712345678", nil)

	var ferr FieldErrors
	require.ErrorAs(t, err, &ferr)
	assert.Len(t, ferr, 1, "only the email field carries an error")
	assert.Contains(t, ferr, "email")
	assert.Zero(t, f.RegisterN, "submission must be blocked")
}

func TestRegisterBusiness_AllFieldsInvalid(t *testing.T) {
	f := &fakeClient{}
	b := NewBusinessService(f)

	_, err := b.Register(context.Background(), "  ", "", "123", nil)

	var ferr FieldErrors
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr, "name")
	assert.Contains(t, ferr, "email")
	assert.Contains(t, ferr, "phone_number")
	assert.Zero(t, f.RegisterN)
}

func TestRegisterBusiness_Success_InvokesCallback(t *testing.T) {
	f := &fakeClient{RegisterRet: models.Business{ID: 7, Name: "Acme Ltd"}}
	b := NewBusinessService(f)

	refreshed := false
	created, err := b.Register(context.Background(), "Acme Ltd", "acme@example.org", "071-234-5678", func() { refreshed = true })

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.True(t, refreshed, "success callback drives the parent list refresh")
	assert.Equal(t, "Acme Ltd", f.LastRegister.Name)
}

func TestRegisterBusiness_ServerFailure_SingleTopLevelError(t *testing.T) {
	f := &fakeClient{RegisterErr: errors.New("duplicate business")}
	b := NewBusinessService(f)

	callbackRan := false
	_, err := b.Register(context.Background(), "Acme Ltd", "acme@example.org", "0712345678", func() { callbackRan = true })

	require.Error(t, err)
	var ferr FieldErrors
	assert.False(t, errors.As(err, &ferr), "server failures are not per-field errors")
	assert.False(t, callbackRan)
}

func TestListBusinesses(t *testing.T) {
	f := &fakeClient{BusinessesRet: []models.Business{{ID: 1, Name: "Acme"}}}
	b := NewBusinessService(f)

	got, err := b.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].Name)
}
