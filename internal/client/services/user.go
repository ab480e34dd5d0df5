package services

import (
	"context"
	"fmt"

	"github.com/invotrack/invocli/internal/client/api"
	"github.com/invotrack/invocli/internal/client/models"
	"github.com/invotrack/invocli/internal/client/session"
)

// UserService exposes profile operations.
type UserService interface {
	Get(ctx context.Context) (models.User, error)
	Update(ctx context.Context, name, email string) (models.User, error)
	Delete(ctx context.Context) error
}

type userService struct {
	client api.Client
	store  session.Store
}

func NewUserService(client api.Client, store session.Store) UserService {
	return &userService{client: client, store: store}
}

func (u *userService) Get(ctx context.Context) (models.User, error) {
	user, err := u.client.GetProfile(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("loading profile: %w", err)
	}
	return user, nil
}

func (u *userService) Update(ctx context.Context, name, email string) (models.User, error) {
	if !validEmail(email) {
		return models.User{}, FieldErrors{"email": "invalid email format"}
	}
	user, err := u.client.UpdateProfile(ctx, api.ProfileUpdate{Name: name, Email: email})
	if err != nil {
		return models.User{}, fmt.Errorf("updating profile: %w", err)
	}
	return user, nil
}

// Delete removes the account and destroys the local session: a deleted
// account has nothing left to be logged into.
func (u *userService) Delete(ctx context.Context) error {
	if err := u.client.DeleteAccount(ctx); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	if err := u.store.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
