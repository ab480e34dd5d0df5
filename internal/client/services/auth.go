// Package services contains application services for the InvoTrack CLI:
// authentication, profile, business and invoice operations built on the API
// client and the session store.
package services

import (
	"context"
	"fmt"

	"github.com/invotrack/invocli/internal/client/api"
	"github.com/invotrack/invocli/internal/client/session"
)

// AuthService defines the authentication flow for the CLI.
//
// Contract:
//   - Login: authenticate and persist the issued token pair.
//   - Signup: validate locally first; invalid input never reaches the
//     network. On success the account is logged in immediately.
//   - GoogleAuthURL: fetch the OAuth authorization URL for the user to open.
//   - Logout: tell the server, then clear the local session regardless.
//   - Current: the stored session, if any.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Signup(ctx context.Context, name, email, phone string, password []byte) error
	GoogleAuthURL(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	Current() (session.Session, bool)
}

type authService struct {
	client api.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	sess, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if err := a.store.Set(sess); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (a *authService) Signup(ctx context.Context, name, email, phone string, password []byte) error {
	errs := FieldErrors{}
	if msg := validatePassword(password); msg != "" {
		errs["password"] = msg
	}
	if !validPhone(phone) {
		errs["phone_number"] = "phone number must be 10 digits"
	}
	if len(errs) > 0 {
		return errs
	}

	req := api.SignupRequest{
		Name:        name,
		Email:       email,
		PhoneNumber: phone,
		Password:    string(password),
	}
	sess, err := a.client.Signup(ctx, req)
	if err != nil {
		return fmt.Errorf("signup error: %w", err)
	}
	if err := a.store.Set(sess); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (a *authService) GoogleAuthURL(ctx context.Context) (string, error) {
	return a.client.GoogleAuthURL(ctx)
}

// Logout notifies the server on a best-effort basis; the local session is
// cleared even when the call fails, so the user is never stuck logged in.
func (a *authService) Logout(ctx context.Context) error {
	apiErr := a.client.Logout(ctx)
	if err := a.store.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return apiErr
}

func (a *authService) Current() (session.Session, bool) {
	return a.store.Get()
}
