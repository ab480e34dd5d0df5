// Package api implements the REST client for the InvoTrack API.
//
// All calls are plain JSON over HTTP. Authenticated calls carry the bearer
// token from the session store; a 401 answered while a refresh token is held
// triggers one transparent refresh-and-replay. Errors are mapped to sentinel
// values so callers can branch with errors.Is.
package api

import (
	"context"

	"github.com/invotrack/invocli/internal/client/models"
	"github.com/invotrack/invocli/internal/client/session"
)

// SignupRequest is the payload for creating an account.
type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// BusinessRequest is the payload for registering a business.
type BusinessRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// ProfileUpdate is the payload for updating the account profile.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Client is the outbound surface of the InvoTrack API as this client
// assumes it. The server remains the source of truth for all business
// rules.
type Client interface {
	Login(ctx context.Context, email, password string) (session.Session, error)
	Signup(ctx context.Context, req SignupRequest) (session.Session, error)
	GoogleAuthURL(ctx context.Context) (string, error)
	Logout(ctx context.Context) error

	GetProfile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (models.User, error)
	DeleteAccount(ctx context.Context) error

	ListBusinesses(ctx context.Context) ([]models.Business, error)
	RegisterBusiness(ctx context.Context, req BusinessRequest) (models.Business, error)

	ListInvoices(ctx context.Context, direction models.Direction, status models.StatusFilter) ([]models.Invoice, error)
	CreateInvoice(ctx context.Context, draft models.InvoiceDraft) (string, error)
}
