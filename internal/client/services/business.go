package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/invotrack/invocli/internal/client/api"
	"github.com/invotrack/invocli/internal/client/models"
)

// BusinessService registers and lists the user's businesses.
type BusinessService interface {
	// Register validates the three fields locally; any failure returns
	// FieldErrors with per-field messages and no network call is made.
	// onSuccess, when non-nil, runs after the server accepts the
	// registration (callers use it to refresh their listing).
	Register(ctx context.Context, name, email, phone string, onSuccess func()) (models.Business, error)
	List(ctx context.Context) ([]models.Business, error)
}

type businessService struct {
	client api.Client
}

func NewBusinessService(client api.Client) BusinessService {
	return &businessService{client: client}
}

func (b *businessService) Register(ctx context.Context, name, email, phone string, onSuccess func()) (models.Business, error) {
	errs := FieldErrors{}
	if strings.TrimSpace(name) == "" {
		errs["name"] = "business name is required"
	}
	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "email is required"
	case !validEmail(email):
		errs["email"] = "invalid email format"
	}
	switch {
	case strings.TrimSpace(phone) == "":
		errs["phone_number"] = "phone number is required"
	case !validPhone(phone):
		errs["phone_number"] = "phone number must be 10 digits"
	}
	if len(errs) > 0 {
		return models.Business{}, errs
	}

	req := api.BusinessRequest{Name: name, Email: email, PhoneNumber: phone}
	created, err := b.client.RegisterBusiness(ctx, req)
	if err != nil {
		// Server-side failures surface as a single top-level error,
		// not per-field messages.
		return models.Business{}, fmt.Errorf("registering business: %w", err)
	}
	if onSuccess != nil {
		onSuccess()
	}
	return created, nil
}

func (b *businessService) List(ctx context.Context) ([]models.Business, error) {
	businesses, err := b.client.ListBusinesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing businesses: %w", err)
	}
	return businesses, nil
}
