// Package cli implements the interactive terminal front of the InvoTrack
// client: a prompt loop dispatching to the application services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/invotrack/invocli/internal/client/api"
	"github.com/invotrack/invocli/internal/client/config"
	"github.com/invotrack/invocli/internal/client/services"
	"github.com/invotrack/invocli/internal/client/session"
	"github.com/invotrack/invocli/internal/logging"
)

type App struct {
	config          *config.Config
	log             logging.Logger
	authService     services.AuthService
	userService     services.UserService
	businessService services.BusinessService
	invoiceService  services.InvoiceService

	reader    *bufio.Reader
	userEmail string

	// invoices holds the last query result so switching the displayed
	// direction never re-fetches; only a status change does.
	invoices  *services.QueryResult
	activeDir string
}

// NewApp wires the session store, API client and services from config.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	var store session.Store
	switch c.SessionPersistence {
	case config.PersistenceFile:
		fs, err := session.NewFileStore(c.SessionFilePath)
		if err != nil {
			return nil, fmt.Errorf("initializing session store: %w", err)
		}
		store = fs
	case config.PersistenceMemory:
		store = session.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown session persistence %q", c.SessionPersistence)
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, store, log)

	return &App{
		config:          c,
		log:             log,
		authService:     services.NewAuthService(apiClient, store),
		userService:     services.NewUserService(apiClient, store),
		businessService: services.NewBusinessService(apiClient),
		invoiceService:  services.NewInvoiceService(apiClient),
		reader:          bufio.NewReader(os.Stdin),
		activeDir:       "outgoing",
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.authService.Current()
	return ok
}
