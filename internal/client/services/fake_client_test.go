package services

import (
	"context"
	"sync"

	"github.com/invotrack/invocli/internal/client/api"
	"github.com/invotrack/invocli/internal/client/models"
	"github.com/invotrack/invocli/internal/client/session"
)

// fakeClient implements api.Client for unit tests. Call counters make it
// easy to assert that validation failures never reach the network.
type fakeClient struct {
	mu sync.Mutex

	LoginSess session.Session
	LoginErr  error
	LoginN    int
	LastLogin struct{ Email, Password string }

	SignupSess session.Session
	SignupErr  error
	SignupN    int
	LastSignup api.SignupRequest

	GoogleURL string
	GoogleErr error

	LogoutErr error
	LogoutN   int

	ProfileRet models.User
	ProfileErr error

	UpdateRet models.User
	UpdateErr error
	LastUpd   api.ProfileUpdate

	DeleteErr error
	DeleteN   int

	BusinessesRet []models.Business
	BusinessesErr error

	RegisterRet  models.Business
	RegisterErr  error
	RegisterN    int
	LastRegister api.BusinessRequest

	InvoicesByDir map[models.Direction][]models.Invoice
	InvoicesErr   error
	ListN         int
	LastStatuses  []models.StatusFilter

	CreateRet string
	CreateErr error
	CreateN   int
	LastDraft models.InvoiceDraft
}

func (f *fakeClient) Login(_ context.Context, email, password string) (session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginN++
	f.LastLogin.Email, f.LastLogin.Password = email, password
	return f.LoginSess, f.LoginErr
}

func (f *fakeClient) Signup(_ context.Context, req api.SignupRequest) (session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignupN++
	f.LastSignup = req
	return f.SignupSess, f.SignupErr
}

func (f *fakeClient) GoogleAuthURL(context.Context) (string, error) {
	return f.GoogleURL, f.GoogleErr
}

func (f *fakeClient) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LogoutN++
	return f.LogoutErr
}

func (f *fakeClient) GetProfile(context.Context) (models.User, error) {
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(_ context.Context, upd api.ProfileUpdate) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastUpd = upd
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteAccount(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteN++
	return f.DeleteErr
}

func (f *fakeClient) ListBusinesses(context.Context) ([]models.Business, error) {
	return f.BusinessesRet, f.BusinessesErr
}

func (f *fakeClient) RegisterBusiness(_ context.Context, req api.BusinessRequest) (models.Business, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RegisterN++
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) ListInvoices(_ context.Context, direction models.Direction, status models.StatusFilter) ([]models.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListN++
	f.LastStatuses = append(f.LastStatuses, status)
	if f.InvoicesErr != nil {
		return nil, f.InvoicesErr
	}
	return f.InvoicesByDir[direction], nil
}

func (f *fakeClient) CreateInvoice(_ context.Context, draft models.InvoiceDraft) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateN++
	f.LastDraft = draft
	return f.CreateRet, f.CreateErr
}

var _ api.Client = (*fakeClient)(nil)

// countingStore wraps a session store and counts writes.
type countingStore struct {
	session.Store
	SetN   int
	ClearN int
}

func (c *countingStore) Set(s session.Session) error {
	c.SetN++
	return c.Store.Set(s)
}

func (c *countingStore) Clear() error {
	c.ClearN++
	return c.Store.Clear()
}
