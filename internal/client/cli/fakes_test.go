package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/invotrack/invocli/internal/client/models"
	"github.com/invotrack/invocli/internal/client/services"
	"github.com/invotrack/invocli/internal/client/session"
)

func stubInputs(t *testing.T, lines []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAuth struct {
	loginEmail string
	loginPass  []byte
	loginErr   error

	signupName  string
	signupEmail string
	signupPhone string
	signupErr   error

	googleURL string
	googleErr error

	logoutCalled bool
	logoutErr    error

	current   session.Session
	currentOK bool
}

func (f *fakeAuth) Login(_ context.Context, email string, pass []byte) error {
	f.loginEmail, f.loginPass = email, append([]byte(nil), pass...)
	return f.loginErr
}

func (f *fakeAuth) Signup(_ context.Context, name, email, phone string, _ []byte) error {
	f.signupName, f.signupEmail, f.signupPhone = name, email, phone
	return f.signupErr
}

func (f *fakeAuth) GoogleAuthURL(context.Context) (string, error) {
	return f.googleURL, f.googleErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeAuth) Current() (session.Session, bool) { return f.current, f.currentOK }

var _ services.AuthService = (*fakeAuth)(nil)

type fakeInvoices struct {
	queries []models.StatusFilter
	result  services.QueryResult
	err     error

	created   string
	createErr error
}

func (f *fakeInvoices) Query(_ context.Context, status models.StatusFilter) (services.QueryResult, error) {
	f.queries = append(f.queries, status)
	if f.err != nil {
		return services.QueryResult{Status: status}, f.err
	}
	r := f.result
	r.Status = status
	return r, nil
}

func (f *fakeInvoices) Create(_ context.Context, _ models.InvoiceDraft) (string, error) {
	return f.created, f.createErr
}

var _ services.InvoiceService = (*fakeInvoices)(nil)
