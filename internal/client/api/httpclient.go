package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/invotrack/invocli/internal/client/models"
	"github.com/invotrack/invocli/internal/client/session"
	"github.com/invotrack/invocli/internal/common"
	"github.com/invotrack/invocli/internal/logging"
)

const (
	pathLogin          = "/api/v1/user/login"
	pathSignup         = "/api/v1/user/signup"
	pathGoogleSignup   = "/api/v1/user/google_signup"
	pathRefresh        = "/api/v1/user/refresh"
	pathLogout         = "/api/v1/user/logout"
	pathProfile        = "/api/v1/user"
	pathProfileUpdate  = "/api/v1/user/update"
	pathProfileDelete  = "/api/v1/user/delete"
	pathBusinessesMine = "/api/v1/businesses/mine"
	pathBusinessReg    = "/api/v1/business/register"
	pathInvoices       = "/api/v1/invoices"
	pathInvoiceCreate  = "/api/v1/invoices/create"
)

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	store   session.Store
	log     logging.Logger

	// refreshMu serializes token refresh so concurrent requests that both
	// hit an expired token trigger one refresh, not two.
	refreshMu sync.Mutex
}

// NewHTTPClient builds a client talking to baseURL. The session store
// supplies the bearer token for authenticated calls and receives refreshed
// token pairs.
func NewHTTPClient(baseURL string, timeout time.Duration, store session.Store, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

// tokenResponse is the success shape of login, signup and refresh.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// errorResponse is the failure body shape: some endpoints use "error",
// others "message".
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func serverMessage(body []byte, fallback string) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil {
		if er.Error != "" {
			return er.Error
		}
		if er.Message != "" {
			return er.Message
		}
	}
	return fallback
}

// send issues one HTTP request and returns the response body and status.
// Transport failures map to ErrUnavailable.
func (c *HTTPClient) send(ctx context.Context, method, path string, payload any, token string) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading response: %w", err)
	}
	return data, resp.StatusCode, nil
}

// do runs a request with the error-mapping policy applied. Authenticated
// requests answered with 401 are replayed once after a refresh when a
// refresh token is held.
func (c *HTTPClient) do(ctx context.Context, method, path string, payload any, authed bool) ([]byte, error) {
	var sess session.Session
	if authed {
		s, ok := c.store.Get()
		if !ok {
			return nil, common.ErrNoSession
		}
		sess = s
	}

	data, status, err := c.send(ctx, method, path, payload, sess.AccessToken)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized && authed && sess.RefreshToken != "" {
		refreshed, rerr := c.refreshSession(ctx, sess)
		if rerr != nil {
			c.log.Debug(ctx, "token refresh failed", "error", rerr)
			return nil, ErrUnauthorized
		}
		data, status, err = c.send(ctx, method, path, payload, refreshed.AccessToken)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case status == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case status == http.StatusUnprocessableEntity:
		return nil, &ValidationError{Message: serverMessage(data, "please check your request")}
	case status >= 400:
		return nil, &APIError{StatusCode: status, Message: serverMessage(data, fmt.Sprintf("request failed with status %d", status))}
	}
	return data, nil
}

// refreshSession exchanges the refresh token for a new pair and persists it.
// If another request already refreshed while we waited for the lock, the
// newer session is reused instead.
func (c *HTTPClient) refreshSession(ctx context.Context, failed session.Session) (session.Session, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	cur, ok := c.store.Get()
	if !ok {
		return session.Session{}, common.ErrNoSession
	}
	if cur.AccessToken != failed.AccessToken {
		return cur, nil
	}

	payload := map[string]string{"refresh_token": cur.RefreshToken}
	data, status, err := c.send(ctx, http.MethodPost, pathRefresh, payload, "")
	if err != nil {
		return session.Session{}, err
	}
	if status != http.StatusOK {
		return session.Session{}, ErrUnauthorized
	}

	var tr tokenResponse
	if err := json.Unmarshal(data, &tr); err != nil || tr.AccessToken == "" {
		return session.Session{}, fmt.Errorf("unexpected refresh response")
	}

	next := session.Session{AccessToken: tr.AccessToken, RefreshToken: tr.RefreshToken}
	if next.RefreshToken == "" {
		next.RefreshToken = cur.RefreshToken
	}
	if err := c.store.Set(next); err != nil {
		return session.Session{}, err
	}
	c.log.Debug(ctx, "access token refreshed")
	return next, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (session.Session, error) {
	payload := map[string]string{"email": email, "password": password}

	data, err := c.do(ctx, http.MethodPost, pathLogin, payload, false)
	if err != nil {
		return session.Session{}, err
	}

	var tr tokenResponse
	if err := json.Unmarshal(data, &tr); err != nil {
		return session.Session{}, fmt.Errorf("decoding login response: %w", err)
	}
	if tr.AccessToken == "" {
		return session.Session{}, fmt.Errorf("login response missing access_token")
	}
	return session.Session{AccessToken: tr.AccessToken, RefreshToken: tr.RefreshToken}, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (session.Session, error) {
	data, err := c.do(ctx, http.MethodPost, pathSignup, req, false)
	if err != nil {
		return session.Session{}, err
	}

	var tr tokenResponse
	if err := json.Unmarshal(data, &tr); err != nil {
		return session.Session{}, fmt.Errorf("decoding signup response: %w", err)
	}
	if tr.AccessToken == "" {
		return session.Session{}, fmt.Errorf("signup response missing access_token")
	}
	return session.Session{AccessToken: tr.AccessToken, RefreshToken: tr.RefreshToken}, nil
}

func (c *HTTPClient) GoogleAuthURL(ctx context.Context) (string, error) {
	data, err := c.do(ctx, http.MethodGet, pathGoogleSignup, nil, false)
	if err != nil {
		return "", err
	}

	var resp struct {
		AuthorizationURL string `json:"authorization_url"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decoding google signup response: %w", err)
	}
	if resp.AuthorizationURL == "" {
		return "", fmt.Errorf("google signup response missing authorization_url")
	}
	return resp.AuthorizationURL, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, pathLogout, nil, true)
	return err
}

func (c *HTTPClient) GetProfile(ctx context.Context) (models.User, error) {
	data, err := c.do(ctx, http.MethodGet, pathProfile, nil, true)
	if err != nil {
		return models.User{}, err
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return models.User{}, fmt.Errorf("decoding profile: %w", err)
	}
	return u, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd ProfileUpdate) (models.User, error) {
	data, err := c.do(ctx, http.MethodPut, pathProfileUpdate, upd, true)
	if err != nil {
		return models.User{}, err
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return models.User{}, fmt.Errorf("decoding updated profile: %w", err)
	}
	return u, nil
}

func (c *HTTPClient) DeleteAccount(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, pathProfileDelete, nil, true)
	return err
}

func (c *HTTPClient) ListBusinesses(ctx context.Context) ([]models.Business, error) {
	data, err := c.do(ctx, http.MethodGet, pathBusinessesMine, nil, true)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Business](data, "business", "no businesses found")
}

func (c *HTTPClient) RegisterBusiness(ctx context.Context, req BusinessRequest) (models.Business, error) {
	data, err := c.do(ctx, http.MethodPost, pathBusinessReg, req, true)
	if err != nil {
		return models.Business{}, err
	}

	var b models.Business
	if err := json.Unmarshal(data, &b); err != nil {
		return models.Business{}, fmt.Errorf("decoding registered business: %w", err)
	}
	return b, nil
}

// invoicesPath composes the listing URL: the base endpoint for FilterAll,
// a /status/{value} suffix otherwise, with a /received segment for the
// received direction.
func invoicesPath(direction models.Direction, status models.StatusFilter) string {
	path := pathInvoices
	if direction == models.DirectionReceived {
		path += "/received"
	}
	if status != models.FilterAll {
		path += "/status/" + string(status)
	}
	return path
}

func (c *HTTPClient) ListInvoices(ctx context.Context, direction models.Direction, status models.StatusFilter) ([]models.Invoice, error) {
	data, err := c.do(ctx, http.MethodGet, invoicesPath(direction, status), nil, true)
	if err != nil {
		return nil, err
	}

	invoices, err := decodeList[models.Invoice](data, "invoices", "no invoices found")
	if err != nil {
		return nil, err
	}
	// Direction is not a field on the wire entity; it is determined by
	// which endpoint produced the invoice.
	for i := range invoices {
		invoices[i].Direction = direction
	}
	return invoices, nil
}

func (c *HTTPClient) CreateInvoice(ctx context.Context, draft models.InvoiceDraft) (string, error) {
	data, err := c.do(ctx, http.MethodPost, pathInvoiceCreate, draft, true)
	if err != nil {
		return "", err
	}

	var resp struct {
		InvoiceNumber string `json:"invoice_number"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decoding create invoice response: %w", err)
	}
	if resp.InvoiceNumber == "" {
		return "", fmt.Errorf("create invoice response missing invoice_number")
	}
	return resp.InvoiceNumber, nil
}

var _ Client = (*HTTPClient)(nil)
