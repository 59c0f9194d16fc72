// Package authclient is a Go client for the erpauth HTTP API.
//
// It keeps the session obtained at login in a TokenStore and attaches the
// bearer token to the calls that need it.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"erpauth/internal/errors"
)

const defaultTimeout = 10 * time.Second

// Client talks to one erpauth deployment.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      TokenStore
	now        func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTokenStore sets where the session is persisted. The default is a MemoryTokenStore.
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithClock overrides the time source used for the local expiry check.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New creates a Client for baseURL, e.g. "http://localhost:5000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		store:      NewMemoryTokenStore(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var out userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, "", &out); err != nil {
		return nil, err
	}

	return &out.User, nil
}

// Login authenticates and persists the returned session.
func (c *Client) Login(ctx context.Context, identifier, password string) (*Session, error) {
	body := map[string]string{"identifier": identifier, "password": password}

	var out loginEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, "", &out); err != nil {
		return nil, err
	}

	session := &Session{Token: out.Token, ExpiresAt: out.ExpiresAt, User: out.User}
	if err := c.store.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// VerifyToken checks the stored token with the service and refreshes the stored user.
// A rejected token clears the store.
func (c *Client) VerifyToken(ctx context.Context) (*User, error) {
	session, err := c.session(ctx)
	if err != nil {
		return nil, err
	}

	var out userEnvelope
	err = c.do(ctx, http.MethodPost, "/api/auth/verify-token", map[string]string{"token": session.Token}, "", &out)
	if err != nil {
		if _, rejected := errors.AsType[*APIError](err); rejected {
			if clearErr := c.store.Clear(ctx); clearErr != nil {
				return nil, errors.Join(err, clearErr)
			}
		}

		return nil, err
	}

	session.User = out.User
	if err := c.store.Save(ctx, session); err != nil {
		return nil, err
	}

	return &out.User, nil
}

// Profile fetches the full profile of the logged-in account.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	session, err := c.session(ctx)
	if err != nil {
		return nil, err
	}

	var out profileEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, session.Token, &out); err != nil {
		return nil, err
	}

	return &out.User, nil
}

// Logout forgets the stored session. Tokens are stateless, so the service is not called.
func (c *Client) Logout(ctx context.Context) error {
	return c.store.Clear(ctx)
}

// IsLoggedIn reports whether a session is stored and its token has not expired locally.
func (c *Client) IsLoggedIn(ctx context.Context) bool {
	_, err := c.session(ctx)

	return err == nil
}

// CurrentUser returns the user saved with the session.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	session, err := c.session(ctx)
	if err != nil {
		return nil, err
	}

	return &session.User, nil
}

// HasRole reports whether the stored user has role.
func (c *Client) HasRole(ctx context.Context, role string) bool {
	user, err := c.CurrentUser(ctx)

	return err == nil && user.Role == role
}

func (c *Client) IsAdmin(ctx context.Context) bool   { return c.HasRole(ctx, RoleAdmin) }
func (c *Client) IsFaculty(ctx context.Context) bool { return c.HasRole(ctx, RoleFaculty) }
func (c *Client) IsStudent(ctx context.Context) bool { return c.HasRole(ctx, RoleStudent) }

// CheckHealth calls the health endpoint. A 503 still returns the decoded body along with the error.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	var out Health
	err := c.do(ctx, http.MethodGet, "/api/health", nil, "", &out)

	return &out, err
}

func (c *Client) session(ctx context.Context) (*Session, error) {
	session, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Token == "" || session.Expired(c.now()) {
		return nil, ErrNotLoggedIn
	}

	return session, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, token string, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var env envelope
		if json.Unmarshal(raw, &env) != nil {
			return newAPIError(resp.StatusCode, nil)
		}
		if out != nil {
			// Best effort: some failures (health) carry a full body.
			_ = json.Unmarshal(raw, out)
		}

		return newAPIError(resp.StatusCode, &env)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}
