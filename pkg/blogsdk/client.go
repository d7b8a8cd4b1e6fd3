package blogsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the blog API without credentials and starts sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account and returns a session for it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var out Response[AuthData]
	if err := c.call(ctx, http.MethodPost, "/auth/register", req, nil, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return newSession(c, out.Data), nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out Response[AuthData]
	req := LoginRequest{Email: email, Password: password}
	if err := c.call(ctx, http.MethodPost, "/auth/login", req, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, out.Data), nil
}

// Bootstrap creates the first admin account. It only succeeds once, on an
// empty database, and only with the server's bootstrap token.
func (c *Client) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*User, error) {
	var out Response[User]
	headers := map[string]string{"X-Bootstrap-Token": token}
	if err := c.call(ctx, http.MethodPost, "/auth/bootstrap", req, headers, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// NewSessionFromToken wraps a token obtained elsewhere. The user summary is
// left empty.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}
