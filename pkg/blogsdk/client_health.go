package blogsdk

import (
	"context"
	"net/http"
)

// GetHealth calls the legacy /health endpoint.
func (c *Client) GetHealth(ctx context.Context) (*StatusResponse, error) {
	var status StatusResponse
	if err := c.call(ctx, http.MethodGet, "/health", nil, nil, &status, http.StatusOK); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", nil, nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", nil, nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetJWKS retrieves the public keys for token verification.
func (c *Client) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	var jwks JWKSResponse
	if err := c.call(ctx, http.MethodGet, "/.well-known/jwks.json", nil, nil, &jwks, http.StatusOK); err != nil {
		return nil, err
	}
	return &jwks, nil
}
