package api

import (
	"context"
	"net/http"

	"parceldash/internal/domain"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the login/refresh response body.
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// LoginAdmin authenticates an admin and returns the token plus profile.
func (c *Client) LoginAdmin(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login/admin", "", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the token server-side.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil, nil)
}

// RefreshToken exchanges the current token for a fresh one.
func (c *Client) RefreshToken(ctx context.Context, token string) (string, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", token, nil, nil, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context, token string) (*domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
