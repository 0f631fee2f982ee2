package campus

import (
	"context"
	"net/http"

	"campusnavigator/internal/domain"
)

// AuthResult is the response of the login, register, and google-exchange
// endpoints: a bearer token plus the user it belongs to.
type AuthResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	var res AuthResult
	if err := c.doRaw(ctx, "", http.MethodPost, "/auth/login", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates an account and returns its first token.
func (c *Client) Register(ctx context.Context, data domain.RegisterData) (*AuthResult, error) {
	var res AuthResult
	if err := c.doRaw(ctx, "", http.MethodPost, "/auth/register", data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GoogleLogin exchanges a third-party identity token for a campus token.
// Identity confirmation itself happens entirely outside this gateway.
func (c *Client) GoogleLogin(ctx context.Context, idToken string) (*AuthResult, error) {
	body := struct {
		IDToken string `json:"idToken"`
	}{IDToken: idToken}
	var res AuthResult
	if err := c.doRaw(ctx, "", http.MethodPost, "/auth/google", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Me validates a token and returns the user it identifies.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var res struct {
		User domain.User `json:"user"`
	}
	if err := c.doRaw(ctx, token, http.MethodGet, "/auth/me", nil, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}
