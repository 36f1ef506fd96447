package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cinemaseat-cli/model"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token pair and stores it. The
// token endpoint is called without a bearer header and without the
// refresh-and-retry path; bad credentials come back as the API error.
func (c *Client) Login(ctx context.Context, username string, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return errors.New("username and password are required")
	}

	res, err := c.send(ctx, http.MethodPost, "/api/auth/token/", loginRequest{Username: username, Password: password}, "")
	if err != nil {
		return err
	}
	var pair model.TokenPair
	if err := readResponse(res, "/api/auth/token/", &pair); err != nil {
		return err
	}
	return c.tokens.SetPair(strings.TrimSpace(pair.Access), strings.TrimSpace(pair.Refresh))
}

// Logout drops the stored credentials.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// LoggedIn reports whether an access token is stored locally. The
// token is not validated against the server here; a stale one simply
// fails on the next authenticated call.
func (c *Client) LoggedIn() bool {
	return c.tokens.Access() != ""
}

// Me fetches the current identity. Any failure means "not logged in"
// as far as the caller is concerned.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/api/users/me/", nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// TokenExpiry peeks at the stored access token's exp claim without
// verifying the signature. Display only; expiry is still discovered
// the hard way, through a 401.
func (c *Client) TokenExpiry() (time.Time, bool) {
	access := c.tokens.Access()
	if access == "" {
		return time.Time{}, false
	}
	token, _, err := jwt.NewParser().ParseUnverified(access, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
