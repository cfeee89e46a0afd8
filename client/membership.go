package client

import (
	"context"
	"io"
	"net/http"
)

// Login exchanges credentials for a bearer token. The token is returned to
// the caller; wiring it into the TokenSource is the session layer's job.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	req := map[string]string{"email": email, "password": password}
	var data struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", nil, req, &data); err != nil {
		return "", err
	}
	return data.Token, nil
}

// Register creates a new account. The server does not open a session on
// registration; the caller logs in separately.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/registration", nil, req, nil)
}

func (c *Client) GetProfile(ctx context.Context) (UserProfile, error) {
	var profile UserProfile
	err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &profile)
	return profile, err
}

func (c *Client) UpdateProfile(ctx context.Context, firstName, lastName string) (UserProfile, error) {
	req := map[string]string{"first_name": firstName, "last_name": lastName}
	var profile UserProfile
	err := c.do(ctx, http.MethodPut, "/profile/update", nil, req, &profile)
	return profile, err
}

// UpdateProfileImage uploads a new profile picture as multipart form data.
func (c *Client) UpdateProfileImage(ctx context.Context, filename string, file io.Reader) (UserProfile, error) {
	var profile UserProfile
	err := c.doMultipart(ctx, http.MethodPut, "/profile/image", filename, file, &profile)
	return profile, err
}
