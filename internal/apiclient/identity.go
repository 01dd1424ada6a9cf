package apiclient

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// Credentials is the login and registration body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the account behind the current token.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Authenticate exchanges credentials for a bearer token.
func (c *Client) Authenticate(ctx context.Context, cred Credentials) (string, error) {
	var out tokenResponse
	_, err := c.do(ctx, call{
		op:       "authenticate",
		method:   http.MethodPost,
		path:     "/auth/authenticate",
		body:     cred,
		out:      &out,
		fallback: "Fail to request token, maybe login or password are incorrect",
	})
	return out.Token, err
}

// Register creates a regular account and returns its token.
func (c *Client) Register(ctx context.Context, cred Credentials) (string, error) {
	var out tokenResponse
	_, err := c.do(ctx, call{
		op:       "register",
		method:   http.MethodPost,
		path:     "/auth/register",
		body:     cred,
		out:      &out,
		fallback: "Login already in use",
	})
	return out.Token, err
}

// RegisterAdmin asks for an admin account. When an administrator must
// approve the request first the server answers 202, pending is true and no
// token is issued.
func (c *Client) RegisterAdmin(ctx context.Context, cred Credentials) (token string, pending bool, err error) {
	var out tokenResponse
	status, err := c.do(ctx, call{
		op:       "register admin",
		method:   http.MethodPost,
		path:     "/auth/register/admin",
		body:     cred,
		out:      &out,
		accept:   []int{http.StatusOK, http.StatusAccepted},
		fallback: "Login already in use",
	})
	if err != nil {
		return "", false, err
	}
	if status == http.StatusAccepted {
		return "", true, nil
	}
	return out.Token, false, nil
}

// CheckToken verifies that the current token is still valid.
func (c *Client) CheckToken(ctx context.Context) error {
	_, err := c.do(ctx, call{
		op:       "check token",
		method:   http.MethodPost,
		path:     "/auth/checkToken",
		fallback: "Token is invalid or expired",
	})
	return err
}

// CheckAdmin reports whether the current token carries admin rights. Any
// rejection means no.
func (c *Client) CheckAdmin(ctx context.Context) (bool, error) {
	_, err := c.do(ctx, call{
		op:       "check admin",
		method:   http.MethodPost,
		path:     "/auth/checkAdmin",
		fallback: "Not an administrator",
	})
	if errors.Is(err, types.ErrRemote) {
		return false, nil
	}
	return err == nil, err
}

// GetUser returns the account behind the current token.
func (c *Client) GetUser(ctx context.Context) (User, error) {
	var u User
	_, err := c.do(ctx, call{
		op:       "get user",
		method:   http.MethodGet,
		path:     "/auth/user",
		out:      &u,
		fallback: "Failed to fetch user data",
	})
	return u, err
}

// UpdateUser changes the username and password. The server issues a new
// token for the renamed account.
func (c *Client) UpdateUser(ctx context.Context, cred Credentials) (string, error) {
	var out tokenResponse
	_, err := c.do(ctx, call{
		op:       "update user",
		method:   http.MethodPut,
		path:     "/auth/user",
		body:     cred,
		out:      &out,
		fallback: "User with this name already exists",
	})
	return out.Token, err
}

// ListAdminRequests returns pending and reviewed admin registrations.
func (c *Client) ListAdminRequests(ctx context.Context) ([]types.Record, error) {
	var out []types.Record
	_, err := c.do(ctx, call{
		op:       "list requests",
		method:   http.MethodGet,
		path:     "/auth/register/accept",
		out:      &out,
		fallback: "Unable to get requests",
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AcceptAdminRequest approves the admin registration with the given id.
func (c *Client) AcceptAdminRequest(ctx context.Context, id int64) error {
	_, err := c.do(ctx, call{
		op:       "accept request",
		method:   http.MethodPost,
		path:     "/auth/register/accept/" + strconv.FormatInt(id, 10),
		fallback: "Error accepting request",
	})
	return err
}
