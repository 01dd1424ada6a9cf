package apiclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

func TestAuthenticate(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"token": "abc"})
	})
	c := newClient(t, ts.URL)

	tok, err := c.Authenticate(context.Background(), Credentials{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	req := ts.requests()[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/auth/authenticate", req.Path)
	assert.Equal(t, map[string]any{"username": "alice", "password": "secret123"}, req.Body)
}

func TestAuthenticateRejected(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	c := newClient(t, ts.URL)
	_, err := c.Authenticate(context.Background(), Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, types.ErrRemote)
	assert.Contains(t, err.Error(), "login or password are incorrect")
}

func TestRegisterAdmin(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantToken   string
		wantPending bool
		wantErr     error
	}{
		{"approved immediately", http.StatusOK, "adm", false, nil},
		{"pending approval", http.StatusAccepted, "", true, nil},
		{"name taken", http.StatusConflict, "", false, types.ErrRemote},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.status == http.StatusOK {
					writeJSON(w, tt.status, map[string]string{"token": "adm"})
					return
				}
				w.WriteHeader(tt.status)
			})
			c := newClient(t, ts.URL)
			tok, pending, err := c.RegisterAdmin(context.Background(), Credentials{Username: "root", Password: "password1"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, tok)
			assert.Equal(t, tt.wantPending, pending)
			assert.Equal(t, "/auth/register/admin", ts.requests()[0].Path)
		})
	}
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"token": "new"})
	})
	c := newClient(t, ts.URL)
	tok, err := c.Register(context.Background(), Credentials{Username: "bob", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "new", tok)
	assert.Equal(t, "/auth/register", ts.requests()[0].Path)
}

func TestCheckAdmin(t *testing.T) {
	for _, tt := range []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{http.StatusForbidden, false},
	} {
		ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})
		c := newClient(t, ts.URL, WithTokenSource(StaticToken("t")))
		got, err := c.CheckAdmin(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestCheckToken(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()
	assert.NoError(t, newClient(t, ts.URL, WithTokenSource(StaticToken("good"))).CheckToken(ctx))
	assert.ErrorIs(t, newClient(t, ts.URL, WithTokenSource(StaticToken("bad"))).CheckToken(ctx), types.ErrRemote)
}

func TestGetAndUpdateUser(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, map[string]any{"id": 12, "username": "alice"})
		case http.MethodPut:
			writeJSON(w, http.StatusOK, map[string]string{"token": "renamed"})
		}
	})
	c := newClient(t, ts.URL, WithTokenSource(StaticToken("t")))
	ctx := context.Background()

	u, err := c.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, User{ID: 12, Username: "alice"}, u)

	tok, err := c.UpdateUser(ctx, Credentials{Username: "alicia", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", tok)

	reqs := ts.requests()
	assert.Equal(t, "/auth/user", reqs[1].Path)
	assert.Equal(t, "alicia", reqs[1].Body["username"])
}

func TestAcceptAdminRequest(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	c := newClient(t, ts.URL)
	require.NoError(t, c.AcceptAdminRequest(context.Background(), 9))
	req := ts.requests()[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/auth/register/accept/9", req.Path)
}
