package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/govargas/bada/internal/core/domain/auth"
	"github.com/govargas/bada/internal/core/domain/user"
	"github.com/govargas/bada/internal/infrastructure/httpserver"
	"github.com/govargas/bada/test/mocks"
)

func TestRegister_Created(t *testing.T) {
	var got *user.Credentials
	srv := newTestServer(httpserver.ServerDeps{
		AuthService: &mocks.AuthServiceMock{
			RegisterFn: func(ctx context.Context, creds *user.Credentials) error {
				got = creds
				return nil
			},
		},
	})

	rec := doRequest(srv, http.MethodPost, "/api/auth/register", "", `{"email":"swimmer@example.com","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
	require.NotNil(t, got)
	require.Equal(t, "swimmer@example.com", got.Email)
}

func TestRegister_TakenEmailIsConflict(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{
		AuthService: &mocks.AuthServiceMock{
			RegisterFn: func(ctx context.Context, creds *user.Credentials) error {
				return user.ErrEmailInUse
			},
		},
	})

	rec := doRequest(srv, http.MethodPost, "/api/auth/register", "", `{"email":"taken@example.com","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.JSONEq(t, `{"error":"EmailInUse"}`, rec.Body.String())
}

func TestRegister_ShortPasswordIsInvalidBody(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{})

	rec := doRequest(srv, http.MethodPost, "/api/auth/register", "", `{"email":"swimmer@example.com","password":"short"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "InvalidBody", body.Error)
	require.Contains(t, body.Details, "password")
}

func TestLogin_ReturnsToken(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{
		AuthService: &mocks.AuthServiceMock{
			LoginFn: func(ctx context.Context, creds *user.Credentials) (*auth.Token, error) {
				return &auth.Token{Token: "signed.jwt.token"}, nil
			},
		},
	})

	rec := doRequest(srv, http.MethodPost, "/api/auth/login", "", `{"email":"swimmer@example.com","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"token":"signed.jwt.token"}`, rec.Body.String())
}

func TestLogin_BadCredentialsAreUnauthorized(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{
		AuthService: &mocks.AuthServiceMock{
			LoginFn: func(ctx context.Context, creds *user.Credentials) (*auth.Token, error) {
				return nil, user.ErrInvalidCredentials
			},
		},
	})

	rec := doRequest(srv, http.MethodPost, "/api/auth/login", "", `{"email":"nobody@example.com","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"InvalidCredentials"}`, rec.Body.String())
}

func TestMe_EchoesVerifiedIdentity(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{})

	rec := doRequest(srv, http.MethodGet, "/api/auth/me", validToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		User struct {
			Sub   string `json:"sub"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, testUserID.String(), body.User.Sub)
	require.Equal(t, "swimmer@example.com", body.User.Email)
}

func TestMe_RejectsMissingToken(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{})

	rec := doRequest(srv, http.MethodGet, "/api/auth/me", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
