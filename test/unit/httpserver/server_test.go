package httpserver_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/govargas/bada/internal/core/domain/auth"
	"github.com/govargas/bada/internal/infrastructure/httpserver"
	"github.com/govargas/bada/test/mocks"
)

const validToken = "valid-token"

var testUserID = uuid.MustParse("11111111-2222-3333-4444-555555555555")

// newTestServer wires a server around the given mocks. Unless overridden,
// the auth mock accepts validToken and rejects everything else, so handler
// tests can exercise the protected surface without real signing.
func newTestServer(deps httpserver.ServerDeps) *httpserver.Server {
	if deps.AuthService == nil {
		deps.AuthService = &mocks.AuthServiceMock{
			ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
				if tokenString != validToken {
					return nil, jwt.ErrTokenMalformed
				}
				return &auth.Claims{
					Email: "swimmer@example.com",
					RegisteredClaims: jwt.RegisteredClaims{
						Subject: testUserID.String(),
					},
				}, nil
			},
		}
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return httpserver.NewServer(&httpserver.ServerConfig{
		Host:        "127.0.0.1",
		Port:        "0",
		Environment: "test",
	}, logger, deps)
}

func doRequest(srv *httpserver.Server, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}
