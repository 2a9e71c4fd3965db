package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/govargas/bada/internal/core/ports"
	"github.com/govargas/bada/internal/infrastructure/httpserver/helpers"
)

type JWTMiddleware struct {
	authService ports.AuthService
	logger      *logrus.Logger
}

func NewJWTMiddleware(authService ports.AuthService, logger *logrus.Logger) *JWTMiddleware {
	return &JWTMiddleware{authService: authService, logger: logger}
}

// RequireJWT creates middleware that validates bearer tokens and sets the
// verified {sub, email} identity on the request context. Every failure mode
// is a uniform 401, raised before any favorites logic runs.
func (m *JWTMiddleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := helpers.GetJWTTokenFromContext(c)
			if err != nil {
				return err
			}

			claims, err := m.authService.ValidateToken(c.Request().Context(), tokenString)
			if err != nil {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"ip": c.RealIP(), "path": c.Request().URL.Path, "error": err.Error()}).Warn("JWT validation failed")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			helpers.SetUserID(c, userID)
			helpers.SetUserEmail(c, claims.Email)

			return next(c)
		}
	}
}
