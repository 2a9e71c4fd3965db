package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/govargas/bada/internal/core/ports"
	customMiddleware "github.com/govargas/bada/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
}

type ServerDeps struct {
	AuthService     ports.AuthService
	BeachService    ports.BeachService
	FavoriteService ports.FavoriteService
	HealthCheckers  []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	authSvc        ports.AuthService
	beachSvc       ports.BeachService
	favoriteSvc    ports.FavoriteService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		authSvc:        deps.AuthService,
		beachSvc:       deps.BeachService,
		favoriteSvc:    deps.FavoriteService,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.AuthService,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	e.HTTPErrorHandler = server.handleError

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// errorBody is the uniform error response shape.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// handleError is the outermost boundary: echo.HTTPErrors keep their status
// and get a stable code; everything else is logged with full detail and
// reported as an opaque internal failure. The underlying message leaks to
// the caller only outside production.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := ""
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		if jsonErr := c.JSON(he.Code, errorBody{Error: codeFor(he.Code), Message: msg}); jsonErr != nil && s.logger != nil {
			s.logger.WithError(jsonErr).Error("failed to write error response")
		}
		return
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"method": c.Request().Method, "path": c.Request().URL.Path}).WithError(err).Error("unhandled error")
	}

	body := errorBody{Error: "InternalServerError"}
	if s.config.Environment != "production" {
		body.Message = err.Error()
	}
	if jsonErr := c.JSON(http.StatusInternalServerError, body); jsonErr != nil && s.logger != nil {
		s.logger.WithError(jsonErr).Error("failed to write error response")
	}
}

func codeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "InvalidBody"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "NotFound"
	case http.StatusConflict:
		return "Conflict"
	case http.StatusBadGateway:
		return "UpstreamError"
	default:
		return "InternalServerError"
	}
}
