package httpserver

import (
	"context"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Start blocks serving requests until Shutdown is called or the listener
// fails. TLS is used only when both cert and key are configured; the beach
// API normally sits behind a terminating proxy, so plain HTTP is the norm.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.config.Host, s.config.Port)

	for _, srv := range []*http.Server{s.echo.Server, s.echo.TLSServer} {
		srv.ReadTimeout = s.config.ReadTimeout
		srv.WriteTimeout = s.config.WriteTimeout
		srv.IdleTimeout = s.config.IdleTimeout
	}

	if s.config.TLSCertFile != "" && s.config.TLSKeyFile != "" {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"addr": addr}).Info("serving HTTPS")
		}
		return s.echo.StartTLS(addr, s.config.TLSCertFile, s.config.TLSKeyFile)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"addr": addr}).Info("serving HTTP")
	}
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying router, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
