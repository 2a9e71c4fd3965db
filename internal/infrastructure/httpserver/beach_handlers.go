package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/govargas/bada/internal/core/ports"
)

// listBeaches proxies the cached v1 feature listing.
func (s *Server) listBeaches(c echo.Context) error {
	data, err := s.beachSvc.ListBeaches(c.Request().Context())
	if err != nil {
		return s.upstreamOrInternal(c, err)
	}
	return c.JSONBlob(http.StatusOK, data)
}

// getBeach returns the merged detail view for one bathing site.
func (s *Server) getBeach(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "MissingId"})
	}

	detail, err := s.beachSvc.GetBeach(c.Request().Context(), id)
	if err != nil {
		return s.upstreamOrInternal(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// upstreamOrInternal maps a primary-source failure to a gateway-class
// response; anything else falls through to the outer error boundary.
func (s *Server) upstreamOrInternal(c echo.Context, err error) error {
	var ue *ports.UpstreamError
	if errors.As(err, &ue) {
		if s.logger != nil {
			s.logger.WithError(ue).Warn("primary upstream failure")
		}
		return c.JSON(http.StatusBadGateway, errorBody{Error: "UpstreamError"})
	}
	return err
}
