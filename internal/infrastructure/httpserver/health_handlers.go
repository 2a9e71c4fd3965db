package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const healthProbeTimeout = 2 * time.Second

type healthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// healthCheck probes every registered dependency. Any failing probe turns
// the overall status degraded with a 503, which is what load balancers key
// on; the per-dependency detail is for humans reading the body.
func (s *Server) healthCheck(c echo.Context) error {
	resp := healthResponse{
		Status:  "ok",
		Service: "bada-backend",
	}
	if len(s.healthCheckers) > 0 {
		resp.Checks = make(map[string]string, len(s.healthCheckers))
	}

	status := http.StatusOK
	for _, checker := range s.healthCheckers {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthProbeTimeout)
		err := checker.Check(ctx)
		cancel()

		if err != nil {
			resp.Checks[checker.Name()] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[checker.Name()] = "ok"
	}

	return c.JSON(status, resp)
}
