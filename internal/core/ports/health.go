package ports

import "context"

// HealthChecker probes one dependency. Check returns nil when the
// dependency is usable; the error message is reported verbatim in the
// health response.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
