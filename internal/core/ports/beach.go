package ports

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/govargas/bada/internal/core/domain/beach"
)

// UpstreamError reports a non-2xx response from a bathing-water API.
// The HTTP boundary maps it to a gateway-class failure; it is never
// silently substituted with stale cache data.
type UpstreamError struct {
	Source string
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s upstream unreachable: %s", e.Source, e.Body)
	}
	return fmt.Sprintf("%s upstream error: status %d: %s", e.Source, e.Status, e.Body)
}

// BathingWaterClient talks to the two upstream sources: the v1
// catalog/detail API and the v2 monitoring-results API. The two have
// independent uptime and versioning, so their failure domains stay apart.
type BathingWaterClient interface {
	// ListBathingWaters fetches the full v1 listing as raw JSON.
	ListBathingWaters(ctx context.Context) (json.RawMessage, error)
	// GetBathingWater fetches the v1 detail payload for one site as raw JSON.
	GetBathingWater(ctx context.Context, id string) (json.RawMessage, error)
	// GetMonitoringResults fetches the v2 results for one site.
	GetMonitoringResults(ctx context.Context, id string) ([]beach.MonitoringResult, error)
}

// BeachService is the upstream aggregator consumed by the HTTP layer.
type BeachService interface {
	// ListBeaches returns the cached-or-fetched v1 listing payload.
	ListBeaches(ctx context.Context) (json.RawMessage, error)
	// GetBeach returns the merged detail view. The primary detail is
	// mandatory; the latestSampleDate enrichment is best-effort.
	GetBeach(ctx context.Context, id string) (*beach.Detail, error)
}
