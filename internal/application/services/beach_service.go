package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/govargas/bada/internal/core/domain/beach"
	"github.com/govargas/bada/internal/core/ports"
)

const listCacheKey = "hav:v1:/feature/?format=json"

func detailCacheKey(id string) string {
	return "hav:v1:/detail/" + id
}

// BeachService aggregates the two upstream bathing-water sources. The v1
// catalog is mandatory; the v2 monitoring results only feed the best-effort
// latestSampleDate enrichment and must never take down the primary response.
// Cache fills are coalesced per key so concurrent misses share one fetch.
type BeachService struct {
	client    ports.BathingWaterClient
	cache     ports.Cache
	listTTL   time.Duration
	detailTTL time.Duration
	sf        singleflight.Group
	logger    *logrus.Logger
}

func NewBeachService(client ports.BathingWaterClient, cache ports.Cache, listTTL, detailTTL time.Duration, logger *logrus.Logger) ports.BeachService {
	return &BeachService{
		client:    client,
		cache:     cache,
		listTTL:   listTTL,
		detailTTL: detailTTL,
		logger:    logger,
	}
}

// ListBeaches returns the full v1 listing, cached under a fixed key.
// An upstream failure is propagated, not retried, and never papered over
// with stale cache data.
func (s *BeachService) ListBeaches(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.fetchCached(ctx, listCacheKey, s.listTTL, func(fetchCtx context.Context) (json.RawMessage, error) {
		return s.client.ListBathingWaters(fetchCtx)
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// GetBeach returns the merged detail view for one site. Step one, the
// mandatory v1 detail; step two, the latestSampleDate enrichment, which
// degrades to null on any secondary failure.
func (s *BeachService) GetBeach(ctx context.Context, id string) (*beach.Detail, error) {
	raw, err := s.fetchCached(ctx, detailCacheKey(id), s.detailTTL, func(fetchCtx context.Context) (json.RawMessage, error) {
		return s.client.GetBathingWater(fetchCtx, id)
	})
	if err != nil {
		return nil, err
	}

	var detail beach.Detail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode detail payload: %w", err)
	}
	if detail.NutsCode == "" {
		detail.NutsCode = id
	}

	detail.LatestSampleDate = s.latestSampleDate(ctx, id, detail.SampleDate)

	return &detail, nil
}

// latestSampleDate resolves the enrichment field. The secondary source is
// consulted only when the v1 payload embeds no sample timestamp, and any
// failure there is logged and swallowed: the diagnostic stays server-side,
// the caller just sees null.
func (s *BeachService) latestSampleDate(ctx context.Context, id string, sampleDateMs *int64) *string {
	if sampleDateMs != nil {
		return beach.LatestSampleDate(sampleDateMs, nil)
	}

	results, err := s.client.GetMonitoringResults(ctx, id)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"beach_id": id}).WithError(err).Warn("sample-date enrichment failed, returning null")
		}
		return nil
	}

	return beach.LatestSampleDate(nil, results)
}

// fetchCached consults the cache, then coalesces concurrent misses for the
// same key into a single upstream call. Only a successful fetch is cached.
func (s *BeachService) fetchCached(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) (json.RawMessage, error)) (json.RawMessage, error) {
	if cached, ok := s.cacheGet(ctx, key); ok {
		return cached, nil
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		// The flight is shared: other callers with live contexts may be
		// waiting on it, so the fetch must survive the starting caller's
		// disconnect. The HTTP client's own timeout still bounds it.
		flightCtx := context.WithoutCancel(ctx)

		// Re-check inside the flight: a concurrent winner may have filled
		// the cache while this call waited.
		if cached, ok := s.cacheGet(flightCtx, key); ok {
			return cached, nil
		}

		raw, err := fetch(flightCtx)
		if err != nil {
			return nil, err
		}

		if err := s.cache.Set(flightCtx, key, raw, ttl); err != nil && s.logger != nil {
			s.logger.WithFields(logrus.Fields{"key": key}).WithError(err).Warn("failed to cache upstream payload")
		}
		return json.RawMessage(raw), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

func (s *BeachService) cacheGet(ctx context.Context, key string) (json.RawMessage, bool) {
	b, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"key": key}).WithError(err).Warn("cache read failed, falling through to upstream")
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return b, true
}
