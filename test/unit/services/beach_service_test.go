package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	impl "github.com/govargas/bada/internal/application/services"
	"github.com/govargas/bada/internal/core/domain/beach"
	"github.com/govargas/bada/internal/core/ports"
	"github.com/govargas/bada/internal/infrastructure/cache"
	"github.com/govargas/bada/test/mocks"
)

func newBeachService(client ports.BathingWaterClient, c ports.Cache) ports.BeachService {
	return impl.NewBeachService(client, c, 5*time.Minute, 5*time.Minute, logrus.New())
}

func TestListBeaches_CachesUpstreamPayload(t *testing.T) {
	calls := 0
	client := &mocks.BathingWaterClientMock{
		ListFn: func(ctx context.Context) (json.RawMessage, error) {
			calls++
			return json.RawMessage(`{"type":"FeatureCollection","features":[]}`), nil
		},
	}
	svc := newBeachService(client, cache.NewMemoryCache(time.Minute))

	first, err := svc.ListBeaches(context.Background())
	require.NoError(t, err)
	second, err := svc.ListBeaches(context.Background())
	require.NoError(t, err)

	require.JSONEq(t, string(first), string(second))
	require.Equal(t, 1, calls, "second call should be served from cache")
}

func TestListBeaches_UpstreamErrorPropagates(t *testing.T) {
	client := &mocks.BathingWaterClientMock{
		ListFn: func(ctx context.Context) (json.RawMessage, error) {
			return nil, &ports.UpstreamError{Source: "v1", Status: 503, Body: "maintenance"}
		},
	}
	svc := newBeachService(client, cache.NewMemoryCache(time.Minute))

	_, err := svc.ListBeaches(context.Background())
	var ue *ports.UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, 503, ue.Status)
}

func TestGetBeach_EmbeddedSampleDateSkipsSecondary(t *testing.T) {
	secondaryCalled := false
	client := &mocks.BathingWaterClientMock{
		DetailFn: func(ctx context.Context, id string) (json.RawMessage, error) {
			return json.RawMessage(`{"nutsCode":"SE0441273000000001","locationName":"Hökarängsbadet","sampleDate":1686787200000}`), nil
		},
		ResultsFn: func(ctx context.Context, id string) ([]beach.MonitoringResult, error) {
			secondaryCalled = true
			return nil, nil
		},
	}
	svc := newBeachService(client, cache.NewMemoryCache(time.Minute))

	detail, err := svc.GetBeach(context.Background(), "SE0441273000000001")
	require.NoError(t, err)
	require.NotNil(t, detail.LatestSampleDate)
	require.Equal(t, "2023-06-15T00:00:00Z", *detail.LatestSampleDate)
	require.False(t, secondaryCalled, "secondary source must not be consulted when v1 embeds a timestamp")
}

func TestGetBeach_FallbackUsesMaximumTakenAt(t *testing.T) {
	taken := func(s string) *string { return &s }
	client := &mocks.BathingWaterClientMock{
		DetailFn: func(ctx context.Context, id string) (json.RawMessage, error) {
			return json.RawMessage(`{"nutsCode":"SE1","locationName":"Testbadet"}`), nil
		},
		ResultsFn: func(ctx context.Context, id string) ([]beach.MonitoringResult, error) {
			return []beach.MonitoringResult{
				{TakenAt: taken("2023-05-01")},
				{TakenAt: taken("2023-06-15")},
				{TakenAt: nil},
			}, nil
		},
	}
	svc := newBeachService(client, cache.NewMemoryCache(time.Minute))

	detail, err := svc.GetBeach(context.Background(), "SE1")
	require.NoError(t, err)
	require.NotNil(t, detail.LatestSampleDate)
	require.Equal(t, "2023-06-15", *detail.LatestSampleDate)
}

func TestGetBeach_SecondaryFailureDegradesToNull(t *testing.T) {
	client := &mocks.BathingWaterClientMock{
		DetailFn: func(ctx context.Context, id string) (json.RawMessage, error) {
			return json.RawMessage(`{"nutsCode":"SE1"}`), nil
		},
		ResultsFn: func(ctx context.Context, id string) ([]beach.MonitoringResult, error) {
			return nil, errors.New("v2 exploded")
		},
	}
	svc := newBeachService(client, cache.NewMemoryCache(time.Minute))

	detail, err := svc.GetBeach(context.Background(), "SE1")
	require.NoError(t, err, "secondary instability must never take down the primary response")
	require.Nil(t, detail.LatestSampleDate)
}

func TestGetBeach_PrimaryFailureFailsOperation(t *testing.T) {
	client := &mocks.BathingWaterClientMock{
		DetailFn: func(ctx context.Context, id string) (json.RawMessage, error) {
			return nil, &ports.UpstreamError{Source: "v1", Status: 404, Body: "no such site"}
		},
	}
	svc := newBeachService(client, cache.NewMemoryCache(time.Minute))

	_, err := svc.GetBeach(context.Background(), "SE-missing")
	var ue *ports.UpstreamError
	require.ErrorAs(t, err, &ue)
}

func TestGetBeach_FailedFetchIsNotCached(t *testing.T) {
	calls := 0
	client := &mocks.BathingWaterClientMock{
		DetailFn: func(ctx context.Context, id string) (json.RawMessage, error) {
			calls++
			if calls == 1 {
				return nil, &ports.UpstreamError{Source: "v1", Status: 500, Body: "boom"}
			}
			return json.RawMessage(`{"nutsCode":"SE1","sampleDate":1686787200000}`), nil
		},
	}
	svc := newBeachService(client, cache.NewMemoryCache(time.Minute))

	_, err := svc.GetBeach(context.Background(), "SE1")
	require.Error(t, err)

	detail, err := svc.GetBeach(context.Background(), "SE1")
	require.NoError(t, err)
	require.Equal(t, "SE1", detail.NutsCode)
	require.Equal(t, 2, calls)
}

func TestGetBeach_StartingCallerDisconnectDoesNotAbortSharedFetch(t *testing.T) {
	inFlight := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	client := &mocks.BathingWaterClientMock{
		DetailFn: func(ctx context.Context, id string) (json.RawMessage, error) {
			once.Do(func() { close(inFlight) })
			select {
			case <-ctx.Done():
				return nil, &ports.UpstreamError{Source: "v1", Status: 0, Body: ctx.Err().Error()}
			case <-release:
				return json.RawMessage(`{"nutsCode":"SE1","sampleDate":1686787200000}`), nil
			}
		},
	}
	svc := newBeachService(client, cache.NewMemoryCache(time.Minute))

	disconnecting, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = svc.GetBeach(disconnecting, "SE1")
	}()

	var healthyErr error
	var healthy *beach.Detail
	go func() {
		defer wg.Done()
		<-inFlight
		healthy, healthyErr = svc.GetBeach(context.Background(), "SE1")
	}()

	<-inFlight
	cancel()
	// Let the cancellation propagate before the upstream responds.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, healthyErr, "a disconnecting caller must not fail the waiters sharing its fetch")
	require.NotNil(t, healthy)
	require.Equal(t, "SE1", healthy.NutsCode)
}

func TestCacheKeysMatchUpstreamPaths(t *testing.T) {
	var keys []string
	store := &mocks.CacheMock{
		SetFn: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			keys = append(keys, key)
			return nil
		},
	}
	client := &mocks.BathingWaterClientMock{
		ListFn: func(ctx context.Context) (json.RawMessage, error) {
			return json.RawMessage(`{"features":[]}`), nil
		},
		DetailFn: func(ctx context.Context, id string) (json.RawMessage, error) {
			return json.RawMessage(`{"nutsCode":"SE1","sampleDate":1686787200000}`), nil
		},
	}
	svc := newBeachService(client, store)

	_, err := svc.ListBeaches(context.Background())
	require.NoError(t, err)
	_, err = svc.GetBeach(context.Background(), "SE1")
	require.NoError(t, err)

	// Keys carry the full namespace themselves; no store-level prefix is
	// stacked on top.
	require.Equal(t, []string{"hav:v1:/feature/?format=json", "hav:v1:/detail/SE1"}, keys)
}

func TestGetBeach_ConcurrentMissesCoalesce(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	release := make(chan struct{})
	client := &mocks.BathingWaterClientMock{
		DetailFn: func(ctx context.Context, id string) (json.RawMessage, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			<-release
			return json.RawMessage(`{"nutsCode":"SE1","sampleDate":1686787200000}`), nil
		},
	}
	svc := newBeachService(client, cache.NewMemoryCache(time.Minute))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GetBeach(context.Background(), "SE1")
			require.NoError(t, err)
		}()
	}

	// Give the goroutines time to pile up behind the single flight.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, 1, calls, "concurrent misses for one key should share one upstream fetch")
}
