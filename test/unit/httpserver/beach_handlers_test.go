package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/govargas/bada/internal/core/domain/beach"
	"github.com/govargas/bada/internal/core/ports"
	"github.com/govargas/bada/internal/infrastructure/httpserver"
	"github.com/govargas/bada/test/mocks"
)

func TestListBeaches_ProxiesCachedPayload(t *testing.T) {
	payload := `{"type":"FeatureCollection","features":[{"id":"SE1"}]}`
	srv := newTestServer(httpserver.ServerDeps{
		BeachService: &mocks.BeachServiceMock{
			ListBeachesFn: func(ctx context.Context) (json.RawMessage, error) {
				return json.RawMessage(payload), nil
			},
		},
	})

	rec := doRequest(srv, http.MethodGet, "/api/beaches", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, payload, rec.Body.String())
}

func TestListBeaches_UpstreamFailureIsBadGateway(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{
		BeachService: &mocks.BeachServiceMock{
			ListBeachesFn: func(ctx context.Context) (json.RawMessage, error) {
				return nil, &ports.UpstreamError{Source: "v1", Status: 503, Body: "maintenance"}
			},
		},
	})

	rec := doRequest(srv, http.MethodGet, "/api/beaches", "", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.JSONEq(t, `{"error":"UpstreamError"}`, rec.Body.String())
}

func TestGetBeach_ReturnsMergedDetail(t *testing.T) {
	latest := "2023-06-15T00:00:00Z"
	srv := newTestServer(httpserver.ServerDeps{
		BeachService: &mocks.BeachServiceMock{
			GetBeachFn: func(ctx context.Context, id string) (*beach.Detail, error) {
				require.Equal(t, "SE0441273000000001", id)
				return &beach.Detail{
					NutsCode:         id,
					LocationName:     "Hökarängsbadet",
					LatestSampleDate: &latest,
				}, nil
			},
		},
	})

	rec := doRequest(srv, http.MethodGet, "/api/beaches/SE0441273000000001", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Hökarängsbadet", body["locationName"])
	require.Equal(t, latest, body["latestSampleDate"])
}

func TestGetBeach_UnreachableUpstreamIsBadGateway(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{
		BeachService: &mocks.BeachServiceMock{
			GetBeachFn: func(ctx context.Context, id string) (*beach.Detail, error) {
				return nil, &ports.UpstreamError{Source: "v1", Status: 0, Body: "dial tcp: connection refused"}
			},
		},
	})

	rec := doRequest(srv, http.MethodGet, "/api/beaches/SE1", "", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.JSONEq(t, `{"error":"UpstreamError"}`, rec.Body.String())
}

func TestGetBeach_UnexpectedErrorIsOpaqueInternal(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{
		BeachService: &mocks.BeachServiceMock{
			GetBeachFn: func(ctx context.Context, id string) (*beach.Detail, error) {
				return nil, errors.New("decoder blew up")
			},
		},
	})

	rec := doRequest(srv, http.MethodGet, "/api/beaches/SE1", "", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "InternalServerError", body["error"])
}
