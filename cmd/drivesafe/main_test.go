package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/cache"
	"github.com/drivesafe-lab/drivesafe/internal/server"
	"github.com/drivesafe-lab/drivesafe/internal/timebucket"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	aside := cache.NewAside[v1.Template](cache.NopStore{}, cache.JSONCodec[v1.Template]{})
	services := newServices(db, timebucket.NewMemoryStore(), aside, 30*time.Second)

	var srv *server.Server
	require.NotPanics(t, func() {
		srv = server.New(server.Options{Mode: "release"}, services...)
	})
	return srv
}

func TestNewServices_RegisterOnOneEngine(t *testing.T) {
	srv := newTestServer(t)

	routes := map[string]bool{}
	for _, r := range srv.Engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	require.Len(t, routes, 46)

	for _, want := range []string{
		"GET /health",
		"GET /metrics",
		"DELETE /v1/drivers/:driver_id",
		"PATCH /v1/vehicles/:vehicle_id",
		"GET /v1/drivers/:driver_id/trips/summary",
		"GET /v1/drivers/:driver_id/emergency",
		"PUT /v1/drivers/:driver_id/emergency",
		"PATCH /v1/drivers/:driver_id/profile/medical",
		"POST /v1/drivers/:driver_id/profile/notifications",
		"GET /v1/sos/unresolved",
		"POST /v1/sos/:sos_id/resolve",
		"GET /v1/gamification/leaderboard",
		"GET /v1/analytics/overview",
		"GET /v1/emergency/numbers/:country_code",
		"GET /v1/templates",
		"GET /v1/templates/:id",
	} {
		require.True(t, routes[want], "missing route %s", want)
	}
}

func TestNewServices_PathParamsResolve(t *testing.T) {
	srv := newTestServer(t)

	// Bad ids are rejected before any store call, so no queries are expected.
	for _, path := range []string{
		"/v1/drivers/abc",
		"/v1/drivers/abc/trips",
		"/v1/drivers/abc/emergency",
		"/v1/drivers/abc/profile/contacts",
		"/v1/sos/abc",
		"/v1/trips/0",
	} {
		w := httptest.NewRecorder()
		srv.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}
