package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drivesafe-lab/drivesafe/internal/core/httpapi"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type echoService struct{}

func (echoService) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/echo", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(httpapi.RequestIDKey))
	})
	r.POST("/v1/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.String(http.StatusOK, "%d", len(body))
	})
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, req)
	return w
}

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		db         HealthChecker
		cache      HealthChecker
		wantStatus int
		want       map[string]string
	}{
		{
			name:       "all healthy",
			db:         pinger{},
			cache:      pinger{},
			wantStatus: http.StatusOK,
			want:       map[string]string{"status": "healthy", "database": "connected", "cache": "connected"},
		},
		{
			name:       "cache disabled",
			db:         pinger{},
			wantStatus: http.StatusOK,
			want:       map[string]string{"status": "healthy", "database": "connected", "cache": "disabled"},
		},
		{
			name:       "cache down is degraded",
			db:         pinger{},
			cache:      pinger{err: errors.New("connection refused")},
			wantStatus: http.StatusOK,
			want:       map[string]string{"status": "degraded", "database": "connected", "cache": "unreachable"},
		},
		{
			name:       "database down",
			db:         pinger{err: errors.New("connection refused")},
			cache:      pinger{},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]string{"status": "unhealthy", "error": "database unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{Database: tt.db, Cache: tt.cache})
			w := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, tt.wantStatus, w.Code)
			require.Equal(t, tt.want, decodeHealth(t, w))
		})
	}
}

func TestRequestID(t *testing.T) {
	s := New(Options{}, echoService{})

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/echo", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		w := serve(s, req)
		require.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
		require.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("assigns id when absent", func(t *testing.T) {
		w := serve(s, httptest.NewRequest(http.MethodGet, "/v1/echo", nil))
		id := w.Header().Get(requestIDHeader)
		require.Len(t, id, 36)
		require.Equal(t, id, w.Body.String())
	})
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(Options{}, echoService{})
	serve(s, httptest.NewRequest(http.MethodGet, "/v1/echo", nil))

	w := serve(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `drivesafe_http_requests_total{method="GET",route="/v1/echo",status="200"}`)
}

func TestBodyLimit(t *testing.T) {
	s := New(Options{MaxBodySizeMB: 1}, echoService{})

	w := serve(s, httptest.NewRequest(http.MethodPost, "/v1/echo", strings.NewReader("small")))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "5", w.Body.String())

	big := strings.NewReader(strings.Repeat("x", 2<<20))
	w = serve(s, httptest.NewRequest(http.MethodPost, "/v1/echo", big))
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := New(Options{Addr: "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)
}
