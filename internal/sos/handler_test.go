package sos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/timebucket"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Create(ctx context.Context, timeID int64, req v1.CreateSOSRequest) (*v1.SOSEvent, error) {
	args := m.Called(ctx, timeID, req)
	ev, _ := args.Get(0).(*v1.SOSEvent)
	return ev, args.Error(1)
}

func (m *mockStore) Get(ctx context.Context, id int64) (*v1.SOSEvent, error) {
	args := m.Called(ctx, id)
	ev, _ := args.Get(0).(*v1.SOSEvent)
	return ev, args.Error(1)
}

func (m *mockStore) ListUnresolved(ctx context.Context, limit int) ([]v1.SOSEvent, error) {
	args := m.Called(ctx, limit)
	evs, _ := args.Get(0).([]v1.SOSEvent)
	return evs, args.Error(1)
}

func (m *mockStore) Resolve(ctx context.Context, id int64) (*v1.SOSEvent, error) {
	args := m.Called(ctx, id)
	ev, _ := args.Get(0).(*v1.SOSEvent)
	return ev, args.Error(1)
}

func newRouter(store Store, buckets timebucket.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewService(store, buckets).RegisterRoutes(r)
	return r
}

func TestService_Raise_UsesTimestampBucket(t *testing.T) {
	store := &mockStore{}
	buckets := timebucket.NewMemoryStore()

	ts := time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)
	wantID, err := buckets.FindOrCreate(context.Background(), timebucket.FromTime(ts))
	require.NoError(t, err)

	store.On("Create", mock.Anything, wantID, mock.Anything).
		Return(&v1.SOSEvent{ID: 1, TimeID: wantID, DriverID: 1, VehicleID: 1}, nil)

	ev, err := NewService(store, buckets).Raise(context.Background(), v1.CreateSOSRequest{
		DriverID: 1, VehicleID: 1, Timestamp: v1.NewTimestamp(ts),
	})
	require.NoError(t, err)
	require.Equal(t, wantID, ev.TimeID)
	require.Equal(t, 1, buckets.Len())
	store.AssertExpectations(t)
}

func TestService_HandleCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing driver", `{"vehicle_id":1,"latitude":1,"longitude":1}`},
		{"latitude out of range", `{"driver_id":1,"vehicle_id":1,"latitude":91,"longitude":0}`},
		{"longitude out of range", `{"driver_id":1,"vehicle_id":1,"latitude":0,"longitude":-181}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/sos", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			newRouter(store, timebucket.NewMemoryStore()).ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_UnresolvedRouteDoesNotShadowID(t *testing.T) {
	store := &mockStore{}
	store.On("ListUnresolved", mock.Anything, defaultListLimit).Return([]v1.SOSEvent{}, nil)
	store.On("Get", mock.Anything, int64(12)).Return(&v1.SOSEvent{ID: 12}, nil)
	r := newRouter(store, timebucket.NewMemoryStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/sos/unresolved", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/sos/12", nil))
	require.Equal(t, http.StatusOK, w.Code)

	store.AssertExpectations(t)
}

func TestService_HandleResolve(t *testing.T) {
	store := &mockStore{}
	store.On("Resolve", mock.Anything, int64(5)).Return(&v1.SOSEvent{ID: 5, Resolved: true}, nil)
	store.On("Resolve", mock.Anything, int64(6)).Return(nil, nil)
	r := newRouter(store, timebucket.NewMemoryStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/sos/5/resolve", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"resolved":true`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/sos/6/resolve", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	store.AssertExpectations(t)
}
