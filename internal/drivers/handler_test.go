package drivers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) List(ctx context.Context, limit int) ([]v1.Driver, error) {
	args := m.Called(ctx, limit)
	drivers, _ := args.Get(0).([]v1.Driver)
	return drivers, args.Error(1)
}

func (m *mockStore) Get(ctx context.Context, id int64) (*v1.Driver, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*v1.Driver)
	return d, args.Error(1)
}

func (m *mockStore) Create(ctx context.Context, in v1.DriverInput) (*v1.Driver, error) {
	args := m.Called(ctx, in)
	d, _ := args.Get(0).(*v1.Driver)
	return d, args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, id int64, in v1.DriverInput) (*v1.Driver, error) {
	args := m.Called(ctx, id, in)
	d, _ := args.Get(0).(*v1.Driver)
	return d, args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewService(store).RegisterRoutes(r)
	return r
}

func TestService_HandleGet(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		configure      func(m *mockStore)
		expectedStatus int
	}{
		{
			name: "found",
			path: "/v1/drivers/1",
			configure: func(m *mockStore) {
				m.On("Get", mock.Anything, int64(1)).Return(&v1.Driver{ID: 1, Name: "Ada"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "absent returns 404",
			path: "/v1/drivers/2",
			configure: func(m *mockStore) {
				m.On("Get", mock.Anything, int64(2)).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id returns 400",
			path:           "/v1/drivers/abc",
			configure:      func(*mockStore) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store error returns 500",
			path: "/v1/drivers/3",
			configure: func(m *mockStore) {
				m.On("Get", mock.Anything, int64(3)).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{}
			tt.configure(store)

			w := httptest.NewRecorder()
			newRouter(store).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			store.AssertExpectations(t)
		})
	}
}

func TestService_HandleList_Limit(t *testing.T) {
	store := &mockStore{}
	store.On("List", mock.Anything, 100).Return([]v1.Driver{}, nil).Once()
	store.On("List", mock.Anything, 500).Return([]v1.Driver{{ID: 1, Name: "Ada"}}, nil).Once()
	r := newRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/drivers", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/drivers?limit=500", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/drivers?limit=501", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	store.AssertExpectations(t)
}

func TestService_HandleCreate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		configure      func(m *mockStore)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"name":"Ada","date_of_birth":"1990-05-17"}`,
			configure: func(m *mockStore) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(in v1.DriverInput) bool {
					return *in.Name == "Ada" && *in.DateOfBirth == "1990-05-17"
				})).Return(&v1.Driver{ID: 5, Name: "Ada"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{"email":"a@example.com"}`,
			configure:      func(*mockStore) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad date",
			body:           `{"name":"Ada","date_of_birth":"17/05/1990"}`,
			configure:      func(*mockStore) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{"name":`,
			configure:      func(*mockStore) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{}
			tt.configure(store)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/drivers", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			newRouter(store).ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			store.AssertExpectations(t)
		})
	}
}

func TestService_HandleUpdate_Absent(t *testing.T) {
	store := &mockStore{}
	store.On("Update", mock.Anything, int64(8), mock.Anything).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/drivers/8", strings.NewReader(`{"phone":"555"}`))
	req.Header.Set("Content-Type", "application/json")
	newRouter(store).ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	store.AssertExpectations(t)
}

func TestService_HandleDelete(t *testing.T) {
	tests := []struct {
		name           string
		removed        bool
		err            error
		expectedStatus int
	}{
		{"removed", true, nil, http.StatusNoContent},
		{"absent", false, nil, http.StatusNotFound},
		{"still referenced", false, fmt.Errorf("delete driver 4: %w", storage.ErrStillReferenced), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{}
			store.On("Delete", mock.Anything, int64(4)).Return(tt.removed, tt.err)

			w := httptest.NewRecorder()
			newRouter(store).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/drivers/4", nil))

			require.Equal(t, tt.expectedStatus, w.Code)
			store.AssertExpectations(t)
		})
	}
}

func TestNewService_PanicsOnNilStore(t *testing.T) {
	require.Panics(t, func() { NewService(nil) })
}
