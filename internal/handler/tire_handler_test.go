package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"zigueroutine/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListTires(ctx context.Context, brand, class string) ([]model.TireGroup, error) {
	args := m.Called(ctx, brand, class)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TireGroup), args.Error(1)
}

func (m *MockCatalogService) GetTire(ctx context.Context, id int) (*model.Tire, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tire), args.Error(1)
}

func tireRouter(svc *MockCatalogService) http.Handler {
	h := NewTireHandler(svc, zerolog.Nop())
	r := chi.NewRouter()
	r.Get("/api/tires", h.List)
	r.Get("/api/tires/{tireId}", h.GetByID)
	return r
}

func TestTireHandler_List(t *testing.T) {
	svc := new(MockCatalogService)
	groups := []model.TireGroup{
		{Brand: "Michelin", Tires: []model.Tire{
			{ID: 1, Brand: "Michelin", Name: "205/55 R16 91V", Price: 62, Class: model.ClassPassenger},
		}},
	}
	svc.On("ListTires", mock.Anything, "Michelin", "passenger").Return(groups, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tires?brand=Michelin&class=passenger", nil)
	rec := httptest.NewRecorder()
	tireRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.TireGroup
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, groups, got)
}

func TestTireHandler_GetByID(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockTire       *model.Tire
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			path:           "/api/tires/10",
			mockTire:       &model.Tire{ID: 10, Brand: "Kumho", Name: "195/65 R15 91T", Price: 37, Class: model.ClassPassenger},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Unknown tire",
			path:           "/api/tires/9999",
			mockError:      model.ErrTireNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Non-numeric id",
			path:           "/api/tires/abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			if tt.expectService {
				svc.On("GetTire", mock.Anything, mock.AnythingOfType("int")).
					Return(tt.mockTire, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			tireRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.mockTire != nil {
				var got model.Tire
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, *tt.mockTire, got)
			}
		})
	}
}
