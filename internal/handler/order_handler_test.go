package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zigueroutine/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderConfirmation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderConfirmation), args.Error(1)
}

func (m *MockOrderService) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func orderRouter(svc *MockOrderService) http.Handler {
	h := NewOrderHandler(svc, zerolog.Nop())
	r := chi.NewRouter()
	r.Post("/api/orders", h.Create)
	r.Get("/api/orders/{code}", h.GetByCode)
	return r
}

func TestOrderHandler_Create(t *testing.T) {
	validBody := &model.OrderRequest{
		CustomerName: "Maria Silva",
		Phone:        "+351 912 345 678",
		Items: []model.LineItem{
			{Brand: "Michelin", Name: "205/55 R16", Price: 62, Qty: 2},
		},
		Total: 124,
	}

	tests := []struct {
		name           string
		body           interface{}
		rawBody        string
		mockReturn     *model.OrderConfirmation
		mockError      error
		expectedStatus int
		expectedError  string
		expectService  bool
	}{
		{
			name:           "Success",
			body:           validBody,
			mockReturn:     &model.OrderConfirmation{Success: true, Code: "KD0381"},
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Malformed JSON",
			rawBody:        "{not json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeInvalidJSON,
		},
		{
			name:           "Blank customer name",
			body:           validBody,
			mockError:      model.ErrInvalidCustomerName,
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeInvalidCustomerName,
			expectService:  true,
		},
		{
			name:           "Blank phone",
			body:           validBody,
			mockError:      model.ErrInvalidPhone,
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeInvalidPhone,
			expectService:  true,
		},
		{
			name:           "Empty order",
			body:           validBody,
			mockError:      model.ErrEmptyOrder,
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeEmptyOrder,
			expectService:  true,
		},
		{
			name:           "Notification dispatch failure",
			body:           validBody,
			mockError:      model.ErrNotifyFailed,
			expectedStatus: http.StatusBadGateway,
			expectedError:  model.ErrCodeNotifyFailed,
			expectService:  true,
		},
		{
			name:           "Unexpected internal fault stays opaque",
			body:           validBody,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  model.ErrCodeInternalError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockOrderService)
			if tt.expectService {
				svc.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			var body []byte
			if tt.rawBody != "" {
				body = []byte(tt.rawBody)
			} else {
				var err error
				body, err = json.Marshal(tt.body)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			orderRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var conf model.OrderConfirmation
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conf))
				assert.True(t, conf.Success)
				assert.Equal(t, "KD0381", conf.Code)
			}
		})
	}
}

func TestOrderHandler_GetByCode(t *testing.T) {
	svc := new(MockOrderService)
	order := &model.Order{
		Code:         "KD0381",
		CustomerName: "Maria Silva",
		Phone:        "+351 912 345 678",
		Items:        []model.LineItem{{Brand: "Kumho", Name: "195/65 R15", Price: 37, Qty: 1}},
		Total:        37,
		CreatedAt:    time.Now(),
	}
	svc.On("GetByCode", mock.Anything, "KD0381").Return(order, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/KD0381", nil)
	rec := httptest.NewRecorder()
	orderRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, order.Code, got.Code)
	assert.Equal(t, order.CustomerName, got.CustomerName)
}

func TestOrderHandler_GetByCode_NotFound(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("GetByCode", mock.Anything, "ZZ9999").Return(nil, model.ErrOrderNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/ZZ9999", nil)
	rec := httptest.NewRecorder()
	orderRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
