package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockService is a mock implementation of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GetPayments(ctx context.Context, memberID *int) ([]PaymentWithMember, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PaymentWithMember), args.Error(1)
}

func (m *MockService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func setupPaymentRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(service)

	router.GET("/api/payments", handler.ListPayments)
	router.POST("/api/payments", handler.RecordPayment)

	return router
}

func TestListPayments_Handler_All(t *testing.T) {
	mockService := new(MockService)
	router := setupPaymentRouter(mockService)

	mockService.On("GetPayments", mock.Anything, (*int)(nil)).Return([]PaymentWithMember{
		{Payment: Payment{ID: 1, MemberID: 1, Amount: 50}, MemberName: "Alice"},
	}, nil)

	req := httptest.NewRequest("GET", "/api/payments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []PaymentWithMember
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "Alice", response[0].MemberName)
	mockService.AssertExpectations(t)
}

func TestListPayments_Handler_ByMember(t *testing.T) {
	mockService := new(MockService)
	router := setupPaymentRouter(mockService)

	memberID := 7
	mockService.On("GetPayments", mock.Anything, &memberID).Return([]PaymentWithMember{}, nil)

	req := httptest.NewRequest("GET", "/api/payments?member_id=7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestListPayments_Handler_InvalidMemberID(t *testing.T) {
	mockService := new(MockService)
	router := setupPaymentRouter(mockService)

	req := httptest.NewRequest("GET", "/api/payments?member_id=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetPayments")
}

func TestRecordPayment_Handler(t *testing.T) {
	mockService := new(MockService)
	router := setupPaymentRouter(mockService)

	mockService.On("RecordPayment", mock.Anything, RecordPaymentRequest{MemberID: 1, Amount: 50}).
		Return(&Payment{ID: 1, MemberID: 1, Amount: 50, PaymentType: TypeMembership}, nil)

	body, _ := json.Marshal(map[string]interface{}{"member_id": 1, "amount": 50})
	req := httptest.NewRequest("POST", "/api/payments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestRecordPayment_Handler_NegativeAmount(t *testing.T) {
	mockService := new(MockService)
	router := setupPaymentRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{"member_id": 1, "amount": -5})
	req := httptest.NewRequest("POST", "/api/payments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "RecordPayment")
}

func TestRecordPayment_Handler_UnknownMember(t *testing.T) {
	mockService := new(MockService)
	router := setupPaymentRouter(mockService)

	mockService.On("RecordPayment", mock.Anything, mock.Anything).Return(nil, ErrMemberNotFound)

	body, _ := json.Marshal(map[string]interface{}{"member_id": 999, "amount": 50})
	req := httptest.NewRequest("POST", "/api/payments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}
