package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ebuney/internal/auth"
	"ebuney/internal/middleware"
	"ebuney/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCheckoutService is a mock implementation of checkout.Service.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) PlaceOrder(ctx context.Context, buyerID uuid.UUID, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	args := m.Called(ctx, buyerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CheckoutResponse), args.Error(1)
}

func sessionRequest(method, target string, body []byte, session *auth.Session) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if session != nil {
		req = req.WithContext(middleware.ContextWithSession(req.Context(), session))
	}
	return req
}

func buyerSession() *auth.Session {
	return &auth.Session{Token: uuid.NewString(), UserID: uuid.New(), Role: model.RoleBuyer}
}

func checkoutBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(model.CheckoutRequest{
		AttemptID:     uuid.NewString(),
		PaymentMethod: model.PaymentMobileMoneyMTN,
		ShippingAddress: model.ShippingAddress{
			FullName:     "Chanda Mwila",
			Phone:        "+260 971 234 567",
			AddressLine1: "12 Independence Ave",
			City:         "Lusaka",
			Province:     "Lusaka",
		},
	})
	require.NoError(t, err)
	return body
}

func TestCheckoutHandler_PlaceOrder(t *testing.T) {
	session := buyerSession()

	t.Run("success returns created orders", func(t *testing.T) {
		svc := new(MockCheckoutService)
		h := NewCheckoutHandler(svc, zerolog.Nop())

		orders := []model.Order{
			{ID: uuid.New(), BuyerID: session.UserID, SellerID: uuid.New(), TotalAmount: 200},
			{ID: uuid.New(), BuyerID: session.UserID, SellerID: uuid.New(), TotalAmount: 50},
		}
		svc.On("PlaceOrder", mock.Anything, session.UserID, mock.AnythingOfType("*model.CheckoutRequest")).
			Return(&model.CheckoutResponse{Orders: orders}, nil)

		req := sessionRequest(http.MethodPost, "/api/checkout", checkoutBody(t), session)
		rec := httptest.NewRecorder()

		h.PlaceOrder(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp model.CheckoutResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Orders, 2)
	})

	t.Run("rejects non-POST", func(t *testing.T) {
		h := NewCheckoutHandler(new(MockCheckoutService), zerolog.Nop())

		req := sessionRequest(http.MethodGet, "/api/checkout", nil, session)
		rec := httptest.NewRecorder()

		h.PlaceOrder(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("rejects missing session", func(t *testing.T) {
		h := NewCheckoutHandler(new(MockCheckoutService), zerolog.Nop())

		req := sessionRequest(http.MethodPost, "/api/checkout", checkoutBody(t), nil)
		rec := httptest.NewRecorder()

		h.PlaceOrder(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		h := NewCheckoutHandler(new(MockCheckoutService), zerolog.Nop())

		req := sessionRequest(http.MethodPost, "/api/checkout", []byte("{not json"), session)
		rec := httptest.NewRecorder()

		h.PlaceOrder(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeInvalidJSON, resp.Error)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation failure", model.NewValidationError("city"), http.StatusBadRequest, model.ErrCodeValidationFailed},
		{"empty cart", model.ErrEmptyCart, http.StatusConflict, model.ErrCodeEmptyCart},
		{"duplicate attempt", model.ErrDuplicateCheckout, http.StatusConflict, model.ErrCodeDuplicateCheckout},
		{"store unavailable", model.ErrDataUnavailable, http.StatusServiceUnavailable, model.ErrCodeDataUnavailable},
		{"invalid payment method", model.ErrInvalidPaymentMethod, http.StatusBadRequest, model.ErrCodeInvalidPaymentMethod},
		{
			"partial order failure",
			&model.PartialOrderError{SellerID: uuid.NewString(), OrderNumber: "ORD-20260901-0000ABCD", Err: assert.AnError},
			http.StatusInternalServerError,
			model.ErrCodePartialOrderFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCheckoutService)
			h := NewCheckoutHandler(svc, zerolog.Nop())

			svc.On("PlaceOrder", mock.Anything, session.UserID, mock.AnythingOfType("*model.CheckoutRequest")).
				Return(nil, tt.err)

			req := sessionRequest(http.MethodPost, "/api/checkout", checkoutBody(t), session)
			rec := httptest.NewRecorder()

			h.PlaceOrder(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp model.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error)
		})
	}
}

func TestCheckoutHandler_PartialFailureMessageHidesDetail(t *testing.T) {
	session := buyerSession()
	svc := new(MockCheckoutService)
	h := NewCheckoutHandler(svc, zerolog.Nop())

	svc.On("PlaceOrder", mock.Anything, session.UserID, mock.AnythingOfType("*model.CheckoutRequest")).
		Return(nil, &model.PartialOrderError{SellerID: uuid.NewString(), OrderNumber: "ORD-20260901-0000ABCD", Err: assert.AnError})

	req := sessionRequest(http.MethodPost, "/api/checkout", checkoutBody(t), session)
	rec := httptest.NewRecorder()

	h.PlaceOrder(rec, req)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Message, "ORD-20260901")
	assert.Contains(t, resp.Message, "contact support")
}
