package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/document"
	mockorderhandler "github.com/yacinedev/mystore-backend/internal/order/handler/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func passthroughMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
	})
}

func newRouter(service *mockorderhandler.MockService) chi.Router {
	router := chi.NewRouter()
	New(service, passthroughMiddleware, zap.NewNop()).Register(router)
	return router
}

func TestHandler_createHandler(t *testing.T) {
	type mockBehavior func(s *mockorderhandler.MockService)

	testTable := []struct {
		name               string
		inputBody          string
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name:      "OK",
			inputBody: `{"customerName":"Amine","phone":"+213555000111","items":[{"productId":1,"name":"lamp","price":49.9,"quantity":2}]}`,
			mockBehavior: func(s *mockorderhandler.MockService) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&document.Order{ID: "ORD-1", Total: 99.8}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:               "Missing customer name",
			inputBody:          `{"phone":"+213555000111","items":[{"price":10,"quantity":1}]}`,
			mockBehavior:       func(s *mockorderhandler.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:               "Empty items",
			inputBody:          `{"customerName":"Amine","phone":"+213555000111","items":[]}`,
			mockBehavior:       func(s *mockorderhandler.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:               "Zero quantity item",
			inputBody:          `{"customerName":"Amine","phone":"+213555000111","items":[{"price":10,"quantity":0}]}`,
			mockBehavior:       func(s *mockorderhandler.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:               "Unknown delivery method",
			inputBody:          `{"customerName":"Amine","phone":"+213555000111","deliveryMethod":"drone","items":[{"price":10,"quantity":1}]}`,
			mockBehavior:       func(s *mockorderhandler.MockService) {},
			expectedStatusCode: 400,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockorderhandler.NewMockService(c)
			tc.mockBehavior(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(tc.inputBody))

			newRouter(service).ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
		})
	}
}

func TestHandler_updateStatusHandler(t *testing.T) {
	type mockBehavior func(s *mockorderhandler.MockService)

	testTable := []struct {
		name               string
		inputBody          string
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name:      "OK",
			inputBody: `{"status":"completed"}`,
			mockBehavior: func(s *mockorderhandler.MockService) {
				s.EXPECT().UpdateStatus(gomock.Any(), "ORD-1", "completed").
					Return(&document.Order{ID: "ORD-1", Status: "completed"}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:               "Unknown status",
			inputBody:          `{"status":"shipped"}`,
			mockBehavior:       func(s *mockorderhandler.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:      "Order not found",
			inputBody: `{"status":"completed"}`,
			mockBehavior: func(s *mockorderhandler.MockService) {
				s.EXPECT().UpdateStatus(gomock.Any(), "ORD-1", "completed").Return(nil, apperror.ErrNotFound)
			},
			expectedStatusCode: 404,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockorderhandler.NewMockService(c)
			tc.mockBehavior(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/orders/ORD-1/status", bytes.NewBufferString(tc.inputBody))

			newRouter(service).ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
		})
	}
}
