package jwtauth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	mockjwt "github.com/yacinedev/mystore-backend/internal/auth/jwt/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenManager := mockjwt.NewMockJwtManager(ctrl)
	middleware := NewMiddleware(zap.NewNop(), mockTokenManager)

	tests := []struct {
		name               string
		authHeader         string
		setupMock          func()
		expectedStatusCode int
		expectNextCalled   bool
	}{
		{
			name:               "No auth header",
			authHeader:         "",
			setupMock:          func() {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Invalid format",
			authHeader:         "Bearer",
			setupMock:          func() {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Wrong scheme",
			authHeader:         "Basic dXNlcjpwYXNz",
			setupMock:          func() {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Invalid token",
			authHeader: "Bearer invalid.token.here",
			setupMock: func() {
				mockTokenManager.EXPECT().
					ParseToken("invalid.token.here").
					Return(errors.New("invalid token"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid.token",
			setupMock: func() {
				mockTokenManager.EXPECT().
					ParseToken("valid.token").
					Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectNextCalled:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/some-protected-route", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			nextCalled := false

			protectedHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handlerToTest := middleware(protectedHandler)
			handlerToTest.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}
