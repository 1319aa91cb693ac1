package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/skobelevsky/authgate/internal/models"
	"github.com/skobelevsky/authgate/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name          string
		inputBody     interface{}
		mockSetup     func(mockSvc *MockLoginer)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			inputBody: LoginRequest{
				Email:    "john@example.com",
				Password: "secret123",
			},
			mockSetup: func(mockSvc *MockLoginer) {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return(&models.User{UserID: userID, Email: "john@example.com"}, "JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "invalid JSON",
			inputBody:     "{invalid json}",
			mockSetup:     func(mockSvc *MockLoginer) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "bad credentials get one generic message",
			inputBody: LoginRequest{
				Email:    "john@example.com",
				Password: "wrong",
			},
			mockSetup: func(mockSvc *MockLoginer) {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/login", encodeBody(t, tt.inputBody))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedError != "" {
				var body ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.expectedError, body.Error)
				return
			}

			var body AuthResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "JWT_TOKEN", body.Token)
		})
	}
}
