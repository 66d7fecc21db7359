package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"task_backend/internal/feature/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, firstname, lastname, email, password string) error
	LoginFunc    func(ctx context.Context, email, password string) (string, error)
}

// Register is the mock implementation of the Register method.
func (m *mockAuthUsecase) Register(ctx context.Context, firstname, lastname, email, password string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, firstname, lastname, email, password)
	}
	return nil // Default: success
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", usecase.ErrInvalidCredentials // Default: failure
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      gin.H
		mockRegisterFunc func(ctx context.Context, firstname, lastname, email, password string) error
		expectedStatus   int
		expectedBody     gin.H
	}{
		{
			name:             "success: user registration",
			requestBody:      gin.H{"firstname": "A", "lastname": "B", "email": "a@b.com", "password": "pw"},
			mockRegisterFunc: func(ctx context.Context, firstname, lastname, email, password string) error { return nil },
			expectedStatus:   http.StatusCreated,
			expectedBody:     gin.H{"message": "user registered successfully"},
		},
		{
			name:             "failure: missing firstname",
			requestBody:      gin.H{"lastname": "B", "email": "a@b.com", "password": "pw"},
			mockRegisterFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
			expectedBody:     gin.H{"error": "all fields are required"},
		},
		{
			name:             "failure: missing password",
			requestBody:      gin.H{"firstname": "A", "lastname": "B", "email": "a@b.com"},
			mockRegisterFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
			expectedBody:     gin.H{"error": "all fields are required"},
		},
		{
			name:             "success: email format is not checked, only presence",
			requestBody:      gin.H{"firstname": "A", "lastname": "B", "email": "admin", "password": "pw"},
			mockRegisterFunc: func(ctx context.Context, firstname, lastname, email, password string) error { return nil },
			expectedStatus:   http.StatusCreated,
			expectedBody:     gin.H{"message": "user registered successfully"},
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"firstname": "A", "lastname": "B", "email": "existing@example.com", "password": "pw"},
			mockRegisterFunc: func(ctx context.Context, firstname, lastname, email, password string) error {
				return usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   gin.H{"error": "email already exists"},
		},
		{
			name:        "failure: store fault",
			requestBody: gin.H{"firstname": "A", "lastname": "B", "email": "a@b.com", "password": "pw"},
			mockRegisterFunc: func(ctx context.Context, firstname, lastname, email, password string) error {
				return errors.New("connection reset")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegisterFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/register", handler.Register)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:           "success: user login",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123"},
			mockLoginFunc:  func(ctx context.Context, email, password string) (string, error) { return "dummy-jwt-token", nil },
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"message": "login successful", "token": "dummy-jwt-token"},
		},
		{
			name:           "failure: missing email",
			requestBody:    gin.H{"password": "password123"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "email and password are required"},
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "email and password are required"},
		},
		{
			name:        "failure: unknown email",
			requestBody: gin.H{"email": "unknown@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "invalid email or password"},
		},
		{
			name:        "failure: malformed unknown email gets 401, not 400",
			requestBody: gin.H{"email": "admin", "password": "pw"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "invalid email or password"},
		},
		{
			name:        "failure: wrong password has the identical response",
			requestBody: gin.H{"email": "test@example.com", "password": "wrong-password"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "invalid email or password"},
		},
		{
			name:        "failure: token generation fault",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", errors.New("failed to sign token")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/login", handler.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}
