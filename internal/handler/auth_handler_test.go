package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"arena-store/internal/auth"
	"arena-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Register(t *testing.T) {
	logger := zerolog.Nop()

	tokens := &model.TokenResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		mockService.On("Register", mock.Anything, &model.RegisterRequest{
			Name: "Ana", Email: "ana@example.com", Password: "long-enough",
		}).Return(tokens, nil)

		body := `{"name": "Ana", "email": "ana@example.com", "password": "long-enough"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "accessToken")
	})

	t.Run("Missing fields", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email": "ana@example.com"}`))
		w := httptest.NewRecorder()

		handler.Register(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Register")
	})

	t.Run("Short password", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		mockService.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
			Return(nil, auth.ErrPasswordTooShort)

		body := `{"name": "Ana", "email": "ana@example.com", "password": "short"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Email taken", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		mockService.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
			Return(nil, model.ErrEmailTaken)

		body := `{"name": "Ana", "email": "ana@example.com", "password": "long-enough"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), model.ErrCodeEmailTaken)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		mockService.On("Login", mock.Anything, &model.LoginRequest{
			Email: "ana@example.com", Password: "long-enough",
		}).Return(&model.TokenResponse{AccessToken: "access"}, nil)

		body := `{"email": "ana@example.com", "password": "long-enough"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Bad credentials", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		mockService.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
			Return(nil, model.ErrBadCredentials)

		body := `{"email": "ana@example.com", "password": "wrong-password"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), model.ErrCodeBadCredentials)
	})

	t.Run("Missing password", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email": "ana@example.com"}`))
		w := httptest.NewRecorder()

		handler.Login(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Login")
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		mockService.On("Refresh", mock.Anything, &model.RefreshRequest{RefreshToken: "refresh"}).
			Return(&model.TokenResponse{AccessToken: "rotated"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(`{"refreshToken": "refresh"}`))
		w := httptest.NewRecorder()

		handler.Refresh(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "rotated")
	})

	t.Run("Invalid refresh token", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		mockService.On("Refresh", mock.Anything, mock.AnythingOfType("*model.RefreshRequest")).
			Return(nil, auth.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(`{"refreshToken": "garbage"}`))
		w := httptest.NewRecorder()

		handler.Refresh(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing token", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(`{}`))
		w := httptest.NewRecorder()

		handler.Refresh(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Refresh")
	})
}
