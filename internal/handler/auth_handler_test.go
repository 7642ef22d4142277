package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsociety/arcade-api/internal/handler/dto"
	"github.com/fsociety/arcade-api/internal/service"
	"github.com/fsociety/arcade-api/pkg/auth"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService, err := auth.NewJWTService("test-secret", 1)
	require.NoError(t, err)
	authService := service.NewAuthService(jwtService, &service.NoopEmailService{})
	authHandler := NewAuthHandler(authService)

	router := gin.New()
	router.POST("/api/auth/login", authHandler.Login)
	router.POST("/api/auth/signup", authHandler.Signup)
	router.POST("/api/auth/forgot-password", authHandler.ForgotPassword)
	router.GET("/api/health", authHandler.Health)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login_Success(t *testing.T) {
	router := setupAuthRouter(t)

	w := postJSON(router, "/api/auth/login", gin.H{
		"email":    "admin@fsociety.com",
		"password": "password123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "admin@fsociety.com", resp.User.Email)
	assert.Equal(t, "admin", resp.User.Username)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	router := setupAuthRouter(t)

	w := postJSON(router, "/api/auth/login", gin.H{
		"email":    "admin@fsociety.com",
		"password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid credentials", resp["message"])
}

func TestAuthHandler_Login_ValidationErrors(t *testing.T) {
	router := setupAuthRouter(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"password": "password123"}},
		{"missing password", gin.H{"email": "admin@fsociety.com"}},
		{"malformed email", gin.H{"email": "not-an-email", "password": "password123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/auth/login", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Signup_ReturnsCannedMessage(t *testing.T) {
	// Signup в демо-режиме отвечает 200 с каноническим текстом и ничего
	// не создает
	router := setupAuthRouter(t)

	w := postJSON(router, "/api/auth/signup", gin.H{
		"username": "newuser",
		"email":    "newuser@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, service.SignupDemoMessage, resp.Message)
}

func TestAuthHandler_ForgotPassword_ReturnsCannedMessage(t *testing.T) {
	router := setupAuthRouter(t)

	w := postJSON(router, "/api/auth/forgot-password", gin.H{
		"email": "admin@fsociety.com",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, service.ForgotPasswordDemoMessage, resp.Message)
}

func TestAuthHandler_Health(t *testing.T) {
	router := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp["status"])
}
