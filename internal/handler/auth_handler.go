package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsociety/arcade-api/internal/handler/dto"
	"github.com/fsociety/arcade-api/internal/service"
)

// AuthHandler обрабатывает демо-эндпоинты аутентификации.
// Логин проверяет только захардкоженный список учёток и НИКОГДА не ходит
// в таблицу users — этот разрыв сохранён сознательно.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest представляет запрос на регистрацию
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ForgotPasswordRequest представляет запрос на сброс пароля
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Login обрабатывает POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		log.Printf("[AuthHandler] Ошибка логина: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  user,
	})
}

// Signup обрабатывает POST /api/auth/signup (демо-режим, ничего не создает)
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	message := h.authService.Signup(req.Username, req.Email, req.Password)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// ForgotPassword обрабатывает POST /api/auth/forgot-password (демо-режим)
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	message := h.authService.ForgotPassword(c.Request.Context(), req.Email)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// Health обрабатывает GET /api/health
func (h *AuthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "FSOCIETY Arcade API is running"})
}
