package service

import (
	"context"
	"log"
	"strings"

	"github.com/fsociety/arcade-api/internal/handler/dto"
	"github.com/fsociety/arcade-api/pkg/auth"
)

// demoCredential — одна пара email/пароль из демо-списка
type demoCredential struct {
	Email    string
	Password string
}

// Демо-аутентификация: список учёток захардкожен, таблица users не
// используется вообще. Это наблюдаемый контракт продукта, не недоделка,
// которую нужно "дочинить".
var demoCredentials = []demoCredential{
	{Email: "admin@fsociety.com", Password: "password123"},
	{Email: "user@test.com", Password: "test123"},
	{Email: "hacker@demo.com", Password: "demo123"},
}

// Канонические ответы демо-эндпоинтов
const (
	SignupDemoMessage         = "Account created successfully! You can now log in with any demo credentials."
	ForgotPasswordDemoMessage = "Reset instructions sent! (Demo mode - use any valid credentials)"
)

// AuthService реализует демо-аутентификацию
type AuthService struct {
	jwtService   *auth.JWTService
	emailService EmailService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(jwtService *auth.JWTService, emailService EmailService) *AuthService {
	return &AuthService{
		jwtService:   jwtService,
		emailService: emailService,
	}
}

// Login проверяет пару email/пароль по демо-списку и выдает подписанный
// токен. Имя пользователя — локальная часть email.
func (s *AuthService) Login(email, password string) (string, *dto.DemoUserDTO, error) {
	var matched *demoCredential
	for i := range demoCredentials {
		if demoCredentials[i].Email == email && demoCredentials[i].Password == password {
			matched = &demoCredentials[i]
			break
		}
	}
	if matched == nil {
		return "", nil, ErrInvalidCredentials
	}

	username := strings.Split(matched.Email, "@")[0]

	token, err := s.jwtService.GenerateToken(matched.Email, username)
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации токена для %s: %v", matched.Email, err)
		return "", nil, err
	}

	return token, &dto.DemoUserDTO{
		Email:    matched.Email,
		Username: username,
	}, nil
}

// Signup в демо-режиме ничего не создает и возвращает канонический ответ
func (s *AuthService) Signup(username, email, password string) string {
	log.Printf("[AuthService] Демо-signup для %s (учётка не сохраняется)", email)
	return SignupDemoMessage
}

// ForgotPassword возвращает канонический демо-ответ. Отправка письма —
// best effort через EmailService: по умолчанию noop, реальный провайдер
// включается только конфигурацией. Ошибка отправки не меняет ответ.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) string {
	if err := s.emailService.SendResetInstructions(ctx, email); err != nil {
		log.Printf("[AuthService] Ошибка отправки reset-инструкций для %s: %v", email, err)
	}
	return ForgotPasswordDemoMessage
}
