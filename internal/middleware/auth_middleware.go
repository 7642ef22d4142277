package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsociety/arcade-api/pkg/auth"
)

// Ключи контекста Gin для данных демо-токена
const (
	ContextEmailKey    = "auth_email"
	ContextUsernameKey = "auth_username"
)

// AuthMiddleware проверяет демо-токены. Проверяется только подпись и срок
// действия — в таблицу users middleware не ходит, у демо-учёток там нет
// записей.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware создает новый auth middleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAuth требует валидный Bearer-токен
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.jwtService.ParseToken(parts[1])
		if err != nil {
			status := http.StatusUnauthorized
			msg := "Invalid token"
			if err == auth.ErrExpiredToken {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}
