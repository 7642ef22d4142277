package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Ошибки валидации токена
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// DemoClaims — полезная нагрузка демо-токена. Токен не привязан к записи
// в таблице users: в нём только email и username из захардкоженного списка.
type DemoClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService выпускает и проверяет демо-токены (HS256)
type JWTService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService создает новый сервис токенов
func NewJWTService(secret string, expiryHrs int) (*JWTService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if expiryHrs <= 0 {
		expiryHrs = 24
	}
	return &JWTService{
		secret: []byte(secret),
		expiry: time.Duration(expiryHrs) * time.Hour,
	}, nil
}

// GenerateToken выпускает подписанный токен для пары email/username
func (s *JWTService) GenerateToken(email, username string) (string, error) {
	now := time.Now()
	claims := DemoClaims{
		Email:    email,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims
func (s *JWTService) ParseToken(tokenString string) (*DemoClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &DemoClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*DemoClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
