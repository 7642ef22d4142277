package entity

import (
	"strings"
	"time"
)

// User представляет пользователя в системе.
// ВНИМАНИЕ: пароль хранится как есть (без хеширования) — это наблюдаемый
// контракт текущей версии продукта. Демо-аутентификация к этой таблице
// вообще не обращается.
type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Username         string     `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email            string     `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password         string     `gorm:"size:255;not null" json:"-"`
	IsVerified       bool       `gorm:"not null;default:false" json:"is_verified"`
	VerificationCode string     `gorm:"size:100;default:''" json:"-"`
	ResetToken       string     `gorm:"size:100;default:''" json:"-"`
	ResetTokenExpiry *time.Time `gorm:"type:timestamp" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (User) TableName() string {
	return "users"
}

// DisplayName возвращает имя для отображения: username, либо локальную часть email
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.Username) != "" {
		return u.Username
	}
	if idx := strings.Index(u.Email, "@"); idx > 0 {
		return u.Email[:idx]
	}
	return u.Email
}
