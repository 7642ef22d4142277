package repository

import (
	"github.com/fsociety/arcade-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями.
// ВНИМАНИЕ: демо-аутентификация этот интерфейс не использует — поверхность
// сохранена для полноты хранилища, без дополнительной логики.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateProfile(userID uint, updates map[string]interface{}) error
}
