package service

import (
	"github.com/fsociety/arcade-api/internal/domain/entity"
	"github.com/fsociety/arcade-api/internal/domain/repository"
)

// UserService предоставляет CRUD-доступ к таблице users.
// Демо-аутентификация этим сервисом НЕ пользуется: логин идёт по
// захардкоженному списку. Поверхность сохранена для полноты хранилища
// и не получает никакой дополнительной логики.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Create создает нового пользователя
func (s *UserService) Create(user *entity.User) error {
	return s.userRepo.Create(user)
}

// GetByID возвращает пользователя по ID
func (s *UserService) GetByID(id uint) (*entity.User, error) {
	return s.userRepo.GetByID(id)
}

// GetByEmail возвращает пользователя по email
func (s *UserService) GetByEmail(email string) (*entity.User, error) {
	return s.userRepo.GetByEmail(email)
}

// GetByUsername возвращает пользователя по имени
func (s *UserService) GetByUsername(username string) (*entity.User, error) {
	return s.userRepo.GetByUsername(username)
}

// UpdateProfile обновляет отдельные поля пользователя
func (s *UserService) UpdateProfile(userID uint, updates map[string]interface{}) error {
	return s.userRepo.UpdateProfile(userID, updates)
}
