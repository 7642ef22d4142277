package repository

import (
	"github.com/fsociety/arcade-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями игр
type CategoryRepository interface {
	List() ([]entity.GameCategory, error)
	GetByID(id uint) (*entity.GameCategory, error)
	Create(category *entity.GameCategory) error
}
