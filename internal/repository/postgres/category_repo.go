package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fsociety/arcade-api/internal/domain/entity"
	apperrors "github.com/fsociety/arcade-api/internal/pkg/errors"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий игр
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// List возвращает все категории игр
func (r *CategoryRepo) List() ([]entity.GameCategory, error) {
	var categories []entity.GameCategory
	err := r.db.Order("id").Find(&categories).Error
	// Пустой слайс — валидный результат, ErrRecordNotFound здесь не возникает
	return categories, err
}

// GetByID возвращает категорию по ID
func (r *CategoryRepo) GetByID(id uint) (*entity.GameCategory, error) {
	var category entity.GameCategory
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create создает новую категорию
func (r *CategoryRepo) Create(category *entity.GameCategory) error {
	return r.db.Create(category).Error
}
