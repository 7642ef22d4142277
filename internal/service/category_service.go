package service

import (
	"errors"
	"log"
	"time"

	"github.com/fsociety/arcade-api/internal/domain/entity"
	"github.com/fsociety/arcade-api/internal/domain/repository"
	apperrors "github.com/fsociety/arcade-api/internal/pkg/errors"
)

const (
	categoriesCacheKey = "categories:all"
	categoriesCacheTTL = 5 * time.Minute
)

// CategoryService предоставляет методы для работы с категориями игр.
// Список категорий — статические справочные данные, поэтому кешируется
// в Redis. Сам агрегатор статистики кеш не использует.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository, cacheRepo repository.CacheRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
	}
}

// List возвращает все категории игр, по возможности из кеша.
// Ошибки кеша не фатальны: при любой проблеме идём в БД.
func (s *CategoryService) List() ([]entity.GameCategory, error) {
	if s.cacheRepo != nil {
		var cached []entity.GameCategory
		err := s.cacheRepo.GetJSON(categoriesCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[CategoryService] Ошибка чтения кеша категорий: %v", err)
		}
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(categoriesCacheKey, categories, categoriesCacheTTL); err != nil {
			log.Printf("[CategoryService] Ошибка записи кеша категорий: %v", err)
		}
	}

	return categories, nil
}

// Create создает новую категорию и сбрасывает кеш списка
func (s *CategoryService) Create(category *entity.GameCategory) error {
	if err := s.categoryRepo.Create(category); err != nil {
		return err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Delete(categoriesCacheKey); err != nil {
			log.Printf("[CategoryService] Ошибка инвалидации кеша категорий: %v", err)
		}
	}
	return nil
}
