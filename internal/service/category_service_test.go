package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fsociety/arcade-api/internal/domain/entity"
	apperrors "github.com/fsociety/arcade-api/internal/pkg/errors"
)

// ============================================================================
// Моки для CategoryService
// ============================================================================

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) List() ([]entity.GameCategory, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GameCategory), args.Error(1)
}

func (m *MockCategoryRepo) GetByID(id uint) (*entity.GameCategory, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GameCategory), args.Error(1)
}

func (m *MockCategoryRepo) Create(category *entity.GameCategory) error {
	args := m.Called(category)
	return args.Error(0)
}

type MockCacheRepo struct {
	mock.Mock
}

func (m *MockCacheRepo) Set(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepo) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepo) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheRepo) Increment(key string) (int64, error) {
	args := m.Called(key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepo) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepo) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

// ============================================================================
// Тесты для CategoryService
// ============================================================================

func testCategories() []entity.GameCategory {
	return []entity.GameCategory{
		{ID: 1, Name: "Memory", Difficulty: "easy", Color: "#4caf50", Icon: "brain"},
		{ID: 2, Name: "Logic", Difficulty: "hard", Color: "#f44336", Icon: "puzzle"},
	}
}

func TestCategoryService_List_CacheMissFallsBackToDB(t *testing.T) {
	// Промах кеша: идём в БД и заполняем кеш результатом
	categories := testCategories()

	mockRepo := new(MockCategoryRepo)
	mockRepo.On("List").Return(categories, nil)

	mockCache := new(MockCacheRepo)
	mockCache.On("GetJSON", categoriesCacheKey, mock.Anything).Return(apperrors.ErrNotFound)
	mockCache.On("SetJSON", categoriesCacheKey, categories, categoriesCacheTTL).Return(nil)

	categoryService := NewCategoryService(mockRepo, mockCache)

	result, err := categoryService.List()

	require.NoError(t, err)
	assert.Equal(t, categories, result)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestCategoryService_List_CacheHitSkipsDB(t *testing.T) {
	// Попадание в кеш: репозиторий не трогаем вообще
	categories := testCategories()
	payload, err := json.Marshal(categories)
	require.NoError(t, err)

	mockRepo := new(MockCategoryRepo)

	mockCache := new(MockCacheRepo)
	mockCache.On("GetJSON", categoriesCacheKey, mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(1).(*[]entity.GameCategory)
			require.NoError(t, json.Unmarshal(payload, dest))
		}).
		Return(nil)

	categoryService := NewCategoryService(mockRepo, mockCache)

	result, err := categoryService.List()

	require.NoError(t, err)
	assert.Equal(t, categories, result)
	mockRepo.AssertNotCalled(t, "List")
	mockCache.AssertExpectations(t)
}

func TestCategoryService_List_CacheErrorIsNotFatal(t *testing.T) {
	// Redis лежит — список всё равно отдается из БД, ошибка записи кеша
	// тоже проглатывается
	categories := testCategories()
	cacheErr := errors.New("redis: connection refused")

	mockRepo := new(MockCategoryRepo)
	mockRepo.On("List").Return(categories, nil)

	mockCache := new(MockCacheRepo)
	mockCache.On("GetJSON", categoriesCacheKey, mock.Anything).Return(cacheErr)
	mockCache.On("SetJSON", categoriesCacheKey, categories, categoriesCacheTTL).Return(cacheErr)

	categoryService := NewCategoryService(mockRepo, mockCache)

	result, err := categoryService.List()

	require.NoError(t, err)
	assert.Equal(t, categories, result)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_List_NilCache(t *testing.T) {
	// Сервис должен работать и без кеша
	categories := testCategories()

	mockRepo := new(MockCategoryRepo)
	mockRepo.On("List").Return(categories, nil)

	categoryService := NewCategoryService(mockRepo, nil)

	result, err := categoryService.List()

	require.NoError(t, err)
	assert.Equal(t, categories, result)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_List_DBError(t *testing.T) {
	dbErr := errors.New("db is down")

	mockRepo := new(MockCategoryRepo)
	mockRepo.On("List").Return(nil, dbErr)

	mockCache := new(MockCacheRepo)
	mockCache.On("GetJSON", categoriesCacheKey, mock.Anything).Return(apperrors.ErrNotFound)

	categoryService := NewCategoryService(mockRepo, mockCache)

	result, err := categoryService.List()

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, result)
}

func TestCategoryService_Create_InvalidatesCache(t *testing.T) {
	category := &entity.GameCategory{Name: "Focus", Difficulty: "medium", Color: "#2196f3", Icon: "target"}

	mockRepo := new(MockCategoryRepo)
	mockRepo.On("Create", category).Return(nil)

	mockCache := new(MockCacheRepo)
	mockCache.On("Delete", categoriesCacheKey).Return(nil)

	categoryService := NewCategoryService(mockRepo, mockCache)

	err := categoryService.Create(category)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestCategoryService_Create_RepoErrorSkipsInvalidation(t *testing.T) {
	// При ошибке вставки кеш не трогаем: данные в БД не изменились
	category := &entity.GameCategory{Name: "Focus"}
	dbErr := errors.New("insert failed")

	mockRepo := new(MockCategoryRepo)
	mockRepo.On("Create", category).Return(dbErr)

	mockCache := new(MockCacheRepo)

	categoryService := NewCategoryService(mockRepo, mockCache)

	err := categoryService.Create(category)

	assert.ErrorIs(t, err, dbErr)
	mockCache.AssertNotCalled(t, "Delete")
}
