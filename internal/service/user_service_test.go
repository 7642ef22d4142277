package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fsociety/arcade-api/internal/domain/entity"
	apperrors "github.com/fsociety/arcade-api/internal/pkg/errors"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateProfile(userID uint, updates map[string]interface{}) error {
	args := m.Called(userID, updates)
	return args.Error(0)
}

func TestUserService_Create_PasswordStoredAsIs(t *testing.T) {
	// Пароль уходит в репозиторий без преобразований — хеширования в этом
	// продукте нет
	user := &entity.User{Username: "player", Email: "player@example.com", Password: "plain-secret"}

	mockRepo := new(MockUserRepo)
	mockRepo.On("Create", user).Return(nil)

	userService := NewUserService(mockRepo)

	err := userService.Create(user)

	require.NoError(t, err)
	assert.Equal(t, "plain-secret", user.Password)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	userService := NewUserService(mockRepo)

	user, err := userService.GetByID(99)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, user)
}

func TestUserService_UpdateProfile(t *testing.T) {
	updates := map[string]interface{}{"username": "renamed"}

	mockRepo := new(MockUserRepo)
	mockRepo.On("UpdateProfile", uint(1), updates).Return(nil)

	userService := NewUserService(mockRepo)

	err := userService.UpdateProfile(1, updates)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
