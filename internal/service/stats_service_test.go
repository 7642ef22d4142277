package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fsociety/arcade-api/internal/domain/entity"
	apperrors "github.com/fsociety/arcade-api/internal/pkg/errors"
)

// ============================================================================
// Моки для StatsService
// ============================================================================

// MockStatsRepo реализует repository.StatsRepository
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) CountUserScores(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) SumTimeCompleted(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) CountActiveDays(userID uint, days int) (int64, error) {
	args := m.Called(userID, days)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) CountUserAchievements(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) UserScoreRank(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// ============================================================================
// Тесты для StatsService
// ============================================================================

func TestStatsService_GetUserStats_EmptyUser(t *testing.T) {
	// Пользователь без единой игры и без бейджей — валидный случай:
	// все счётчики нулевые, ранг подставляется по умолчанию (999)
	mockRepo := new(MockStatsRepo)
	mockRepo.On("CountUserScores", uint(42)).Return(int64(0), nil)
	mockRepo.On("SumTimeCompleted", uint(42)).Return(int64(0), nil)
	mockRepo.On("CountActiveDays", uint(42), 30).Return(int64(0), nil)
	mockRepo.On("CountUserAchievements", uint(42)).Return(int64(0), nil)
	mockRepo.On("UserScoreRank", uint(42)).Return(int64(0), apperrors.ErrNotFound)

	statsService := NewStatsService(mockRepo)

	stats, err := statsService.GetUserStats(42)

	require.NoError(t, err, "Пустой пользователь не должен приводить к ошибке")
	assert.Equal(t, &entity.UserStats{
		TotalGamesPlayed: 0,
		TotalTimeSpent:   0,
		CurrentStreak:    0,
		TotalBadges:      0,
		GlobalRank:       999,
	}, stats)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_GetUserStats_SingleGame(t *testing.T) {
	// Одна игра сегодня: score=50, time=120 — streak считается как 1 активный день
	mockRepo := new(MockStatsRepo)
	mockRepo.On("CountUserScores", uint(7)).Return(int64(1), nil)
	mockRepo.On("SumTimeCompleted", uint(7)).Return(int64(120), nil)
	mockRepo.On("CountActiveDays", uint(7), 30).Return(int64(1), nil)
	mockRepo.On("CountUserAchievements", uint(7)).Return(int64(0), nil)
	mockRepo.On("UserScoreRank", uint(7)).Return(int64(1), nil)

	statsService := NewStatsService(mockRepo)

	stats, err := statsService.GetUserStats(7)

	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalGamesPlayed)
	assert.Equal(t, int64(120), stats.TotalTimeSpent)
	assert.Equal(t, int64(1), stats.CurrentStreak)
	assert.Equal(t, int64(0), stats.TotalBadges)
	assert.Equal(t, int64(1), stats.GlobalRank)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_GetUserStats_RankScopedToOwnRows(t *testing.T) {
	// Известное воспроизводимое поведение: оконный запрос ранга
	// ограничен строками самого пользователя, поэтому при наличии игр
	// результат равен 1 независимо от результатов других пользователей.
	// Это НЕ настоящий глобальный рейтинг — семантика сохранена намеренно.
	mockRepo := new(MockStatsRepo)
	mockRepo.On("CountUserScores", uint(3)).Return(int64(25), nil)
	mockRepo.On("SumTimeCompleted", uint(3)).Return(int64(4000), nil)
	mockRepo.On("CountActiveDays", uint(3), 30).Return(int64(12), nil)
	mockRepo.On("CountUserAchievements", uint(3)).Return(int64(5), nil)
	mockRepo.On("UserScoreRank", uint(3)).Return(int64(1), nil)

	statsService := NewStatsService(mockRepo)

	stats, err := statsService.GetUserStats(3)

	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.GlobalRank, "Ранг в окне своих же строк всегда 1 при наличии игр")
	mockRepo.AssertExpectations(t)
}

func TestStatsService_GetUserStats_DefaultsAreIndependent(t *testing.T) {
	// Отсутствие строки у рангового запроса не должно затирать валидные
	// значения остальных подзапросов
	mockRepo := new(MockStatsRepo)
	mockRepo.On("CountUserScores", uint(9)).Return(int64(0), nil)
	mockRepo.On("SumTimeCompleted", uint(9)).Return(int64(0), nil)
	mockRepo.On("CountActiveDays", uint(9), 30).Return(int64(0), nil)
	// Бейджи могли быть выданы вручную и без игр
	mockRepo.On("CountUserAchievements", uint(9)).Return(int64(3), nil)
	mockRepo.On("UserScoreRank", uint(9)).Return(int64(0), apperrors.ErrNotFound)

	statsService := NewStatsService(mockRepo)

	stats, err := statsService.GetUserStats(9)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalBadges, "Валидное значение бейджей не должно пострадать от дефолта ранга")
	assert.Equal(t, int64(999), stats.GlobalRank)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_GetUserStats_SubQueryFailureFailsWholeCall(t *testing.T) {
	// Ошибка любого подзапроса проваливает весь вызов: частично
	// заполненная сводка не возвращается, ошибка хранилища отдаётся как есть
	storeErr := errors.New("connection refused")

	tests := []struct {
		name  string
		setup func(m *MockStatsRepo)
	}{
		{
			name: "games count fails",
			setup: func(m *MockStatsRepo) {
				m.On("CountUserScores", uint(5)).Return(int64(0), storeErr)
			},
		},
		{
			name: "time sum fails",
			setup: func(m *MockStatsRepo) {
				m.On("CountUserScores", uint(5)).Return(int64(2), nil)
				m.On("SumTimeCompleted", uint(5)).Return(int64(0), storeErr)
			},
		},
		{
			name: "active days fails",
			setup: func(m *MockStatsRepo) {
				m.On("CountUserScores", uint(5)).Return(int64(2), nil)
				m.On("SumTimeCompleted", uint(5)).Return(int64(300), nil)
				m.On("CountActiveDays", uint(5), 30).Return(int64(0), storeErr)
			},
		},
		{
			name: "badges count fails",
			setup: func(m *MockStatsRepo) {
				m.On("CountUserScores", uint(5)).Return(int64(2), nil)
				m.On("SumTimeCompleted", uint(5)).Return(int64(300), nil)
				m.On("CountActiveDays", uint(5), 30).Return(int64(2), nil)
				m.On("CountUserAchievements", uint(5)).Return(int64(0), storeErr)
			},
		},
		{
			name: "rank fails with non-NotFound error",
			setup: func(m *MockStatsRepo) {
				m.On("CountUserScores", uint(5)).Return(int64(2), nil)
				m.On("SumTimeCompleted", uint(5)).Return(int64(300), nil)
				m.On("CountActiveDays", uint(5), 30).Return(int64(2), nil)
				m.On("CountUserAchievements", uint(5)).Return(int64(1), nil)
				m.On("UserScoreRank", uint(5)).Return(int64(0), storeErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockStatsRepo)
			tt.setup(mockRepo)

			statsService := NewStatsService(mockRepo)

			stats, err := statsService.GetUserStats(5)

			require.Error(t, err)
			assert.ErrorIs(t, err, storeErr, "Ошибка хранилища должна отдаваться без изменений")
			assert.Nil(t, stats, "Частичная сводка не возвращается")
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStatsService_GetUserStats_Idempotent(t *testing.T) {
	// Два вызова подряд без записей между ними дают идентичный результат:
	// чтение не имеет побочных эффектов
	mockRepo := new(MockStatsRepo)
	mockRepo.On("CountUserScores", uint(11)).Return(int64(4), nil).Twice()
	mockRepo.On("SumTimeCompleted", uint(11)).Return(int64(600), nil).Twice()
	mockRepo.On("CountActiveDays", uint(11), 30).Return(int64(3), nil).Twice()
	mockRepo.On("CountUserAchievements", uint(11)).Return(int64(2), nil).Twice()
	mockRepo.On("UserScoreRank", uint(11)).Return(int64(1), nil).Twice()

	statsService := NewStatsService(mockRepo)

	first, err := statsService.GetUserStats(11)
	require.NoError(t, err)

	second, err := statsService.GetUserStats(11)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockRepo.AssertExpectations(t)
}

// ============================================================================
// Свойства уровня SQL (distinct-даты streak, изоляция по user_id, COALESCE
// суммы по пустому множеству) проверяются интеграционно с реальной БД:
// агрегатные запросы используют оконные функции и make_interval PostgreSQL.
// Рекомендуется testcontainers.
// ============================================================================
