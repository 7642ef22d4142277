package service

import (
	"errors"

	"github.com/fsociety/arcade-api/internal/domain/entity"
	"github.com/fsociety/arcade-api/internal/domain/repository"
	apperrors "github.com/fsociety/arcade-api/internal/pkg/errors"
)

// streakWindowDays — размер скользящего окна для подсчёта активных дней
const streakWindowDays = 30

// StatsService собирает сводку статистики пользователя из пяти независимых
// агрегатных запросов. Репозиторий передаётся при создании — глобального
// хендла хранилища нет.
type StatsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService создает новый сервис статистики
func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
	}
}

// GetUserStats возвращает сводку статистики пользователя.
//
// Пользователь без единой игры — валидный случай: все счётчики равны 0,
// ранг — 999. Ошибка любого из подзапросов проваливает весь вызов без
// частично заполненной сводки; ретраев нет, ошибка хранилища отдаётся
// наверх без изменений.
func (s *StatsService) GetUserStats(userID uint) (*entity.UserStats, error) {
	gamesPlayed, err := s.statsRepo.CountUserScores(userID)
	if err != nil {
		return nil, err
	}

	timeSpent, err := s.statsRepo.SumTimeCompleted(userID)
	if err != nil {
		return nil, err
	}

	streak, err := s.statsRepo.CountActiveDays(userID, streakWindowDays)
	if err != nil {
		return nil, err
	}

	badges, err := s.statsRepo.CountUserAchievements(userID)
	if err != nil {
		return nil, err
	}

	// Отсутствие строки у оконного запроса — не ошибка, а "нет игр":
	// подставляется ранг по умолчанию. Любая другая ошибка — сбой всего вызова.
	rank, err := s.statsRepo.UserScoreRank(userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		rank = entity.DefaultRank
	}

	return &entity.UserStats{
		TotalGamesPlayed: gamesPlayed,
		TotalTimeSpent:   timeSpent,
		CurrentStreak:    streak,
		TotalBadges:      badges,
		GlobalRank:       rank,
	}, nil
}
