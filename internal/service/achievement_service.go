package service

import (
	"time"

	"github.com/fsociety/arcade-api/internal/domain/entity"
	"github.com/fsociety/arcade-api/internal/domain/repository"
)

// AchievementService предоставляет методы для работы с достижениями
type AchievementService struct {
	achievementRepo repository.AchievementRepository
}

// NewAchievementService создает новый сервис достижений
func NewAchievementService(achievementRepo repository.AchievementRepository) *AchievementService {
	return &AchievementService{
		achievementRepo: achievementRepo,
	}
}

// Award сохраняет новое достижение (append-only)
func (s *AchievementService) Award(achievement *entity.UserAchievement) error {
	if achievement.EarnedAt.IsZero() {
		achievement.EarnedAt = time.Now()
	}
	return s.achievementRepo.Create(achievement)
}

// GetUserAchievements возвращает достижения пользователя, свежие первыми
func (s *AchievementService) GetUserAchievements(userID uint) ([]entity.UserAchievement, error) {
	return s.achievementRepo.GetUserAchievements(userID)
}
