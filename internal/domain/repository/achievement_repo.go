package repository

import (
	"github.com/fsociety/arcade-api/internal/domain/entity"
)

// AchievementRepository определяет методы для работы с достижениями.
// Достижения append-only: обновления и удаления не предусмотрены.
type AchievementRepository interface {
	Create(achievement *entity.UserAchievement) error

	// GetUserAchievements возвращает достижения пользователя, свежие первыми
	GetUserAchievements(userID uint) ([]entity.UserAchievement, error)
}
