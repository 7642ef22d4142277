package postgres

import (
	"gorm.io/gorm"

	"github.com/fsociety/arcade-api/internal/domain/entity"
)

// AchievementRepo реализует repository.AchievementRepository
type AchievementRepo struct {
	db *gorm.DB
}

// NewAchievementRepo создает новый репозиторий достижений
func NewAchievementRepo(db *gorm.DB) *AchievementRepo {
	return &AchievementRepo{db: db}
}

// Create сохраняет новое достижение
func (r *AchievementRepo) Create(achievement *entity.UserAchievement) error {
	return r.db.Create(achievement).Error
}

// GetUserAchievements возвращает достижения пользователя, свежие первыми
func (r *AchievementRepo) GetUserAchievements(userID uint) ([]entity.UserAchievement, error) {
	var achievements []entity.UserAchievement
	err := r.db.Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&achievements).Error
	return achievements, err
}
