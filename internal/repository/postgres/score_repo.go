package postgres

import (
	"gorm.io/gorm"

	"github.com/fsociety/arcade-api/internal/domain/entity"
)

// ScoreRepo реализует repository.ScoreRepository
type ScoreRepo struct {
	db *gorm.DB
}

// NewScoreRepo создает новый репозиторий результатов игр
func NewScoreRepo(db *gorm.DB) *ScoreRepo {
	return &ScoreRepo{db: db}
}

// Create сохраняет результат игровой сессии
func (r *ScoreRepo) Create(score *entity.GameScore) error {
	return r.db.Create(score).Error
}

// GetUserScores возвращает все результаты пользователя, свежие первыми
func (r *ScoreRepo) GetUserScores(userID uint) ([]entity.GameScore, error) {
	var scores []entity.GameScore
	err := r.db.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&scores).Error
	return scores, err
}

// GetUserBestScores возвращает до limit лучших результатов пользователя
func (r *ScoreRepo) GetUserBestScores(userID uint, limit int) ([]entity.GameScore, error) {
	var scores []entity.GameScore
	err := r.db.Where("user_id = ?", userID).
		Order("score DESC").
		Limit(limit).
		Find(&scores).Error
	return scores, err
}
