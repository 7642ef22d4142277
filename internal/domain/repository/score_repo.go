package repository

import (
	"github.com/fsociety/arcade-api/internal/domain/entity"
)

// ScoreRepository определяет методы для работы с результатами игр
type ScoreRepository interface {
	// Create сохраняет результат завершённой игровой сессии
	Create(score *entity.GameScore) error

	// GetUserScores возвращает результаты пользователя, свежие первыми
	GetUserScores(userID uint) ([]entity.GameScore, error)

	// GetUserBestScores возвращает до limit лучших результатов пользователя по очкам
	GetUserBestScores(userID uint, limit int) ([]entity.GameScore, error)
}
