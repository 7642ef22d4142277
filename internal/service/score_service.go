package service

import (
	"log"
	"time"

	"github.com/fsociety/arcade-api/internal/domain/entity"
	"github.com/fsociety/arcade-api/internal/domain/repository"
)

// bestScoresLimit — количество лучших результатов в выдаче
const bestScoresLimit = 10

// ScoreBroadcaster рассылает событие о новом результате подписчикам ленты
type ScoreBroadcaster interface {
	BroadcastScore(score *entity.GameScore)
}

// ScoreService предоставляет методы для работы с результатами игр
type ScoreService struct {
	scoreRepo   repository.ScoreRepository
	broadcaster ScoreBroadcaster
}

// NewScoreService создает новый сервис результатов
func NewScoreService(scoreRepo repository.ScoreRepository, broadcaster ScoreBroadcaster) *ScoreService {
	return &ScoreService{
		scoreRepo:   scoreRepo,
		broadcaster: broadcaster,
	}
}

// RecordScore сохраняет результат завершённой игровой сессии и рассылает
// его в ленту. Запись иммутабельна: путей обновления не существует.
func (s *ScoreService) RecordScore(score *entity.GameScore) error {
	if score.CompletedAt.IsZero() {
		score.CompletedAt = time.Now()
	}

	if err := s.scoreRepo.Create(score); err != nil {
		return err
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastScore(score)
	}

	log.Printf("[ScoreService] Результат сохранён: user=%d category=%d score=%d",
		score.UserID, score.CategoryID, score.Score)
	return nil
}

// GetUserScores возвращает все результаты пользователя, свежие первыми
func (s *ScoreService) GetUserScores(userID uint) ([]entity.GameScore, error) {
	return s.scoreRepo.GetUserScores(userID)
}

// GetUserBestScores возвращает до 10 лучших результатов пользователя
func (s *ScoreService) GetUserBestScores(userID uint) ([]entity.GameScore, error) {
	return s.scoreRepo.GetUserBestScores(userID, bestScoresLimit)
}
