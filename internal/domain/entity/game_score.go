package entity

import "time"

// GameScore представляет результат одной завершённой игровой сессии.
// Создаётся один раз и после этого не изменяется.
type GameScore struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	CategoryID    uint      `gorm:"not null;index" json:"category_id"`
	Score         int       `gorm:"not null" json:"score"`
	TimeCompleted int       `gorm:"not null" json:"time_completed"` // в секундах
	CompletedAt   time.Time `gorm:"not null;index" json:"completed_at"`
}

// TableName определяет имя таблицы для GORM
func (GameScore) TableName() string {
	return "game_scores"
}
