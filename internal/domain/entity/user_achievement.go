package entity

import "time"

// UserAchievement представляет полученный пользователем бейдж.
// Таблица append-only: путей обновления или удаления не существует.
type UserAchievement struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	AchievementType  string    `gorm:"size:50;not null" json:"achievement_type"` // streak, score, time и т.д.
	AchievementValue int       `gorm:"not null" json:"achievement_value"`
	EarnedAt         time.Time `gorm:"not null" json:"earned_at"`
}

// TableName определяет имя таблицы для GORM
func (UserAchievement) TableName() string {
	return "user_achievements"
}
