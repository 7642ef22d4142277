package entity

import "time"

// GameCategory представляет категорию игр для тренировки мозга.
// Статические справочные данные: жизненный цикл — только создание и список.
type GameCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Difficulty  string    `gorm:"size:20;not null" json:"difficulty"` // Easy, Medium, Hard (по конвенции, не энфорсится)
	Color       string    `gorm:"size:50;not null" json:"color"`      // CSS-класс цвета
	Icon        string    `gorm:"size:50;not null" json:"icon"`       // Идентификатор иконки
	CreatedAt   time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (GameCategory) TableName() string {
	return "game_categories"
}
