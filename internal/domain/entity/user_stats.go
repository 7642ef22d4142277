package entity

// UserStats — производная сводка статистики пользователя.
// Никогда не сохраняется в БД, вычисляется заново на каждый запрос.
// Имена JSON-полей повторяют API дашборда (camelCase).
//
// CurrentStreak — это количество РАЗНЫХ календарных дат с играми за
// последние 30 дней, а не настоящий streak подряд идущих дней.
// GlobalRank считается в окне только по строкам самого пользователя,
// поэтому для пользователя хотя бы с одной игрой он обычно равен 1,
// а при отсутствии игр подставляется 999. Обе упрощённые семантики
// воспроизводятся намеренно.
type UserStats struct {
	TotalGamesPlayed int64 `json:"totalGamesPlayed"`
	TotalTimeSpent   int64 `json:"totalTimeSpent"` // в секундах
	CurrentStreak    int64 `json:"currentStreak"`
	TotalBadges      int64 `json:"totalBadges"`
	GlobalRank       int64 `json:"globalRank"`
}

// DefaultRank — значение GlobalRank, когда у пользователя нет ни одной игры
const DefaultRank = 999
