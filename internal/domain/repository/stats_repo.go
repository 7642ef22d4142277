package repository

// StatsRepository определяет пять агрегатных запросов, из которых
// собирается сводка статистики пользователя. Каждый метод — один
// независимый read-only запрос; между ними нет транзакции, порядок
// выполнения значения не имеет.
type StatsRepository interface {
	// CountUserScores возвращает количество сыгранных игр пользователя
	CountUserScores(userID uint) (int64, error)

	// SumTimeCompleted возвращает суммарное время игр в секундах.
	// Сумма по пустому множеству — 0, не NULL.
	SumTimeCompleted(userID uint) (int64, error)

	// CountActiveDays возвращает количество РАЗНЫХ календарных дат с играми
	// за последние days дней от текущего момента сервера
	CountActiveDays(userID uint, days int) (int64, error)

	// CountUserAchievements возвращает количество бейджей пользователя
	CountUserAchievements(userID uint) (int64, error)

	// UserScoreRank возвращает позицию из оконной функции
	// row_number() over (order by sum(score) desc), вычисленной ТОЛЬКО по
	// строкам данного пользователя. Это не настоящий глобальный рейтинг:
	// при наличии хотя бы одной игры результат равен 1. Если игр нет,
	// возвращает apperrors.ErrNotFound.
	UserScoreRank(userID uint) (int64, error)
}
