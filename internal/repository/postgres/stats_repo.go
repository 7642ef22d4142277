package postgres

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/fsociety/arcade-api/internal/domain/entity"
	apperrors "github.com/fsociety/arcade-api/internal/pkg/errors"
)

// StatsRepo реализует repository.StatsRepository.
// Каждый метод — один независимый агрегатный запрос без транзакции:
// конкурентная вставка между запросами может дать взаимно несогласованную
// сводку, и это допустимо по контракту.
type StatsRepo struct {
	db *gorm.DB
}

// NewStatsRepo создает новый репозиторий статистики
func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// CountUserScores возвращает количество сыгранных игр пользователя
func (r *StatsRepo) CountUserScores(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.GameScore{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// SumTimeCompleted возвращает суммарное время игр пользователя в секундах.
// COALESCE нужен, чтобы сумма по пустому множеству была 0, а не NULL.
func (r *StatsRepo) SumTimeCompleted(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&entity.GameScore{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(time_completed), 0)").
		Row().Scan(&total)
	return total, err
}

// CountActiveDays возвращает количество разных календарных дат с играми
// за скользящее окно последних days дней. Это НЕ настоящий streak —
// считаются просто активные дни в окне, так ведёт себя продукт.
func (r *StatsRepo) CountActiveDays(userID uint, days int) (int64, error) {
	var count int64
	err := r.db.Model(&entity.GameScore{}).
		Where("user_id = ? AND completed_at >= current_date - make_interval(days => ?)", userID, days).
		Select("COUNT(DISTINCT DATE(completed_at))").
		Row().Scan(&count)
	return count, err
}

// CountUserAchievements возвращает количество бейджей пользователя
func (r *StatsRepo) CountUserAchievements(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.UserAchievement{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// UserScoreRank возвращает позицию оконной функции, вычисленной только по
// строкам данного пользователя. Из-за фильтра по user_id это не настоящий
// глобальный рейтинг: при наличии игр результат равен 1. Семантика
// сохранена намеренно. GROUP BY нужен, чтобы при отсутствии игр запрос
// не вернул ни одной строки.
func (r *StatsRepo) UserScoreRank(userID uint) (int64, error) {
	var rank int64
	err := r.db.Raw(
		`SELECT row_number() OVER (ORDER BY SUM(score) DESC) AS rank
		 FROM game_scores
		 WHERE user_id = ?
		 GROUP BY user_id`, userID).
		Row().Scan(&rank)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrNotFound
		}
		return 0, err
	}
	return rank, nil
}
