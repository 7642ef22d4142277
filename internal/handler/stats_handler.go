package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsociety/arcade-api/internal/middleware"
	"github.com/fsociety/arcade-api/internal/service"
)

// StatsHandler обрабатывает запросы сводки статистики пользователя
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler создает новый обработчик статистики
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetUserStats обрабатывает GET /api/users/:id/stats.
// Пользователь без игр получает сводку с нулями и рангом 999, а не ошибку.
// Сбой любого подзапроса — 500 без частичной сводки.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	userID, ok := middleware.GetUintParam(c, "userID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	stats, err := h.statsService.GetUserStats(userID)
	if err != nil {
		log.Printf("[StatsHandler] Ошибка получения статистики user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
