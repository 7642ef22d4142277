package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsociety/arcade-api/internal/domain/entity"
	"github.com/fsociety/arcade-api/internal/middleware"
	"github.com/fsociety/arcade-api/internal/service"
)

// AchievementHandler обрабатывает запросы достижений
type AchievementHandler struct {
	achievementService *service.AchievementService
}

// NewAchievementHandler создает новый обработчик достижений
func NewAchievementHandler(achievementService *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		achievementService: achievementService,
	}
}

// AwardAchievementRequest представляет запрос на выдачу достижения
type AwardAchievementRequest struct {
	UserID           uint   `json:"user_id" binding:"required"`
	AchievementType  string `json:"achievement_type" binding:"required,max=50"` // streak, score, time и т.д.
	AchievementValue int    `json:"achievement_value" binding:"min=0"`
}

// AwardAchievement обрабатывает POST /api/achievements
func (h *AchievementHandler) AwardAchievement(c *gin.Context) {
	var req AwardAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	achievement := &entity.UserAchievement{
		UserID:           req.UserID,
		AchievementType:  req.AchievementType,
		AchievementValue: req.AchievementValue,
		EarnedAt:         time.Now(),
	}

	if err := h.achievementService.Award(achievement); err != nil {
		log.Printf("[AchievementHandler] Ошибка выдачи достижения: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award achievement"})
		return
	}

	c.JSON(http.StatusCreated, achievement)
}

// GetUserAchievements обрабатывает GET /api/users/:id/achievements
func (h *AchievementHandler) GetUserAchievements(c *gin.Context) {
	userID, ok := middleware.GetUintParam(c, "userID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	achievements, err := h.achievementService.GetUserAchievements(userID)
	if err != nil {
		log.Printf("[AchievementHandler] Ошибка получения достижений user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}
	c.JSON(http.StatusOK, achievements)
}
