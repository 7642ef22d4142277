package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/fsociety/arcade-api/internal/domain/entity"
	"github.com/fsociety/arcade-api/internal/middleware"
	"github.com/fsociety/arcade-api/internal/service"
)

// ScoreHandler обрабатывает запросы результатов игр
type ScoreHandler struct {
	scoreService *service.ScoreService
}

// NewScoreHandler создает новый обработчик результатов
func NewScoreHandler(scoreService *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
	}
}

// RecordScoreRequest представляет запрос на сохранение результата
type RecordScoreRequest struct {
	UserID        uint `json:"user_id" binding:"required"`
	CategoryID    uint `json:"category_id" binding:"required"`
	Score         int  `json:"score" binding:"min=0"`
	TimeCompleted int  `json:"time_completed" binding:"min=0"` // в секундах
}

// RecordScore обрабатывает POST /api/scores
func (h *ScoreHandler) RecordScore(c *gin.Context) {
	var req RecordScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score := &entity.GameScore{
		UserID:        req.UserID,
		CategoryID:    req.CategoryID,
		Score:         req.Score,
		TimeCompleted: req.TimeCompleted,
		CompletedAt:   time.Now(),
	}

	if err := h.scoreService.RecordScore(score); err != nil {
		log.Printf("[ScoreHandler] Ошибка сохранения результата: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record score"})
		return
	}

	c.JSON(http.StatusCreated, score)
}

// GetUserScores обрабатывает GET /api/users/:id/scores
func (h *ScoreHandler) GetUserScores(c *gin.Context) {
	userID, ok := middleware.GetUintParam(c, "userID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	scores, err := h.scoreService.GetUserScores(userID)
	if err != nil {
		log.Printf("[ScoreHandler] Ошибка получения результатов user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scores"})
		return
	}
	c.JSON(http.StatusOK, scores)
}

// GetUserBestScores обрабатывает GET /api/users/:id/scores/best
func (h *ScoreHandler) GetUserBestScores(c *gin.Context) {
	userID, ok := middleware.GetUintParam(c, "userID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	scores, err := h.scoreService.GetUserBestScores(userID)
	if err != nil {
		log.Printf("[ScoreHandler] Ошибка получения лучших результатов user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch best scores"})
		return
	}
	c.JSON(http.StatusOK, scores)
}

// ExportUserScores обрабатывает GET /api/users/:id/scores/export —
// выгрузка результатов пользователя в Excel через StreamWriter
func (h *ScoreHandler) ExportUserScores(c *gin.Context) {
	userID, ok := middleware.GetUintParam(c, "userID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	scores, err := h.scoreService.GetUserScores(userID)
	if err != nil {
		log.Printf("[ScoreHandler] Ошибка выгрузки результатов user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export scores"})
		return
	}

	filename := fmt.Sprintf("scores_user_%d", userID)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Scores"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[ScoreHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"ID", "Category", "Score", "Time (sec)", "Completed At"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[ScoreHandler] Ошибка записи заголовков: %v", err)
	}

	for i, s := range scores {
		rowNum := i + 2 // Первая строка — заголовки
		cell := fmt.Sprintf("A%d", rowNum)
		row := []interface{}{s.ID, s.CategoryID, s.Score, s.TimeCompleted, s.CompletedAt.Format(time.RFC3339)}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[ScoreHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[ScoreHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ScoreHandler] Ошибка записи Excel в response: %v", err)
	}
}
