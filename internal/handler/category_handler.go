package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsociety/arcade-api/internal/domain/entity"
	"github.com/fsociety/arcade-api/internal/service"
)

// CategoryHandler обрабатывает запросы категорий игр
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategoryRequest представляет запрос на создание категории
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty" binding:"required"` // Easy/Medium/Hard по конвенции
	Color       string `json:"color" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
}

// ListCategories обрабатывает GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		log.Printf("[CategoryHandler] Ошибка получения категорий: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory обрабатывает POST /api/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := &entity.GameCategory{
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Color:       req.Color,
		Icon:        req.Icon,
	}

	if err := h.categoryService.Create(category); err != nil {
		log.Printf("[CategoryHandler] Ошибка создания категории: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}
