package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractUintParam извлекает из пути параметр paramName, парсит его как uint
// и кладет в контекст под ключом contextKey. При невалидном значении
// запрос прерывается с 400.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(paramName)
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || value == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Invalid " + paramName + " parameter",
			})
			return
		}
		c.Set(contextKey, uint(value))
		c.Next()
	}
}

// GetUintParam достает uint-значение, положенное ExtractUintParam.
// Возвращает false, если middleware не отработал для этого маршрута.
func GetUintParam(c *gin.Context, contextKey string) (uint, bool) {
	value, exists := c.Get(contextKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
