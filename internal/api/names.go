// api/names.go
package api

import (
	"net/http"

	"foodref/internal/reference"

	"github.com/gin-gonic/gin"
)

// Разбор значений закрытых перечислений из пути/query. При ошибке ответ 400 уже записан.

func riskParam(c *gin.Context, raw string) (reference.Risk, bool) {
	r, ok := reference.ParseRisk(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown risk", "allowed": reference.Risks})
	}
	return r, ok
}

func categoryParam(c *gin.Context, raw string) (reference.Category, bool) {
	k, ok := reference.ParseCategory(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category", "allowed": reference.CategoryOrder})
	}
	return k, ok
}

func novaParam(c *gin.Context, raw string) (reference.NovaGroup, bool) {
	g, ok := reference.ParseNovaGroup(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "NOVA group must be 1..4"})
	}
	return g, ok
}

func nutriParam(c *gin.Context, raw string) (reference.NutriGrade, bool) {
	g, ok := reference.ParseNutriGrade(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nutri-Score must be A..E"})
	}
	return g, ok
}
