package api

import (
	"net/http"

	"foodref/internal/reference"

	"github.com/gin-gonic/gin"
)

// ===== META HANDLERS =====

type metaInfo struct {
	Stats       reference.CatalogStats `json:"stats"`
	Langs       []reference.Lang       `json:"langs"`
	DefaultLang reference.Lang         `json:"default_lang"`
	Risks       []reference.Risk       `json:"risks"`
	EUStatuses  []reference.EUStatus   `json:"eu_statuses"`
	FDAStatuses []reference.FDAStatus  `json:"fda_statuses"`
	Categories  []reference.Category   `json:"categories"`
}

// GET /api/meta — что есть в каталоге и какие значения допустимы в фильтрах
func MetaHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, metaInfo{
			Stats:       svc.Catalog.Stats(),
			Langs:       reference.Langs,
			DefaultLang: svc.DefaultLang,
			Risks:       reference.Risks,
			EUStatuses:  reference.EUStatuses,
			FDAStatuses: reference.FDAStatuses,
			Categories:  reference.CategoryOrder,
		})
	}
}

// GET /healthz
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
