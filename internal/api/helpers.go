package api

import (
	"net/http"
	"strings"

	"foodref/internal/reference"

	"github.com/gin-gonic/gin"
)

// ===== Представления для JSON: исходная запись + блок localized на выбранном языке =====

type additiveView struct {
	reference.Additive
	Localized reference.LocalizedAdditive `json:"localized"`
}

type categoryView struct {
	reference.CategoryInfo
	Localized string `json:"localized"`
	Count     int    `json:"count"`
}

type novaView struct {
	reference.NovaInfo
	Localized reference.LocalizedNova `json:"localized"`
}

type nutriScoreView struct {
	reference.NutriScoreInfo
	Localized reference.LocalizedNutriScore `json:"localized"`
}

func additiveViews(cat *reference.Catalog, list []reference.Additive, lang reference.Lang) []additiveView {
	out := make([]additiveView, 0, len(list))
	for _, a := range list {
		out = append(out, additiveView{Additive: a, Localized: cat.Localize(a, lang)})
	}
	return out
}

// resolveLang: ?lang= важнее Accept-Language; кривой ?lang= — 400.
// Выбранный язык уходит в Content-Language.
func (s *Service) resolveLang(c *gin.Context) (reference.Lang, bool) {
	if raw, ok := c.GetQuery("lang"); ok && strings.TrimSpace(raw) != "" {
		l, ok := reference.ParseLang(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown lang", "allowed": reference.Langs})
			return "", false
		}
		c.Header("Content-Language", string(l))
		return l, true
	}
	l := reference.MatchLang(c.GetHeader("Accept-Language"), s.DefaultLang)
	c.Header("Content-Language", string(l))
	return l, true
}
