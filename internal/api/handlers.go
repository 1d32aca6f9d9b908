package api

import (
	"net/http"
	"strconv"

	"foodref/internal/reference"

	"github.com/gin-gonic/gin"
)

// GET /api/additives?q=&risk=&category=&sort=&limit=&offset=&lang=
func ListAdditivesHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := svc.resolveLang(c)
		if !ok {
			return
		}
		q := c.Request.URL.Query()
		lp := parseListParams(q)

		// 1) поиск (пустой q — все записи)
		var list []reference.Additive
		if lp.HasQ {
			list = svc.Catalog.SearchAdditives(lp.Q)
		} else {
			list = svc.Catalog.Additives()
		}

		// 2) фильтры risk/category — пересечение, порядок справочника сохраняется
		if raw := q.Get("risk"); raw != "" {
			risk, ok := riskParam(c, raw)
			if !ok {
				return
			}
			list = keepOnly(list, func(a reference.Additive) bool { return a.Risk == risk })
		}
		if raw := q.Get("category"); raw != "" {
			cat, ok := categoryParam(c, raw)
			if !ok {
				return
			}
			list = keepOnly(list, func(a reference.Additive) bool { return a.Category == cat })
		}

		// 3) сортировка/пагинация
		if err := sortAdditives(list, lp.Sort, lang, svc.Catalog); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		page := paginate(list, lp.Offset, lp.Limit)

		c.Header("X-Total-Count", strconv.Itoa(len(list)))
		c.JSON(http.StatusOK, additiveViews(svc.Catalog, page, lang))
	}
}

// GET /api/additives/:code
func GetAdditiveHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := svc.resolveLang(c)
		if !ok {
			return
		}
		a, found := svc.Catalog.LookupAdditive(c.Param("code"))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Additive not found"})
			return
		}
		c.JSON(http.StatusOK, additiveView{Additive: a, Localized: svc.Catalog.Localize(a, lang)})
	}
}

// GET /api/categories
func ListCategoriesHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := svc.resolveLang(c)
		if !ok {
			return
		}
		counts := svc.Catalog.Stats().ByCategory
		cats := svc.Catalog.Categories()
		out := make([]categoryView, 0, len(cats))
		for _, ci := range cats {
			out = append(out, categoryView{CategoryInfo: ci, Localized: ci.LabelIn(lang), Count: counts[ci.Key]})
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /api/categories/:category/additives
func CategoryAdditivesHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := svc.resolveLang(c)
		if !ok {
			return
		}
		cat, ok := categoryParam(c, c.Param("category"))
		if !ok {
			return
		}
		list := svc.Catalog.AdditivesByCategory(cat)
		c.Header("X-Total-Count", strconv.Itoa(len(list)))
		c.JSON(http.StatusOK, additiveViews(svc.Catalog, list, lang))
	}
}

// GET /api/nova
func ListNovaHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := svc.resolveLang(c)
		if !ok {
			return
		}
		groups := svc.Catalog.AllNova()
		out := make([]novaView, 0, len(groups))
		for _, n := range groups {
			out = append(out, novaView{NovaInfo: n, Localized: n.Localize(lang)})
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /api/nova/:group
func GetNovaHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := svc.resolveLang(c)
		if !ok {
			return
		}
		g, ok := novaParam(c, c.Param("group"))
		if !ok {
			return
		}
		// группа уже проверена, Nova не запаникует
		n := svc.Catalog.Nova(g)
		c.JSON(http.StatusOK, novaView{NovaInfo: n, Localized: n.Localize(lang)})
	}
}

// GET /api/nutriscore
func ListNutriScoreHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := svc.resolveLang(c)
		if !ok {
			return
		}
		grades := svc.Catalog.AllNutriScores()
		out := make([]nutriScoreView, 0, len(grades))
		for _, n := range grades {
			out = append(out, nutriScoreView{NutriScoreInfo: n, Localized: n.Localize(lang)})
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /api/nutriscore/:score
func GetNutriScoreHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := svc.resolveLang(c)
		if !ok {
			return
		}
		g, ok := nutriParam(c, c.Param("score"))
		if !ok {
			return
		}
		n := svc.Catalog.NutriScore(g)
		c.JSON(http.StatusOK, nutriScoreView{NutriScoreInfo: n, Localized: n.Localize(lang)})
	}
}

func keepOnly(list []reference.Additive, keep func(a reference.Additive) bool) []reference.Additive {
	out := make([]reference.Additive, 0, len(list))
	for _, a := range list {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
