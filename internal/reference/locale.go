package reference

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang — один из трёх языков справочника
type Lang string

const (
	LangEN Lang = "en"
	LangRU Lang = "ru"
	LangES Lang = "es"
)

// Langs — порядок совпадает с тегами matcher'а ниже
var Langs = []Lang{LangEN, LangRU, LangES}

var langMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Russian,
	language.Spanish,
})

func ParseLang(s string) (Lang, bool) {
	l := Lang(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Langs {
		if v == l {
			return v, true
		}
	}
	return "", false
}

// MatchLang выбирает язык по заголовку Accept-Language ("es-MX,es;q=0.9,en;q=0.5").
// Если совпадений нет — fallback.
func MatchLang(acceptLanguage string, fallback Lang) Lang {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := langMatcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return Langs[idx]
}

// pick возвращает текст на нужном языке, пустой перевод заменяется английским
func pick(l Lang, en, ru, es string) string {
	switch l {
	case LangRU:
		if ru != "" {
			return ru
		}
	case LangES:
		if es != "" {
			return es
		}
	}
	return en
}

func pickList(l Lang, en, ru, es []string) []string {
	switch l {
	case LangRU:
		if len(ru) > 0 {
			return append([]string(nil), ru...)
		}
	case LangES:
		if len(es) > 0 {
			return append([]string(nil), es...)
		}
	}
	return append([]string(nil), en...)
}

// ===== Локализованные представления (для UI/API) =====

type LocalizedAdditive struct {
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Reason        string    `json:"reason"`
	Risk          Risk      `json:"risk"`
	EUStatus      EUStatus  `json:"eu_status"`
	FDAStatus     FDAStatus `json:"fda_status"`
	Category      Category  `json:"category"`
	CategoryLabel string    `json:"category_label"`
}

// Localize — добавка на одном языке. Английская подпись категории
// в записи не хранится, поэтому берётся из таксономии.
func (c *Catalog) Localize(a Additive, l Lang) LocalizedAdditive {
	enLabel := string(a.Category)
	if ci, ok := c.LookupCategory(a.Category); ok {
		enLabel = ci.Label
	}
	return LocalizedAdditive{
		Code:          a.Code,
		Name:          pick(l, a.Name, a.NameRU, a.NameES),
		Reason:        pick(l, a.Reason, a.ReasonRU, a.ReasonES),
		Risk:          a.Risk,
		EUStatus:      a.EUStatus,
		FDAStatus:     a.FDAStatus,
		Category:      a.Category,
		CategoryLabel: pick(l, enLabel, a.CategoryRU, a.CategoryES),
	}
}

func (ci CategoryInfo) LabelIn(l Lang) string {
	return pick(l, ci.Label, ci.LabelRU, ci.LabelES)
}

type LocalizedNova struct {
	Group       NovaGroup `json:"group"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	Examples    []string  `json:"examples"`
	HealthTips  []string  `json:"health_tips"`
}

func (n NovaInfo) Localize(l Lang) LocalizedNova {
	return LocalizedNova{
		Group:       n.Group,
		Label:       pick(l, n.Label, n.LabelRU, n.LabelES),
		Description: pick(l, n.Description, n.DescriptionRU, n.DescriptionES),
		Color:       n.Color,
		Icon:        n.Icon,
		Examples:    pickList(l, n.Examples, n.ExamplesRU, n.ExamplesES),
		HealthTips:  pickList(l, n.HealthTips, n.HealthTipsRU, n.HealthTipsES),
	}
}

type LocalizedNutriScore struct {
	Score       NutriGrade `json:"score"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	Examples    []string   `json:"examples"`
}

func (n NutriScoreInfo) Localize(l Lang) LocalizedNutriScore {
	return LocalizedNutriScore{
		Score:       n.Score,
		Label:       pick(l, n.Label, n.LabelRU, n.LabelES),
		Description: pick(l, n.Description, n.DescriptionRU, n.DescriptionES),
		Color:       n.Color,
		Examples:    pickList(l, n.Examples, n.ExamplesRU, n.ExamplesES),
	}
}
