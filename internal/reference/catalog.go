package reference

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Catalog — неизменяемый набор справочников. Все методы только читают
// и безопасны для конкурентного вызова.
type Catalog struct {
	additives  []Additive
	byCode     map[string]int // NormalizeCode(code) -> индекс в additives
	searchKeys [][]string     // по индексу добавки: code/name/name_ru/name_es в нижнем регистре

	categories []CategoryInfo
	nova       [4]NovaInfo // группа g лежит в nova[g-1]
	nutri      map[NutriGrade]NutriScoreInfo
}

// New проверяет src и строит каталог. Подписи категорий у добавок,
// не заданные в данных, берутся из таксономии.
func New(src Source) (*Catalog, error) {
	labels := make(map[Category]CategoryInfo, len(src.Categories))
	for _, c := range src.Categories {
		labels[c.Key] = c
	}

	additives := slices.Clone(src.Additives)
	for i := range additives {
		a := &additives[i]
		c, ok := labels[a.Category]
		if !ok {
			continue
		}
		if a.CategoryRU == "" {
			a.CategoryRU = c.LabelRU
		}
		if a.CategoryES == "" {
			a.CategoryES = c.LabelES
		}
	}
	src.Additives = additives

	if issues := src.Lint(); len(issues) > 0 {
		return nil, &LintError{Issues: issues}
	}

	c := &Catalog{
		additives:  additives,
		byCode:     make(map[string]int, len(additives)),
		searchKeys: make([][]string, len(additives)),
		categories: slices.Clone(src.Categories),
		nutri:      make(map[NutriGrade]NutriScoreInfo, len(src.NutriScore)),
	}
	for i, a := range additives {
		c.byCode[NormalizeCode(a.Code)] = i
		c.searchKeys[i] = []string{
			foldSearch(a.Code),
			foldSearch(a.Name),
			foldSearch(a.NameRU),
			foldSearch(a.NameES),
		}
	}
	for _, n := range src.Nova {
		c.nova[n.Group-1] = n.clone()
	}
	for _, n := range src.NutriScore {
		c.nutri[n.Score] = n.clone()
	}
	return c, nil
}

// NormalizeCode приводит код к ключу поиска: верхний регистр, без пробельных символов.
// " e 171 " -> "E171".
func NormalizeCode(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// foldSearch — нижний регистр + NFC, чтобы составные и разложенные
// акценты (é / e+◌́) совпадали
func foldSearch(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// ===== Добавки =====

// LookupAdditive ищет добавку по коду без учёта регистра и пробелов.
func (c *Catalog) LookupAdditive(code string) (Additive, bool) {
	i, ok := c.byCode[NormalizeCode(code)]
	if !ok {
		return Additive{}, false
	}
	return c.additives[i], true
}

// Additives возвращает все добавки в порядке справочника.
func (c *Catalog) Additives() []Additive {
	return slices.Clone(c.additives)
}

func (c *Catalog) AdditivesByRisk(risk Risk) []Additive {
	return c.filter(func(a *Additive) bool { return a.Risk == risk })
}

func (c *Catalog) AdditivesByCategory(category Category) []Additive {
	return c.filter(func(a *Additive) bool { return a.Category == category })
}

// SearchAdditives — подстрока без учёта регистра по коду и трём названиям.
// Пустой запрос совпадает со всеми записями.
func (c *Catalog) SearchAdditives(query string) []Additive {
	q := foldSearch(query)
	out := make([]Additive, 0)
	for i, keys := range c.searchKeys {
		for _, k := range keys {
			if strings.Contains(k, q) {
				out = append(out, c.additives[i])
				break
			}
		}
	}
	return out
}

func (c *Catalog) filter(keep func(a *Additive) bool) []Additive {
	out := make([]Additive, 0)
	for i := range c.additives {
		if keep(&c.additives[i]) {
			out = append(out, c.additives[i])
		}
	}
	return out
}

// ===== Категории =====

// Categories — полная таксономия в порядке отображения, независимо от того,
// какие категории реально встречаются у добавок.
func (c *Catalog) Categories() []CategoryInfo {
	return slices.Clone(c.categories)
}

func (c *Catalog) LookupCategory(key Category) (CategoryInfo, bool) {
	for _, ci := range c.categories {
		if ci.Key == key {
			return ci, true
		}
	}
	return CategoryInfo{}, false
}

// ===== NOVA =====

// Nova возвращает описание группы. Группа вне 1..4 — ошибка вызывающего, паника.
func (c *Catalog) Nova(group NovaGroup) NovaInfo {
	n, ok := c.LookupNova(group)
	if !ok {
		panic(fmt.Sprintf("reference: NOVA group %d out of range 1..4", group))
	}
	return n
}

func (c *Catalog) LookupNova(group NovaGroup) (NovaInfo, bool) {
	if !group.Valid() {
		return NovaInfo{}, false
	}
	return c.nova[group-1].clone(), true
}

// AllNova: все четыре группы по возрастанию степени обработки
func (c *Catalog) AllNova() []NovaInfo {
	out := make([]NovaInfo, 0, len(c.nova))
	for _, n := range c.nova {
		out = append(out, n.clone())
	}
	return out
}

// ===== Nutri-Score =====

// NutriScore возвращает описание оценки. Буква вне A..E — паника.
func (c *Catalog) NutriScore(score NutriGrade) NutriScoreInfo {
	n, ok := c.nutri[score]
	if !ok {
		panic(fmt.Sprintf("reference: Nutri-Score %q out of range A..E", string(score)))
	}
	return n.clone()
}

// LookupNutriScore принимает сырой ввод ("a", " B ") и не паникует.
func (c *Catalog) LookupNutriScore(raw string) (NutriScoreInfo, bool) {
	g, ok := ParseNutriGrade(raw)
	if !ok {
		return NutriScoreInfo{}, false
	}
	return c.nutri[g].clone(), true
}

// AllNutriScores: A..E по порядку
func (c *Catalog) AllNutriScores() []NutriScoreInfo {
	out := make([]NutriScoreInfo, 0, len(NutriGrades))
	for _, g := range NutriGrades {
		out = append(out, c.nutri[g].clone())
	}
	return out
}

// ===== Статистика =====

type CatalogStats struct {
	Additives   int              `json:"additives"`
	ByRisk      map[Risk]int     `json:"by_risk"`
	ByCategory  map[Category]int `json:"by_category"`
	Categories  int              `json:"categories"`
	NovaGroups  int              `json:"nova_groups"`
	NutriScores int              `json:"nutri_scores"`
}

func (c *Catalog) Stats() CatalogStats {
	st := CatalogStats{
		Additives:   len(c.additives),
		ByRisk:      make(map[Risk]int, len(Risks)),
		ByCategory:  make(map[Category]int, len(CategoryOrder)),
		Categories:  len(c.categories),
		NovaGroups:  len(c.nova),
		NutriScores: len(c.nutri),
	}
	for _, r := range Risks {
		st.ByRisk[r] = 0
	}
	for _, k := range CategoryOrder {
		st.ByCategory[k] = 0
	}
	for _, a := range c.additives {
		st.ByRisk[a.Risk]++
		st.ByCategory[a.Category]++
	}
	return st
}

func (n NovaInfo) clone() NovaInfo {
	n.Examples = slices.Clone(n.Examples)
	n.ExamplesRU = slices.Clone(n.ExamplesRU)
	n.ExamplesES = slices.Clone(n.ExamplesES)
	n.HealthTips = slices.Clone(n.HealthTips)
	n.HealthTipsRU = slices.Clone(n.HealthTipsRU)
	n.HealthTipsES = slices.Clone(n.HealthTipsES)
	return n
}

func (n NutriScoreInfo) clone() NutriScoreInfo {
	n.Examples = slices.Clone(n.Examples)
	n.ExamplesRU = slices.Clone(n.ExamplesRU)
	n.ExamplesES = slices.Clone(n.ExamplesES)
	return n
}
