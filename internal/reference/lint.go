package reference

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Issue — одна найденная проблема в данных справочника
type Issue struct {
	Entity  string `json:"entity"` // additives | categories | nova | nutriscore
	Key     string `json:"key"`
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s[%s].%s: %s (%s)", i.Entity, i.Key, i.Field, i.Message, i.Code)
}

// Коды проблем
const (
	IssueEmptyField     = "empty_field"
	IssueEnumInvalid    = "enum_invalid"
	IssueCodeFormat     = "code_format"
	IssueDuplicateKey   = "duplicate_key"
	IssueMissingKey     = "missing_key"
	IssueOutOfRange     = "out_of_range"
	IssueLabelMismatch  = "label_mismatch"
	IssueTaxonomyOrder  = "taxonomy_order"
	IssueColorFormat    = "color_format"
	IssueLengthMismatch = "length_mismatch"
)

// LintError возвращается из New, если данные нарушают инварианты
type LintError struct {
	Issues []Issue
}

func (e *LintError) Error() string {
	if len(e.Issues) == 1 {
		return "catalog has 1 blocking issue: " + e.Issues[0].String()
	}
	return fmt.Sprintf("catalog has %d blocking issues, first: %s", len(e.Issues), e.Issues[0].String())
}

var (
	codeRe  = regexp.MustCompile(`^E[0-9]{3,4}[a-z]?$`)
	colorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Source — сырые таблицы в порядке из файлов, до индексации
type Source struct {
	Additives  []Additive
	Categories []CategoryInfo
	Nova       []NovaInfo
	NutriScore []NutriScoreInfo
}

// Lint проверяет инварианты всех четырёх таблиц.
func (s Source) Lint() []Issue {
	var issues []Issue
	add := func(entity, key, field, code, format string, args ...any) {
		issues = append(issues, Issue{
			Entity:  entity,
			Key:     key,
			Field:   field,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}
	nonEmpty := func(entity, key string, fields map[string]string) {
		for _, name := range slices.Sorted(maps.Keys(fields)) {
			if strings.TrimSpace(fields[name]) == "" {
				add(entity, key, name, IssueEmptyField, "field %q must not be empty", name)
			}
		}
	}

	// 1) таксономия категорий: ровно CategoryOrder и в том же порядке
	labels := make(map[Category]CategoryInfo, len(s.Categories))
	for i, c := range s.Categories {
		key := string(c.Key)
		if i >= len(CategoryOrder) || CategoryOrder[i] != c.Key {
			add("categories", key, "key", IssueTaxonomyOrder, "position %d holds %q", i, c.Key)
		}
		if _, dup := labels[c.Key]; dup {
			add("categories", key, "key", IssueDuplicateKey, "category %q listed twice", c.Key)
		}
		labels[c.Key] = c
		nonEmpty("categories", key, map[string]string{"label": c.Label, "label_ru": c.LabelRU, "label_es": c.LabelES})
	}
	for _, k := range CategoryOrder {
		if _, ok := labels[k]; !ok {
			add("categories", string(k), "key", IssueMissingKey, "category %q is missing", k)
		}
	}

	// 2) добавки
	seen := make(map[string]string, len(s.Additives))
	for _, a := range s.Additives {
		key := a.Code
		if !codeRe.MatchString(a.Code) {
			add("additives", key, "code", IssueCodeFormat, "code %q must look like E<digits>[suffix]", a.Code)
		}
		if prev, dup := seen[NormalizeCode(a.Code)]; dup {
			add("additives", key, "code", IssueDuplicateKey, "code %q collides with %q", a.Code, prev)
		}
		seen[NormalizeCode(a.Code)] = a.Code

		nonEmpty("additives", key, map[string]string{
			"name": a.Name, "name_ru": a.NameRU, "name_es": a.NameES,
			"reason": a.Reason, "reason_ru": a.ReasonRU, "reason_es": a.ReasonES,
			"category_ru": a.CategoryRU, "category_es": a.CategoryES,
		})

		if !slices.Contains(Risks, a.Risk) {
			add("additives", key, "risk", IssueEnumInvalid, "unknown risk %q", a.Risk)
		}
		if !slices.Contains(EUStatuses, a.EUStatus) {
			add("additives", key, "eu_status", IssueEnumInvalid, "unknown EU status %q", a.EUStatus)
		}
		if !slices.Contains(FDAStatuses, a.FDAStatus) {
			add("additives", key, "fda_status", IssueEnumInvalid, "unknown FDA status %q", a.FDAStatus)
		}
		if !slices.Contains(CategoryOrder, a.Category) {
			add("additives", key, "category", IssueEnumInvalid, "unknown category %q", a.Category)
			continue
		}
		if c, ok := labels[a.Category]; ok {
			if a.CategoryRU != "" && a.CategoryRU != c.LabelRU {
				add("additives", key, "category_ru", IssueLabelMismatch, "%q does not match taxonomy label %q", a.CategoryRU, c.LabelRU)
			}
			if a.CategoryES != "" && a.CategoryES != c.LabelES {
				add("additives", key, "category_es", IssueLabelMismatch, "%q does not match taxonomy label %q", a.CategoryES, c.LabelES)
			}
		}
	}

	// 3) NOVA: ключи 1..4 без пропусков
	groups := make(map[NovaGroup]bool, len(s.Nova))
	for _, n := range s.Nova {
		key := strconv.Itoa(int(n.Group))
		if !n.Group.Valid() {
			add("nova", key, "group", IssueOutOfRange, "group %d outside 1..4", n.Group)
		}
		if groups[n.Group] {
			add("nova", key, "group", IssueDuplicateKey, "group %d listed twice", n.Group)
		}
		groups[n.Group] = true

		nonEmpty("nova", key, map[string]string{
			"label": n.Label, "label_ru": n.LabelRU, "label_es": n.LabelES,
			"description": n.Description, "description_ru": n.DescriptionRU, "description_es": n.DescriptionES,
			"icon": n.Icon,
		})
		if !colorRe.MatchString(n.Color) {
			add("nova", key, "color", IssueColorFormat, "color %q must be #RRGGBB", n.Color)
		}
		lintLists(add, "nova", key, "examples", n.Examples, n.ExamplesRU, n.ExamplesES)
		lintLists(add, "nova", key, "health_tips", n.HealthTips, n.HealthTipsRU, n.HealthTipsES)
	}
	for _, g := range NovaGroups {
		if !groups[g] {
			add("nova", strconv.Itoa(int(g)), "group", IssueMissingKey, "group %d is missing", g)
		}
	}

	// 4) Nutri-Score: ключи A..E
	grades := make(map[NutriGrade]bool, len(s.NutriScore))
	for _, n := range s.NutriScore {
		key := string(n.Score)
		if !slices.Contains(NutriGrades, n.Score) {
			add("nutriscore", key, "score", IssueOutOfRange, "score %q outside A..E", n.Score)
		}
		if grades[n.Score] {
			add("nutriscore", key, "score", IssueDuplicateKey, "score %q listed twice", n.Score)
		}
		grades[n.Score] = true

		nonEmpty("nutriscore", key, map[string]string{
			"label": n.Label, "label_ru": n.LabelRU, "label_es": n.LabelES,
			"description": n.Description, "description_ru": n.DescriptionRU, "description_es": n.DescriptionES,
		})
		if !colorRe.MatchString(n.Color) {
			add("nutriscore", key, "color", IssueColorFormat, "color %q must be #RRGGBB", n.Color)
		}
		lintLists(add, "nutriscore", key, "examples", n.Examples, n.ExamplesRU, n.ExamplesES)
	}
	for _, g := range NutriGrades {
		if !grades[g] {
			add("nutriscore", string(g), "score", IssueMissingKey, "score %q is missing", g)
		}
	}

	return issues
}

// списки в трёх языках должны совпадать по длине и не содержать пустых строк
func lintLists(add func(entity, key, field, code, format string, args ...any), entity, key, field string, en, ru, es []string) {
	if len(en) != len(ru) || len(en) != len(es) {
		add(entity, key, field, IssueLengthMismatch, "lengths differ: en=%d ru=%d es=%d", len(en), len(ru), len(es))
	}
	lists := []struct {
		suffix string
		items  []string
	}{{"", en}, {"_ru", ru}, {"_es", es}}
	for _, l := range lists {
		if len(l.items) == 0 {
			add(entity, key, field+l.suffix, IssueEmptyField, "list must not be empty")
		}
		for i, s := range l.items {
			if strings.TrimSpace(s) == "" {
				add(entity, key, field+l.suffix, IssueEmptyField, "item %d is empty", i)
			}
		}
	}
}
