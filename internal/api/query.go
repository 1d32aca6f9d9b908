package api

import (
	"cmp"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"foodref/internal/reference"
)

// ==== Типы сортировки и параметров листинга ====

type SortKey struct {
	Field string
	Desc  bool
}

type ListParams struct {
	Limit  int
	Offset int
	Sort   []SortKey
	Q      string
	HasQ   bool // q передан (пусть даже пустой)
}

const (
	defaultLimit = 50
	maxLimit     = 1000
)

// ==== Парсинг query-параметров ====

func parseListParams(q url.Values) ListParams {
	// limit
	limit := defaultLimit
	lv := q.Get("_limit")
	if lv == "" {
		lv = q.Get("limit")
	}
	if lv != "" {
		if n, err := strconv.Atoi(lv); err == nil && n >= 0 && n <= maxLimit {
			limit = n
		}
	}

	// offset
	offset := 0
	ov := q.Get("_offset")
	if ov == "" {
		ov = q.Get("offset")
	}
	if ov != "" {
		if n, err := strconv.Atoi(ov); err == nil && n >= 0 {
			offset = n
		}
	}

	// sort: "risk,-code"
	var sortKeys []SortKey
	sv := strings.TrimSpace(q.Get("_sort"))
	if sv == "" {
		sv = strings.TrimSpace(q.Get("sort"))
	}
	if sv != "" {
		for _, p := range strings.Split(sv, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			desc := false
			if strings.HasPrefix(p, "-") {
				desc = true
				p = strings.TrimPrefix(p, "-")
			} else if strings.HasPrefix(p, "+") {
				p = strings.TrimPrefix(p, "+")
			}
			if p != "" {
				sortKeys = append(sortKeys, SortKey{Field: strings.ToLower(p), Desc: desc})
			}
		}
	}

	_, hasQ := q["q"]
	return ListParams{
		Limit:  limit,
		Offset: offset,
		Sort:   sortKeys,
		Q:      q.Get("q"),
		HasQ:   hasQ,
	}
}

// ==== Сортировка ====

// порядок рисков/статусов — от худшего к лучшему, а не по алфавиту
var (
	riskRank = rankOf(reference.Risks)
	euRank   = rankOf(reference.EUStatuses)
	fdaRank  = rankOf(reference.FDAStatuses)
	catRank  = rankOf(reference.CategoryOrder)
)

func rankOf[T comparable](list []T) map[T]int {
	m := make(map[T]int, len(list))
	for i, v := range list {
		m[v] = i
	}
	return m
}

// компараторы по имени поля; name сравнивается в выбранном языке
func additiveComparator(field string, lang reference.Lang, cat *reference.Catalog) (func(a, b reference.Additive) int, error) {
	switch field {
	case "code":
		return func(a, b reference.Additive) int { return compareCodes(a.Code, b.Code) }, nil
	case "name":
		return func(a, b reference.Additive) int {
			return strings.Compare(
				strings.ToLower(cat.Localize(a, lang).Name),
				strings.ToLower(cat.Localize(b, lang).Name))
		}, nil
	case "risk":
		return func(a, b reference.Additive) int { return cmp.Compare(riskRank[a.Risk], riskRank[b.Risk]) }, nil
	case "eu_status":
		return func(a, b reference.Additive) int { return cmp.Compare(euRank[a.EUStatus], euRank[b.EUStatus]) }, nil
	case "fda_status":
		return func(a, b reference.Additive) int { return cmp.Compare(fdaRank[a.FDAStatus], fdaRank[b.FDAStatus]) }, nil
	case "category":
		return func(a, b reference.Additive) int { return cmp.Compare(catRank[a.Category], catRank[b.Category]) }, nil
	default:
		return nil, fmt.Errorf("unknown sort field %q", field)
	}
}

// мультисортировка, стабильная: при равенстве ключей остаётся порядок справочника
func sortAdditives(list []reference.Additive, keys []SortKey, lang reference.Lang, cat *reference.Catalog) error {
	if len(keys) == 0 {
		return nil
	}
	type keyCmp struct {
		cmp  func(a, b reference.Additive) int
		desc bool
	}
	cmps := make([]keyCmp, 0, len(keys))
	for _, k := range keys {
		fn, err := additiveComparator(k.Field, lang, cat)
		if err != nil {
			return err
		}
		cmps = append(cmps, keyCmp{cmp: fn, desc: k.Desc})
	}
	slices.SortStableFunc(list, func(a, b reference.Additive) int {
		for _, s := range cmps {
			if c := s.cmp(a, b); c != 0 {
				if s.desc {
					return -c
				}
				return c
			}
		}
		return 0
	})
	return nil
}

// compareCodes: E100 < E150d < E1520, числовая часть сравнивается как число
func compareCodes(a, b string) int {
	na, sa := splitCode(a)
	nb, sb := splitCode(b)
	if c := cmp.Compare(na, nb); c != 0 {
		return c
	}
	return strings.Compare(sa, sb)
}

func splitCode(code string) (int, string) {
	s := strings.TrimPrefix(strings.ToUpper(code), "E")
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, _ := strconv.Atoi(s[:i])
	return n, s[i:]
}

// paginate обрезает список по offset/limit
func paginate[T any](list []T, offset, limit int) []T {
	start := offset
	if start < 0 {
		start = 0
	}
	if start > len(list) {
		start = len(list)
	}
	end := start + limit
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
