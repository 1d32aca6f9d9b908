package reference

import (
	"strconv"
	"strings"
)

// Разбор пользовательского ввода (query-параметры и т.п.) в закрытые перечисления.

func ParseRisk(s string) (Risk, bool) {
	r := Risk(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range Risks {
		if v == r {
			return v, true
		}
	}
	return "", false
}

// ParseCategory принимает "Acidity-Regulator", "acidity regulator", "acidity_regulator".
func ParseCategory(s string) (Category, bool) {
	k := strings.ToLower(strings.TrimSpace(s))
	k = strings.NewReplacer("-", "_", " ", "_").Replace(k)
	for _, v := range CategoryOrder {
		if string(v) == k {
			return v, true
		}
	}
	return "", false
}

func ParseNovaGroup(s string) (NovaGroup, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	g := NovaGroup(n)
	return g, g.Valid()
}

func ParseNutriGrade(s string) (NutriGrade, bool) {
	g := NutriGrade(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range NutriGrades {
		if v == g {
			return v, true
		}
	}
	return "", false
}
