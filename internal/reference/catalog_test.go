package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codesOf(list []Additive) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Code)
	}
	return out
}

func TestLookupAdditive_EveryCodeRoundTrips(t *testing.T) {
	for _, a := range Additives() {
		got, ok := LookupAdditive(a.Code)
		require.True(t, ok, a.Code)
		assert.Equal(t, a.Code, got.Code)
		assert.Equal(t, a, got)
	}
}

func TestLookupAdditive_IgnoresCaseAndWhitespace(t *testing.T) {
	want, ok := LookupAdditive("E171")
	require.True(t, ok)
	assert.Equal(t, "Titanium Dioxide", want.Name)
	assert.Equal(t, RiskHazardous, want.Risk)
	assert.Equal(t, EUBanned, want.EUStatus)

	for _, in := range []string{"e171", " E171 ", "E 171", "\te171\n"} {
		got, ok := LookupAdditive(in)
		require.True(t, ok, "%q", in)
		assert.Equal(t, want, got, "%q", in)
	}
}

func TestLookupAdditive_LetterSuffix(t *testing.T) {
	for _, in := range []string{"E150d", "e150d", "E150D"} {
		got, ok := LookupAdditive(in)
		require.True(t, ok, in)
		assert.Equal(t, "E150d", got.Code)
	}
}

func TestLookupAdditive_Unknown(t *testing.T) {
	for _, in := range []string{"", "   ", "E999", "171", "X171", "E1711"} {
		got, ok := LookupAdditive(in)
		assert.False(t, ok, in)
		assert.Equal(t, Additive{}, got)
	}
}

func TestAdditives_CountOrderAndUniqueness(t *testing.T) {
	all := Additives()
	require.Len(t, all, 47)
	assert.Equal(t, "E100", all[0].Code)
	assert.Equal(t, "E1520", all[len(all)-1].Code)

	seen := map[string]bool{}
	for _, a := range all {
		assert.False(t, seen[a.Code], "duplicate %s", a.Code)
		seen[a.Code] = true
	}
}

func TestAdditives_FieldsArePopulated(t *testing.T) {
	for _, a := range Additives() {
		for name, v := range map[string]string{
			"name": a.Name, "name_ru": a.NameRU, "name_es": a.NameES,
			"reason": a.Reason, "reason_ru": a.ReasonRU, "reason_es": a.ReasonES,
			"category_ru": a.CategoryRU, "category_es": a.CategoryES,
		} {
			assert.NotEmpty(t, v, "%s.%s", a.Code, name)
		}
		assert.Contains(t, Risks, a.Risk, a.Code)
		assert.Contains(t, EUStatuses, a.EUStatus, a.Code)
		assert.Contains(t, FDAStatuses, a.FDAStatus, a.Code)
		assert.Contains(t, CategoryOrder, a.Category, a.Code)
	}
}

func TestAdditivesByRisk_PartitionsTheTable(t *testing.T) {
	union := map[string]bool{}
	total := 0
	for _, r := range Risks {
		list := AdditivesByRisk(r)
		for _, a := range list {
			assert.Equal(t, r, a.Risk, a.Code)
			union[a.Code] = true
		}
		total += len(list)
	}
	assert.Equal(t, len(Additives()), total)
	assert.Len(t, union, len(Additives()))

	assert.Len(t, AdditivesByRisk(RiskHazardous), 7)
	assert.Len(t, AdditivesByRisk(RiskCaution), 26)
	assert.Len(t, AdditivesByRisk(RiskSafe), 14)
}

func TestAdditivesByRisk_PreservesTableOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"E127", "E171", "E249", "E250", "E251", "E320", "E924"},
		codesOf(AdditivesByRisk(RiskHazardous)))
}

func TestAdditivesByRisk_UnknownIsEmptyNotNil(t *testing.T) {
	got := AdditivesByRisk(Risk("DEADLY"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdditivesByCategory(t *testing.T) {
	tests := []struct {
		category Category
		want     []string
	}{
		{CategoryPreservative, []string{"E200", "E202", "E211", "E220", "E249", "E250", "E251", "E252"}},
		{CategoryThickener, []string{"E407", "E412", "E415"}},
		{CategoryRaisingAgent, []string{"E500"}},
		{CategoryOther, []string{"E924", "E1520"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, codesOf(AdditivesByCategory(tt.category)))
		})
	}

	assert.Len(t, AdditivesByCategory(CategoryColorant), 13)

	got := AdditivesByCategory(Category("flavouring"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchAdditives(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"exact code", "E171", []string{"E171"}},
		{"lower-case code", "e171", []string{"E171"}},
		// E251 называется "Sodium Nitrate", в "nitrite" не попадает; см. "nitrat" ниже
		{"english name", "nitrite", []string{"E249", "E250"}},
		{"upper-case name", "NITRITE", []string{"E249", "E250"}},
		{"nitrates", "nitrat", []string{"E251", "E252"}},
		{"russian name", "нитрит", []string{"E249", "E250"}},
		{"spanish accented", "dióxido", []string{"E171", "E220"}},
		{"spanish decomposed accent", "dio\u0301xido", []string{"E171", "E220"}},
		{"code prefix", "E95", []string{"E950", "E951", "E952", "E954", "E955"}},
		{"nothing", "zzzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchAdditives(tt.query)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, codesOf(got))
		})
	}
}

func TestSearchAdditives_EmptyQueryMatchesAll(t *testing.T) {
	assert.Equal(t, Additives(), SearchAdditives(""))
}

func TestNova(t *testing.T) {
	for _, g := range []NovaGroup{1, 2, 3, 4} {
		n := Nova(g)
		assert.Equal(t, g, n.Group)
		assert.NotEmpty(t, n.Label)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, n.Color)
		assert.Len(t, n.ExamplesRU, len(n.Examples))
		assert.Len(t, n.HealthTipsES, len(n.HealthTips))
	}

	all := Default().AllNova()
	require.Len(t, all, 4)
	for i, n := range all {
		assert.Equal(t, NovaGroup(i+1), n.Group)
	}

	for _, g := range []NovaGroup{0, 5, -1} {
		_, ok := Default().LookupNova(g)
		assert.False(t, ok, g)
		assert.Panics(t, func() { Nova(g) }, g)
	}
}

func TestNutriScore(t *testing.T) {
	labels := map[string]bool{}
	for _, g := range NutriGrades {
		n := NutriScore(g)
		assert.Equal(t, g, n.Score)
		labels[n.Label] = true
	}
	assert.Len(t, labels, 5)
	assert.Equal(t, NutriA, NutriScore("A").Score)

	got, ok := Default().LookupNutriScore(" c ")
	require.True(t, ok)
	assert.Equal(t, NutriC, got.Score)

	_, ok = Default().LookupNutriScore("F")
	assert.False(t, ok)

	assert.Panics(t, func() { NutriScore("F") })
	assert.Panics(t, func() { NutriScore("a") })

	all := Default().AllNutriScores()
	require.Len(t, all, 5)
	assert.Equal(t, NutriA, all[0].Score)
	assert.Equal(t, NutriE, all[4].Score)
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 11)
	for i, c := range cats {
		assert.Equal(t, CategoryOrder[i], c.Key)
	}

	byKey := map[Category]CategoryInfo{}
	for _, c := range cats {
		byKey[c.Key] = c
	}
	for _, a := range Additives() {
		c, ok := byKey[a.Category]
		require.True(t, ok, "%s uses unlisted category %s", a.Code, a.Category)
		assert.Equal(t, c.LabelRU, a.CategoryRU, a.Code)
		assert.Equal(t, c.LabelES, a.CategoryES, a.Code)
	}
}

func TestAccessorsAreIdempotentAndReturnCopies(t *testing.T) {
	first := Additives()
	first[0].Name = "changed"
	assert.Equal(t, "Curcumin", Additives()[0].Name)

	n := Nova(NovaUltraProcessed)
	n.Examples[0] = "changed"
	assert.Equal(t, "Soft drinks", Nova(NovaUltraProcessed).Examples[0])

	ns := NutriScore(NutriE)
	ns.ExamplesES[0] = "changed"
	assert.Equal(t, "Refrescos azucarados", NutriScore(NutriE).ExamplesES[0])

	cats := Categories()
	cats[0].Label = "changed"
	assert.Equal(t, "Colorant", Categories()[0].Label)

	assert.Equal(t, SearchAdditives("sodium"), SearchAdditives("sodium"))
	assert.Equal(t, AdditivesByRisk(RiskSafe), AdditivesByRisk(RiskSafe))
	assert.Equal(t, Nova(2), Nova(2))
}

func TestStats(t *testing.T) {
	st := Default().Stats()
	assert.Equal(t, 47, st.Additives)
	assert.Equal(t, 11, st.Categories)
	assert.Equal(t, 4, st.NovaGroups)
	assert.Equal(t, 5, st.NutriScores)
	assert.Equal(t, 7, st.ByRisk[RiskHazardous])
	assert.Equal(t, 13, st.ByCategory[CategoryColorant])

	sum := 0
	for _, n := range st.ByCategory {
		sum += n
	}
	assert.Equal(t, 47, sum)
}
