package reference

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validSource читает вшитые данные заново, так что каждый тест может портить свою копию
func validSource(t *testing.T) Source {
	t.Helper()
	sub, err := fs.Sub(embedded, "data")
	require.NoError(t, err)

	var src Source
	src.Additives, err = readDirectory[Additive](sub, FileAdditives)
	require.NoError(t, err)
	src.Categories, err = readDirectory[CategoryInfo](sub, FileCategories)
	require.NoError(t, err)
	src.Nova, err = readDirectory[NovaInfo](sub, FileNova)
	require.NoError(t, err)
	src.NutriScore, err = readDirectory[NutriScoreInfo](sub, FileNutriScore)
	require.NoError(t, err)
	return src
}

func findIssue(issues []Issue, entity, key, code string) (Issue, bool) {
	for _, it := range issues {
		if it.Entity == entity && it.Key == key && it.Code == code {
			return it, true
		}
	}
	return Issue{}, false
}

func TestLint_ShippedDataIsClean(t *testing.T) {
	src := validSource(t)
	// в файле подписи категорий опущены, New подставляет их до проверки
	_, err := New(src)
	require.NoError(t, err)
}

func TestLint_Issues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Source)
		entity string
		key    string
		code   string
	}{
		{
			name:   "empty localized name",
			mutate: func(s *Source) { s.Additives[0].NameRU = " " },
			entity: "additives", key: "E100", code: IssueEmptyField,
		},
		{
			name:   "unknown risk",
			mutate: func(s *Source) { s.Additives[1].Risk = "DEADLY" },
			entity: "additives", key: "E102", code: IssueEnumInvalid,
		},
		{
			name:   "unknown fda status",
			mutate: func(s *Source) { s.Additives[1].FDAStatus = "ALLOWED" },
			entity: "additives", key: "E102", code: IssueEnumInvalid,
		},
		{
			name:   "unknown category",
			mutate: func(s *Source) { s.Additives[1].Category = "flavouring" },
			entity: "additives", key: "E102", code: IssueEnumInvalid,
		},
		{
			name:   "bad code",
			mutate: func(s *Source) { s.Additives[2].Code = "104" },
			entity: "additives", key: "104", code: IssueCodeFormat,
		},
		{
			name:   "duplicate code",
			mutate: func(s *Source) { s.Additives[3].Code = "E100" },
			entity: "additives", key: "E100", code: IssueDuplicateKey,
		},
		{
			name:   "category label disagrees with taxonomy",
			mutate: func(s *Source) { s.Additives[0].CategoryES = "Tinte" },
			entity: "additives", key: "E100", code: IssueLabelMismatch,
		},
		{
			name:   "taxonomy out of order",
			mutate: func(s *Source) { s.Categories[0], s.Categories[1] = s.Categories[1], s.Categories[0] },
			entity: "categories", key: "preservative", code: IssueTaxonomyOrder,
		},
		{
			name:   "taxonomy entry missing",
			mutate: func(s *Source) { s.Categories = s.Categories[:10] },
			entity: "categories", key: "other", code: IssueMissingKey,
		},
		{
			name:   "nova group missing",
			mutate: func(s *Source) { s.Nova = s.Nova[:3] },
			entity: "nova", key: "4", code: IssueMissingKey,
		},
		{
			name:   "nova group out of range",
			mutate: func(s *Source) { s.Nova[3].Group = 5 },
			entity: "nova", key: "5", code: IssueOutOfRange,
		},
		{
			name:   "nova duplicate group",
			mutate: func(s *Source) { s.Nova[3].Group = 3 },
			entity: "nova", key: "3", code: IssueDuplicateKey,
		},
		{
			name:   "nova example lists differ",
			mutate: func(s *Source) { s.Nova[0].ExamplesRU = s.Nova[0].ExamplesRU[:2] },
			entity: "nova", key: "1", code: IssueLengthMismatch,
		},
		{
			name:   "nova empty tip",
			mutate: func(s *Source) { s.Nova[1].HealthTipsES = []string{"ok", ""} },
			entity: "nova", key: "2", code: IssueEmptyField,
		},
		{
			name:   "nova bad color",
			mutate: func(s *Source) { s.Nova[2].Color = "orange" },
			entity: "nova", key: "3", code: IssueColorFormat,
		},
		{
			name:   "nutri-score grade missing",
			mutate: func(s *Source) { s.NutriScore = s.NutriScore[1:] },
			entity: "nutriscore", key: "A", code: IssueMissingKey,
		},
		{
			name:   "nutri-score unknown grade",
			mutate: func(s *Source) { s.NutriScore[4].Score = "F" },
			entity: "nutriscore", key: "F", code: IssueOutOfRange,
		},
		{
			name:   "nutri-score empty description",
			mutate: func(s *Source) { s.NutriScore[0].DescriptionES = "" },
			entity: "nutriscore", key: "A", code: IssueEmptyField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := validSource(t)
			tt.mutate(&src)

			_, err := New(src)
			require.Error(t, err)

			var lerr *LintError
			require.True(t, errors.As(err, &lerr))
			it, ok := findIssue(lerr.Issues, tt.entity, tt.key, tt.code)
			assert.True(t, ok, "want %s/%s/%s, got %v", tt.entity, tt.key, tt.code, lerr.Issues)
			assert.NotEmpty(t, it.Message)
		})
	}
}

func TestLint_ReportsEveryEmptyField(t *testing.T) {
	src := validSource(t)
	src.Additives[0].Name = ""
	src.Additives[0].ReasonES = ""

	issues := src.Lint()
	fields := []string{}
	for _, it := range issues {
		if it.Key == "E100" && it.Code == IssueEmptyField {
			fields = append(fields, it.Field)
		}
	}
	// category_ru/es тоже пусты: в сыром Source подписи ещё не подставлены
	assert.Subset(t, fields, []string{"name", "reason_es"})
}

func TestLintError_Message(t *testing.T) {
	one := &LintError{Issues: []Issue{{Entity: "nova", Key: "5", Field: "group", Code: IssueOutOfRange, Message: "group 5 outside 1..4"}}}
	assert.Equal(t, "catalog has 1 blocking issue: nova[5].group: group 5 outside 1..4 (out_of_range)", one.Error())

	two := &LintError{Issues: append(one.Issues, Issue{Entity: "nova", Key: "4", Field: "group", Code: IssueMissingKey, Message: "group 4 is missing"})}
	assert.Contains(t, two.Error(), "2 blocking issues")
}
