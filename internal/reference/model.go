package reference

// Risk: итоговая оценка опасности добавки
type Risk string

const (
	RiskHazardous Risk = "HAZARDOUS"
	RiskCaution   Risk = "CAUTION"
	RiskSafe      Risk = "SAFE"
)

// Risks — допустимые значения в порядке от худшего к лучшему
var Risks = []Risk{RiskHazardous, RiskCaution, RiskSafe}

// статус добавки в ЕС
type EUStatus string

const (
	EUBanned     EUStatus = "BANNED"
	EURestricted EUStatus = "RESTRICTED"
	EUAllowed    EUStatus = "ALLOWED"
)

var EUStatuses = []EUStatus{EUBanned, EURestricted, EUAllowed}

// статус у FDA (США)
type FDAStatus string

const (
	FDABanned  FDAStatus = "BANNED"
	FDAWarning FDAStatus = "WARNING"
	FDAGRAS    FDAStatus = "GRAS"
)

var FDAStatuses = []FDAStatus{FDABanned, FDAWarning, FDAGRAS}

// Category — функциональный класс добавки
type Category string

const (
	CategoryColorant         Category = "colorant"
	CategoryPreservative     Category = "preservative"
	CategoryAntioxidant      Category = "antioxidant"
	CategorySweetener        Category = "sweetener"
	CategoryEmulsifier       Category = "emulsifier"
	CategoryThickener        Category = "thickener"
	CategoryAcidityRegulator Category = "acidity_regulator"
	CategoryFlavorEnhancer   Category = "flavor_enhancer"
	CategoryRaisingAgent     Category = "raising_agent"
	CategoryGlazingAgent     Category = "glazing_agent"
	CategoryOther            Category = "other"
)

// CategoryOrder — канонический порядок отображения (не алфавитный).
// Подписи живут в categories.yaml и должны идти в том же порядке.
var CategoryOrder = []Category{
	CategoryColorant,
	CategoryPreservative,
	CategoryAntioxidant,
	CategorySweetener,
	CategoryEmulsifier,
	CategoryThickener,
	CategoryAcidityRegulator,
	CategoryFlavorEnhancer,
	CategoryRaisingAgent,
	CategoryGlazingAgent,
	CategoryOther,
}

// Additive описывает одну пищевую добавку (E-номер)
type Additive struct {
	Code     string `yaml:"code" json:"code"`
	Name     string `yaml:"name" json:"name"`
	NameRU   string `yaml:"name_ru" json:"name_ru"`
	NameES   string `yaml:"name_es" json:"name_es"`
	Risk     Risk   `yaml:"risk" json:"risk"`
	Reason   string `yaml:"reason" json:"reason"`
	ReasonRU string `yaml:"reason_ru" json:"reason_ru"`
	ReasonES string `yaml:"reason_es" json:"reason_es"`

	EUStatus  EUStatus  `yaml:"eu_status" json:"eu_status"`
	FDAStatus FDAStatus `yaml:"fda_status" json:"fda_status"`

	Category Category `yaml:"category" json:"category"`
	// подписи категории; если в yaml пусто — заполняются из таксономии при загрузке
	CategoryRU string `yaml:"category_ru,omitempty" json:"category_ru"`
	CategoryES string `yaml:"category_es,omitempty" json:"category_es"`
}

// элемент таксономии категорий
type CategoryInfo struct {
	Key     Category `yaml:"key" json:"key"`
	Label   string   `yaml:"label" json:"label"`
	LabelRU string   `yaml:"label_ru" json:"label_ru"`
	LabelES string   `yaml:"label_es" json:"label_es"`
}

// NovaGroup — уровень обработки продукта по NOVA, 1 (минимально) .. 4 (ультраобработанный)
type NovaGroup int

const (
	NovaUnprocessed    NovaGroup = 1
	NovaCulinary       NovaGroup = 2
	NovaProcessed      NovaGroup = 3
	NovaUltraProcessed NovaGroup = 4
)

var NovaGroups = []NovaGroup{NovaUnprocessed, NovaCulinary, NovaProcessed, NovaUltraProcessed}

func (g NovaGroup) Valid() bool { return g >= NovaUnprocessed && g <= NovaUltraProcessed }

// NovaInfo описывает одну группу NOVA
type NovaInfo struct {
	Group         NovaGroup `yaml:"group" json:"group"`
	Label         string    `yaml:"label" json:"label"`
	LabelRU       string    `yaml:"label_ru" json:"label_ru"`
	LabelES       string    `yaml:"label_es" json:"label_es"`
	Description   string    `yaml:"description" json:"description"`
	DescriptionRU string    `yaml:"description_ru" json:"description_ru"`
	DescriptionES string    `yaml:"description_es" json:"description_es"`
	Color         string    `yaml:"color" json:"color"`
	Icon          string    `yaml:"icon" json:"icon"`
	Examples      []string  `yaml:"examples" json:"examples"`
	ExamplesRU    []string  `yaml:"examples_ru" json:"examples_ru"`
	ExamplesES    []string  `yaml:"examples_es" json:"examples_es"`
	HealthTips    []string  `yaml:"health_tips" json:"health_tips"`
	HealthTipsRU  []string  `yaml:"health_tips_ru" json:"health_tips_ru"`
	HealthTipsES  []string  `yaml:"health_tips_es" json:"health_tips_es"`
}

// NutriGrade — буква Nutri-Score, A (лучше) .. E (хуже)
type NutriGrade string

const (
	NutriA NutriGrade = "A"
	NutriB NutriGrade = "B"
	NutriC NutriGrade = "C"
	NutriD NutriGrade = "D"
	NutriE NutriGrade = "E"
)

var NutriGrades = []NutriGrade{NutriA, NutriB, NutriC, NutriD, NutriE}

// NutriScoreInfo описывает одну оценку Nutri-Score
type NutriScoreInfo struct {
	Score         NutriGrade `yaml:"score" json:"score"`
	Label         string     `yaml:"label" json:"label"`
	LabelRU       string     `yaml:"label_ru" json:"label_ru"`
	LabelES       string     `yaml:"label_es" json:"label_es"`
	Description   string     `yaml:"description" json:"description"`
	DescriptionRU string     `yaml:"description_ru" json:"description_ru"`
	DescriptionES string     `yaml:"description_es" json:"description_es"`
	Color         string     `yaml:"color" json:"color"`
	Examples      []string   `yaml:"examples" json:"examples"`
	ExamplesRU    []string   `yaml:"examples_ru" json:"examples_ru"`
	ExamplesES    []string   `yaml:"examples_es" json:"examples_es"`
}

// Directory — формат yaml-файла справочника: имя + упорядоченный список записей
type Directory[T any] struct {
	Name  string `yaml:"name"`
	Items []T    `yaml:"items"`
}
