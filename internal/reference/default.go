package reference

// Каталог из вшитых данных, собирается один раз при инициализации пакета.
var defaultCatalog = MustLoadEmbedded()

// Default возвращает вшитый каталог
func Default() *Catalog { return defaultCatalog }

func LookupAdditive(code string) (Additive, bool) { return defaultCatalog.LookupAdditive(code) }

func Additives() []Additive { return defaultCatalog.Additives() }

func AdditivesByRisk(risk Risk) []Additive { return defaultCatalog.AdditivesByRisk(risk) }

func AdditivesByCategory(category Category) []Additive {
	return defaultCatalog.AdditivesByCategory(category)
}

func SearchAdditives(query string) []Additive { return defaultCatalog.SearchAdditives(query) }

func Categories() []CategoryInfo { return defaultCatalog.Categories() }

func Nova(group NovaGroup) NovaInfo { return defaultCatalog.Nova(group) }

func NutriScore(score NutriGrade) NutriScoreInfo { return defaultCatalog.NutriScore(score) }
