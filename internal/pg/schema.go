package pg

import (
	"fmt"
	"strings"
)

// Schema — схема Postgres, в которую публикуется каталог
const Schema = "foodref"

type column struct {
	Name    string
	Type    string
	NotNull bool
}

type table struct {
	Name string
	PK   string
	Cols []column // первая колонка — PK
}

func text(name string) column     { return column{Name: name, Type: "text", NotNull: true} }
func textNull(name string) column { return column{Name: name, Type: "text"} }
func jsonb(name string) column    { return column{Name: name, Type: "jsonb", NotNull: true} }

// таблицы в порядке создания: additives ссылается на additive_categories
var (
	categoriesTable = table{
		Name: "additive_categories",
		PK:   "key",
		Cols: []column{
			text("key"), text("label"), text("label_ru"), text("label_es"),
			{Name: "position", Type: "integer", NotNull: true},
		},
	}
	additivesTable = table{
		Name: "additives",
		PK:   "code",
		Cols: []column{
			text("code"), text("name"), text("name_ru"), text("name_es"),
			text("risk"), text("reason"), text("reason_ru"), text("reason_es"),
			text("eu_status"), text("fda_status"),
			text("category"), textNull("category_ru"), textNull("category_es"),
			{Name: "position", Type: "integer", NotNull: true},
		},
	}
	novaTable = table{
		Name: "nova_groups",
		PK:   "nova_group",
		Cols: []column{
			{Name: "nova_group", Type: "smallint", NotNull: true},
			text("label"), text("label_ru"), text("label_es"),
			text("description"), text("description_ru"), text("description_es"),
			text("color"), text("icon"),
			jsonb("examples"), jsonb("examples_ru"), jsonb("examples_es"),
			jsonb("health_tips"), jsonb("health_tips_ru"), jsonb("health_tips_es"),
		},
	}
	nutriTable = table{
		Name: "nutri_scores",
		PK:   "score",
		Cols: []column{
			text("score"), text("label"), text("label_ru"), text("label_es"),
			text("description"), text("description_ru"), text("description_es"),
			text("color"),
			jsonb("examples"), jsonb("examples_ru"), jsonb("examples_es"),
		},
	}

	tables = []table{categoriesTable, additivesTable, novaTable, nutriTable}
)

func sqlIdent(s string) string { return `"` + strings.ToLower(s) + `"` }

func (t table) fqn() string { return sqlIdent(Schema) + "." + sqlIdent(t.Name) }

// GenerateDDL возвращает карту ключ -> SQL; ApplyDDL исполняет по возрастанию ключа:
// сначала схема, потом таблицы, в конце внешние ключи.
func GenerateDDL() map[string]string {
	out := make(map[string]string, len(tables)+2)
	out["000_schema"] = fmt.Sprintf("create schema if not exists %s;", sqlIdent(Schema))

	for i, t := range tables {
		cols := make([]string, 0, len(t.Cols)+1)
		for _, c := range t.Cols {
			null := "null"
			if c.NotNull {
				null = "not null"
			}
			cols = append(cols, fmt.Sprintf("%s %s %s", sqlIdent(c.Name), c.Type, null))
		}
		cols = append(cols, fmt.Sprintf("primary key (%s)", sqlIdent(t.PK)))
		out[fmt.Sprintf("1%02d_%s.%s", i, Schema, t.Name)] = fmt.Sprintf(
			"create table if not exists %s (\n  %s\n);", t.fqn(), strings.Join(cols, ",\n  "))
	}

	// повторный add constraint даёт 42710, ApplyDDL это пропускает
	out["200_foreign_keys"] = fmt.Sprintf(
		"alter table %s add constraint additives_category_fk foreign key (%s) references %s(%s) on delete restrict;",
		additivesTable.fqn(), sqlIdent("category"), categoriesTable.fqn(), sqlIdent(categoriesTable.PK))

	// индексы под фильтры API
	out["300_indexes"] = fmt.Sprintf(
		"create index if not exists additives_risk_idx on %s(%s);\ncreate index if not exists additives_category_idx on %s(%s);",
		additivesTable.fqn(), sqlIdent("risk"), additivesTable.fqn(), sqlIdent("category"))

	return out
}

// upsertSQL: insert ... on conflict (pk) do update set <все остальные колонки>
func (t table) upsertSQL() string {
	names := make([]string, 0, len(t.Cols))
	params := make([]string, 0, len(t.Cols))
	sets := make([]string, 0, len(t.Cols))
	for i, c := range t.Cols {
		names = append(names, sqlIdent(c.Name))
		p := fmt.Sprintf("$%d", i+1)
		if c.Type == "jsonb" {
			p += "::jsonb"
		}
		params = append(params, p)
		if c.Name != t.PK {
			sets = append(sets, fmt.Sprintf("%s = excluded.%s", sqlIdent(c.Name), sqlIdent(c.Name)))
		}
	}
	return fmt.Sprintf("insert into %s (%s) values (%s) on conflict (%s) do update set %s",
		t.fqn(), strings.Join(names, ", "), strings.Join(params, ", "), sqlIdent(t.PK), strings.Join(sets, ", "))
}
