package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"foodref/internal/reference"
)

// ExportStats: сколько строк записано в каждую таблицу
type ExportStats struct {
	Categories  int
	Additives   int
	NovaGroups  int
	NutriScores int
}

// Migrate создаёт схему и таблицы (idempotent).
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	return ApplyDDL(ctx, db, GenerateDDL(), logger)
}

// Export публикует каталог в Postgres одной транзакцией: upsert по первичным ключам.
// Строки, которых больше нет в каталоге, не удаляются.
func Export(ctx context.Context, db *sql.DB, cat *reference.Catalog, logger *slog.Logger) (ExportStats, error) {
	var st ExportStats

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return st, fmt.Errorf("begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1) таксономия раньше добавок (внешний ключ)
	cats := cat.Categories()
	rows := make([][]any, 0, len(cats))
	for i, ci := range cats {
		rows = append(rows, []any{string(ci.Key), ci.Label, ci.LabelRU, ci.LabelES, i})
	}
	if st.Categories, err = upsertRows(ctx, tx, categoriesTable, rows); err != nil {
		return st, err
	}

	// 2) добавки
	adds := cat.Additives()
	rows = make([][]any, 0, len(adds))
	for i, a := range adds {
		rows = append(rows, []any{
			a.Code, a.Name, a.NameRU, a.NameES,
			string(a.Risk), a.Reason, a.ReasonRU, a.ReasonES,
			string(a.EUStatus), string(a.FDAStatus),
			string(a.Category), nullable(a.CategoryRU), nullable(a.CategoryES),
			i,
		})
	}
	if st.Additives, err = upsertRows(ctx, tx, additivesTable, rows); err != nil {
		return st, err
	}

	// 3) NOVA
	groups := cat.AllNova()
	rows = make([][]any, 0, len(groups))
	for _, n := range groups {
		row := []any{int(n.Group), n.Label, n.LabelRU, n.LabelES, n.Description, n.DescriptionRU, n.DescriptionES, n.Color, n.Icon}
		lists, err := jsonLists(n.Examples, n.ExamplesRU, n.ExamplesES, n.HealthTips, n.HealthTipsRU, n.HealthTipsES)
		if err != nil {
			return st, fmt.Errorf("nova %d: %w", n.Group, err)
		}
		rows = append(rows, append(row, lists...))
	}
	if st.NovaGroups, err = upsertRows(ctx, tx, novaTable, rows); err != nil {
		return st, err
	}

	// 4) Nutri-Score
	grades := cat.AllNutriScores()
	rows = make([][]any, 0, len(grades))
	for _, n := range grades {
		row := []any{string(n.Score), n.Label, n.LabelRU, n.LabelES, n.Description, n.DescriptionRU, n.DescriptionES, n.Color}
		lists, err := jsonLists(n.Examples, n.ExamplesRU, n.ExamplesES)
		if err != nil {
			return st, fmt.Errorf("nutri-score %s: %w", n.Score, err)
		}
		rows = append(rows, append(row, lists...))
	}
	if st.NutriScores, err = upsertRows(ctx, tx, nutriTable, rows); err != nil {
		return st, err
	}

	if err := tx.Commit(); err != nil {
		return st, fmt.Errorf("commit export: %w", err)
	}
	logger.Info("catalog exported to postgres",
		"schema", Schema,
		"additive_categories", st.Categories,
		"additives", st.Additives,
		"nova_groups", st.NovaGroups,
		"nutri_scores", st.NutriScores)
	return st, nil
}

func upsertRows(ctx context.Context, tx *sql.Tx, t table, rows [][]any) (int, error) {
	stmt, err := tx.PrepareContext(ctx, t.upsertSQL())
	if err != nil {
		return 0, fmt.Errorf("prepare %s: %w", t.Name, err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r...); err != nil {
			return 0, fmt.Errorf("upsert %s %v: %w", t.Name, r[0], err)
		}
	}
	return len(rows), nil
}

func jsonLists(lists ...[]string) ([]any, error) {
	out := make([]any, 0, len(lists))
	for _, l := range lists {
		if l == nil {
			l = []string{}
		}
		b, err := json.Marshal(l)
		if err != nil {
			return nil, err
		}
		out = append(out, string(b))
	}
	return out, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
