package pg

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodref/internal/reference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container: skipped with -short")
	}
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("foodref"),
		postgres.WithUsername("foodref"),
		postgres.WithPassword("foodref"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestExport_Postgres(t *testing.T) {
	db := startPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := reference.Default()

	// дважды: DDL и upsert не должны падать на повторе
	for range 2 {
		require.NoError(t, Migrate(ctx, db, logger))
		st, err := Export(ctx, db, cat, logger)
		require.NoError(t, err)
		assert.Equal(t, ExportStats{Categories: 11, Additives: 47, NovaGroups: 4, NutriScores: 5}, st)
	}

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `select count(*) from foodref.additives`).Scan(&n))
	assert.Equal(t, 47, n)

	require.NoError(t, db.QueryRowContext(ctx,
		`select count(*) from foodref.additives where risk = 'HAZARDOUS'`).Scan(&n))
	assert.Equal(t, 7, n)

	var name, catRU string
	require.NoError(t, db.QueryRowContext(ctx,
		`select a.name, c.label_ru from foodref.additives a
		 join foodref.additive_categories c on c.key = a.category
		 where a.code = 'E171'`).Scan(&name, &catRU))
	assert.Equal(t, "Titanium Dioxide", name)
	assert.Equal(t, "Краситель", catRU)

	var firstExample string
	require.NoError(t, db.QueryRowContext(ctx,
		`select examples_es->>0 from foodref.nutri_scores where score = 'E'`).Scan(&firstExample))
	assert.Equal(t, "Refrescos azucarados", firstExample)

	require.NoError(t, db.QueryRowContext(ctx,
		`select jsonb_array_length(health_tips) from foodref.nova_groups where nova_group = 4`).Scan(&n))
	assert.Equal(t, 4, n)
}
