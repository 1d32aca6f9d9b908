package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
)

// пул под разовую публикацию при старте: одна транзакция, запас на ping
const (
	exportMaxOpenConns = 2
	exportMaxIdleConns = 1
	exportConnLifetime = 5 * time.Minute
	pingTimeout        = 5 * time.Second
)

// Open подключается к Postgres и проверяет соединение ping'ом.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	configurePool(db)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(exportMaxOpenConns)
	db.SetMaxIdleConns(exportMaxIdleConns)
	db.SetConnMaxLifetime(exportConnLifetime)
}
