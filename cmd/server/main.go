package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"foodref/internal/api"
	"foodref/internal/config"
	"foodref/internal/pg"
	"foodref/internal/reference"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "foodref:", err)
		os.Exit(1)
	}
}

func run(args []string, logOut io.Writer) error {
	cfg, svc, err := setup(args, logOut)
	if err != nil {
		return err
	}
	svc.Logger.Info("starting server", "addr", cfg.Addr(), "default_lang", svc.DefaultLang, "gin_mode", gin.Mode())
	return api.RunServer(cfg.Addr(), svc)
}

// setup выполняет всё до запуска HTTP-сервера
func setup(args []string, logOut io.Writer) (config.Config, *api.Service, error) {
	// 1. Конфиг: defaults < JSON < .env/ENV < флаги
	cfg, err := config.Load(args)
	if err != nil {
		return cfg, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// 2. Каталог: встроенный или из каталога с YAML
	catalog := reference.Default()
	source := "embedded"
	if cfg.DataDir != "" {
		catalog, err = reference.LoadCatalog(cfg.DataDir)
		if err != nil {
			var lintErr *reference.LintError
			if errors.As(err, &lintErr) {
				for _, it := range lintErr.Issues {
					logger.Error("catalog issue", "issue", it.String())
				}
			}
			return cfg, nil, fmt.Errorf("load catalog from %s: %w", cfg.DataDir, err)
		}
		source = cfg.DataDir
	}
	st := catalog.Stats()
	logger.Info("catalog loaded",
		"source", source,
		"additives", st.Additives,
		"categories", st.Categories,
		"nova_groups", st.NovaGroups,
		"nutri_scores", st.NutriScores)

	// 3. Публикация в Postgres (опционально)
	if cfg.DBURL != "" {
		if err := exportCatalog(cfg, catalog, logger); err != nil {
			return cfg, nil, err
		}
	}

	// 4. REST API
	lang, ok := reference.ParseLang(cfg.DefaultLang)
	if !ok {
		logger.Warn("unknown default language, using en", "lang", cfg.DefaultLang)
		lang = reference.LangEN
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	default:
		// SetMode паникует на неизвестном значении
		logger.Warn("unknown gin mode, using release", "gin_mode", cfg.GinMode)
		gin.SetMode(gin.ReleaseMode)
	}
	return cfg, api.NewService(catalog, lang, logger), nil
}

func exportCatalog(cfg config.Config, catalog *reference.Catalog, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := pg.Open(ctx, cfg.DBURL)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := pg.Migrate(ctx, db, logger); err != nil {
			return err
		}
	}
	if _, err := pg.Export(ctx, db, catalog, logger); err != nil {
		return fmt.Errorf("export catalog: %w", err)
	}
	return nil
}
