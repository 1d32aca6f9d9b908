package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `json:"port"`
	DataDir     string `json:"dataDir"` // пусто — встроенные YAML
	DBURL       string `json:"dbUrl"`   // пусто — без экспорта в Postgres
	AutoMigrate bool   `json:"autoMigrate"`

	DefaultLang string `json:"defaultLang"` // en | ru | es
	LogLevel    string `json:"logLevel"`    // debug | info | warn | error
	GinMode     string `json:"ginMode"`     // debug | release | test
}

const DefaultPath = "foodref.json"

func def() Config {
	return Config{
		Port:        "8080",
		DataDir:     "",
		DBURL:       "",
		AutoMigrate: false,

		DefaultLang: "en",
		LogLevel:    "info",
		GinMode:     "release",
	}
}

func loadJSON(path string, c *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func parseBool(v string) (bool, bool) {
	switch strings.TrimSpace(strings.ToLower(v)) {
	case "1", "true", "yes":
		return true, true
	case "0", "false", "no":
		return false, true
	}
	return false, false
}

func getenvBool(k string, fallback bool) bool {
	if v, ok := os.LookupEnv(k); ok {
		if b, ok := parseBool(v); ok {
			return b
		}
	}
	return fallback
}

// Load: defaults < JSON < .env/ENV < флаги.
// args — аргументы командной строки без имени программы (os.Args[1:]).
func Load(args []string) (Config, error) {
	// -config нужен до чтения JSON, поэтому ищем его отдельным проходом
	jsonPath := DefaultPath
	pre := flag.NewFlagSet("config", flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	pre.StringVar(&jsonPath, "config", DefaultPath, "")
	for i, a := range args {
		if a == "-config" || a == "--config" || strings.HasPrefix(a, "-config=") || strings.HasPrefix(a, "--config=") {
			_ = pre.Parse(args[i:])
			break
		}
	}
	return LoadWithPath(jsonPath, args)
}

// LoadWithPath читает JSON по указанному пути, потом .env, ENV и флаги.
func LoadWithPath(jsonPath string, args []string) (Config, error) {
	cfg := def()

	// JSON (если файл существует)
	if st, err := os.Stat(jsonPath); err == nil && !st.IsDir() {
		if err := loadJSON(jsonPath, &cfg); err != nil {
			return cfg, err
		}
	}

	// .env не перетирает уже выставленные переменные окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	// ENV overrides
	cfg.Port = getenv("FOODREF_PORT", cfg.Port)
	cfg.DataDir = getenv("FOODREF_DATA_DIR", cfg.DataDir)
	cfg.DBURL = getenv("FOODREF_DB_URL", cfg.DBURL)
	cfg.AutoMigrate = getenvBool("FOODREF_AUTO_MIGRATE", cfg.AutoMigrate)
	cfg.DefaultLang = getenv("FOODREF_DEFAULT_LANG", cfg.DefaultLang)
	cfg.LogLevel = getenv("FOODREF_LOG_LEVEL", cfg.LogLevel)
	cfg.GinMode = getenv("FOODREF_GIN_MODE", cfg.GinMode)

	// Flags overrides
	fsFlags := flag.NewFlagSet("foodref", flag.ContinueOnError)
	_ = fsFlags.String("config", jsonPath, "Path to config JSON")
	port := fsFlags.String("port", cfg.Port, "HTTP port")
	data := fsFlags.String("data", cfg.DataDir, "Directory with catalog YAML (empty = embedded)")
	db := fsFlags.String("db", cfg.DBURL, "Postgres URL (empty = no export)")
	auto := fsFlags.String("auto-migrate", strconv.FormatBool(cfg.AutoMigrate), "Create tables and upsert the catalog (true/false)")
	lang := fsFlags.String("lang", cfg.DefaultLang, "Default response language (en/ru/es)")
	logLevel := fsFlags.String("log-level", cfg.LogLevel, "Log level (debug/info/warn/error)")
	ginMode := fsFlags.String("gin-mode", cfg.GinMode, "Gin mode (debug/release/test)")

	if err := fsFlags.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Port = strings.TrimSpace(*port)
	cfg.DataDir = strings.TrimSpace(*data)
	cfg.DBURL = strings.TrimSpace(*db)
	if b, ok := parseBool(*auto); ok {
		cfg.AutoMigrate = b
	} else {
		return cfg, fmt.Errorf("invalid -auto-migrate value %q", *auto)
	}
	cfg.DefaultLang = strings.ToLower(strings.TrimSpace(*lang))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(*logLevel))
	cfg.GinMode = strings.ToLower(strings.TrimSpace(*ginMode))

	return cfg, nil
}

// SlogLevel: неизвестный уровень считается info
func (c Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
