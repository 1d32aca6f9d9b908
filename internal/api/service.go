package api

import (
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"foodref/internal/reference"

	"github.com/oklog/ulid/v2"
)

// Service — всё, что нужно хендлерам: каталог (только чтение), язык по умолчанию, логгер
type Service struct {
	Catalog     *reference.Catalog
	DefaultLang reference.Lang
	Logger      *slog.Logger

	mu      sync.Mutex // ulid.Monotonic не потокобезопасен
	entropy io.Reader
}

// NewService готовит сервис поверх уже проверенного каталога
func NewService(catalog *reference.Catalog, defaultLang reference.Lang, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if _, ok := reference.ParseLang(string(defaultLang)); !ok {
		defaultLang = reference.LangEN
	}
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		Catalog:     catalog,
		DefaultLang: defaultLang,
		Logger:      logger,
		entropy:     ulid.Monotonic(src, 0),
	}
}

func (s *Service) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}
