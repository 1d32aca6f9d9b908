package reference

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// имена файлов справочников внутри каталога данных
const (
	FileAdditives  = "additives.yaml"
	FileCategories = "categories.yaml"
	FileNova       = "nova.yaml"
	FileNutriScore = "nutriscore.yaml"
)

// LoadCatalog читает все справочники из папки dir (см. File* константы)
func LoadCatalog(dir string) (*Catalog, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", dir)
	}
	return LoadCatalogFS(os.DirFS(dir))
}

// LoadEmbedded собирает каталог из данных, вшитых в бинарь
func LoadEmbedded() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return LoadCatalogFS(sub)
}

// MustLoadEmbedded — как LoadEmbedded, но паникует: вшитые данные обязаны быть валидными
func MustLoadEmbedded() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic("reference: embedded catalog: " + err.Error())
	}
	return c
}

func LoadCatalogFS(fsys fs.FS) (*Catalog, error) {
	var src Source
	var err error

	if src.Additives, err = readDirectory[Additive](fsys, FileAdditives); err != nil {
		return nil, err
	}
	if src.Categories, err = readDirectory[CategoryInfo](fsys, FileCategories); err != nil {
		return nil, err
	}
	if src.Nova, err = readDirectory[NovaInfo](fsys, FileNova); err != nil {
		return nil, err
	}
	if src.NutriScore, err = readDirectory[NutriScoreInfo](fsys, FileNutriScore); err != nil {
		return nil, err
	}
	return New(src)
}

func readDirectory[T any](fsys fs.FS, name string) ([]T, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var dir Directory[T]
	dec := yaml.NewDecoder(bytes.NewReader(data))
	// опечатки в ключах — ошибка, а не молча пустое поле
	dec.KnownFields(true)
	if err := dec.Decode(&dir); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse %s: empty file", name)
		}
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return dir.Items, nil
}
