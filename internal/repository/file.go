package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/DanRulev/nihongo.git/internal/models"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// FileR keeps the collection in one JSON or YAML file, picked by extension.
type FileR struct {
	path      string
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

func NewFileRepository(path string) *FileR {
	f := &FileR{
		path:      path,
		marshal:   marshalJSON,
		unmarshal: json.Unmarshal,
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f.marshal = yaml.Marshal
		f.unmarshal = yaml.Unmarshal
	}
	return f
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (f *FileR) Path() string {
	return f.path
}

// Load returns an empty collection when the file does not exist yet. A file
// that cannot be decoded is an error, never an empty collection.
func (f *FileR) Load(ctx context.Context) (models.Collection, error) {
	if err := ctx.Err(); err != nil {
		return models.Collection{}, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Collection{}, nil
		}
		return models.Collection{}, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}

	var c models.Collection
	if err := f.unmarshal(data, &c); err != nil {
		return models.Collection{}, fmt.Errorf("%w: %s: %v", models.ErrCorruptStore, f.path, err)
	}
	if c.Strategy != "" && !c.Strategy.Valid() {
		return models.Collection{}, fmt.Errorf("%w: %s: unknown strategy %q", models.ErrCorruptStore, f.path, c.Strategy)
	}
	return c, nil
}

// Save writes to a temporary file next to the target and renames it over the
// target, so an interrupted save leaves the previous file intact.
func (f *FileR) Save(ctx context.Context, c models.Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := f.marshal(c)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", models.ErrPersistence, err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", models.ErrPersistence, err)
		}
	}
	if err := renameio.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return nil
}
