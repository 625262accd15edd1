package table

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Loader reads one spreadsheet format into a Table.
type Loader interface {
	CanLoad(path string) bool
	Load(path string) (*Table, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

func init() {
	Register(xlsxLoader{})
	Register(csvLoader{})
}

// Load reads the file at path with the first loader that accepts its
// extension. Every failure is returned as a *LoadError.
func Load(path string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("file not found: %w", err)}
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &LoadError{Path: path, Err: errors.New("path is a directory")}
	}
	for _, l := range registry {
		if !l.CanLoad(path) {
			continue
		}
		t, err := l.Load(path)
		if err != nil {
			var le *LoadError
			if errors.As(err, &le) {
				return nil, err
			}
			return nil, &LoadError{Path: path, Err: err}
		}
		return t, nil
	}
	if hasExt(path, ".xls") {
		return nil, &LoadError{Path: path, Err: ErrLegacyXLS}
	}
	return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(path))}
}

func hasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
