// Package levels loads hand-made ice slide levels from disk.
// This package depends on puzzle but puzzle does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/iceslide/internal/games/iceslide/levels/formats"
	"github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"
)

// DefaultRoot is the level directory used when none is configured.
const DefaultRoot = "levels"

// ErrNotFound is returned by LoadByID when no file carries the ID.
var ErrNotFound = errors.New("levels: level not found")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Layout   puzzle.Layout
	Metadata map[string]string
	FilePath string
}

// Board builds a fresh playable board from the level.
func (l *Level) Board() (*puzzle.Board, error) {
	return l.Layout.Board()
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	if root == "" {
		root = DefaultRoot
	}
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files, skipping files that
// fail to parse. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file. A file without an id takes its file
// name without extension.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := filepath.Ext(path)
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), ext)
	}

	return Level{
		ID:       id,
		Name:     parsed.Name,
		Layout:   parsed.Layout,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Encode serializes a level in the format named by ext.
func Encode(lvl Level, ext string) ([]byte, error) {
	src := formats.Level{ID: lvl.ID, Name: lvl.Name, Layout: lvl.Layout, Metadata: lvl.Metadata}
	switch strings.ToLower(ext) {
	case ".json":
		return formats.EncodeJSON(src)
	case ".yaml", ".yml":
		return formats.EncodeYAML(src)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// Write stores a level under dir as <id><ext>, choosing the format from
// ext. It returns the written path.
func Write(dir string, lvl Level, ext string) (string, error) {
	ext = strings.ToLower(ext)
	data, err := Encode(lvl, ext)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, lvl.ID+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(ext))
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return formats.ParseJSON(data)
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
