// Package levels provides level loading for Supaplex.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/levels/formats"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned when no level has the requested ID.
var ErrNotFound = errors.New("levels: level not found")

// Level represents a complete level definition.
type Level struct {
	ID          string
	Name        string
	Description sim.Description
	FilePath    string
	Metadata    map[string]string
}

// NewSim builds a running simulation level from this definition.
func (l Level) NewSim(opts ...sim.Option) (*sim.Level, error) {
	return sim.NewLevel(l.Description, opts...)
}

func fromParsed(p formats.Level, path string) Level {
	name := p.Name
	if name == "" {
		name = p.ID
	}
	desc := p.Description()
	desc.Name = name
	return Level{
		ID:          p.ID,
		Name:        name,
		Description: desc,
		FilePath:    path,
		Metadata:    p.Metadata,
	}
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

func (l *Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		loaded, err := l.LoadFile(path)
		if err != nil {
			l.logger().Warn("skipping level file", "path", path, "err", err)
			return nil
		}

		levels = append(levels, loaded...)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads a single level file. A LEVELS.DAT pack yields one level
// per record, with IDs prefixed by the file name.
func (l *Loader) LoadFile(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}

	prefix := ""
	if ext == ".dat" {
		prefix = strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))) + "-"
	}

	out := make([]Level, len(parsed))
	for i, p := range parsed {
		p.ID = prefix + p.ID
		out[i] = fromParsed(p, path)
	}
	return out, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return Find(levels, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return IDs(levels), nil
}

// Builtin returns the levels shipped with the binary.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading builtin levels: %w", err)
	}

	var levels []Level
	for _, e := range entries {
		path := "builtin/" + e.Name()
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		p, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		levels = append(levels, fromParsed(p, path))
	}

	sortByID(levels)
	return levels, nil
}

// Resolve loads the levels under root, or the built-in levels when root
// is empty.
func Resolve(root string, logger *log.Logger) ([]Level, error) {
	if root == "" {
		return Builtin()
	}
	loader := NewLoader(root)
	loader.Logger = logger
	levels, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no level files under %s", ErrNotFound, root)
	}
	return levels, nil
}

// Find returns the level with the given ID.
func Find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Index returns the position of the level with the given ID, or -1.
func Index(levels []Level, id string) int {
	for i, lvl := range levels {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}

// IDs returns the IDs of levels in order.
func IDs(levels []Level) []string {
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids
}

func sortByID(levels []Level) {
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) ([]formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		lvl, err := formats.ParseYAML(data)
		if err != nil {
			return nil, err
		}
		return []formats.Level{lvl}, nil
	case ".dat":
		return formats.ParseDAT(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
