// Package levels registers the built-in maze layouts and loads user layouts
// from disk. This package depends on world and registry but neither depends
// on levels; importing it for side effects makes the layouts available.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/mazewalk/internal/registry"
	"github.com/vovakirdan/mazewalk/internal/world"
)

// DefaultID is the layout played when none is requested.
const DefaultID = "classic"

//go:embed mazes/*.yaml
var builtin embed.FS

func init() {
	layouts, err := loadFS(builtin, "mazes")
	if err != nil {
		panic(fmt.Sprintf("levels: built-in layouts: %v", err))
	}
	for _, l := range layouts {
		registry.Register(l.ID, factory(l))
	}
}

// factory returns a Factory handing out copies of l.
func factory(l world.Layout) registry.Factory {
	return func() world.Layout {
		c := l
		c.Rows = append([]string(nil), l.Rows...)
		return c
	}
}

// loadFS parses every layout file under dir in fsys, sorted by ID.
func loadFS(fsys fs.FS, dir string) ([]world.Layout, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var layouts []world.Layout
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(filepath.Ext(e.Name())) {
			continue
		}
		data, err := fs.ReadFile(fsys, dir+"/"+e.Name())
		if err != nil {
			return nil, err
		}
		l, err := world.ParseLayout(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		layouts = append(layouts, l)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
	return layouts, nil
}

// LoadDir recursively scans root for layout files and registers each one.
// A missing directory is not an error. Files that fail to parse or clash
// with an existing ID are skipped and reported in the returned slice.
func LoadDir(root string) (loaded []string, problems []error, err error) {
	if _, statErr := os.Stat(root); os.IsNotExist(statErr) {
		return nil, nil, nil
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		l, err := LoadFile(path)
		if err != nil {
			problems = append(problems, err)
			return nil
		}
		if err := registry.Add(l.ID, factory(l)); err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", path, err))
			return nil
		}
		loaded = append(loaded, l.ID)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Strings(loaded)
	return loaded, problems, nil
}

// LoadFile loads a single layout file.
func LoadFile(path string) (world.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return world.Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	l, err := world.ParseLayout(data)
	if err != nil {
		return world.Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	l.FilePath = path
	return l, nil
}

// UserDir returns the directory user layouts are loaded from.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazewalk", "mazes")
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
