// Package registry provides a global registry of maze layouts.
// Built-in layouts register themselves in init() functions and user layouts
// are added at startup, allowing the platform to list and build mazes
// without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mazewalk/internal/world"
)

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	ID     string
	Title  string
	Width  int
	Height int
	Source string // "builtin" or the file the layout was loaded from
}

// ErrUnknownLayout is returned when no layout is registered under an ID.
var ErrUnknownLayout = errors.New("registry: unknown layout")

// Factory returns a fresh copy of a layout.
type Factory func() world.Layout

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]LayoutInfo)
	mu        sync.RWMutex
)

// Register adds a layout factory to the registry.
// Typically called from an init() function.
// Panics if a layout with the same ID is already registered.
func Register(id string, f Factory) {
	if err := Add(id, f); err != nil {
		panic(err.Error())
	}
}

// Add registers a layout factory and reports a duplicate ID as an error.
// Used for layouts loaded from disk, where a clash is a user mistake.
func Add(id string, f Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		return fmt.Errorf("registry: layout %q already registered", id)
	}

	factories[id] = f

	// Get metadata by building a temporary instance
	l := f()
	source := l.FilePath
	if source == "" {
		source = "builtin"
	}
	infos[id] = LayoutInfo{
		ID:     id,
		Title:  l.Name,
		Width:  l.Width,
		Height: l.Height,
		Source: source,
	}
	return nil
}

// List returns information about all registered layouts, sorted by ID.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a layout by its ID.
// Returns an error if the layout ID is not registered.
func Create(id string) (world.Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return world.Layout{}, fmt.Errorf("%w %q", ErrUnknownLayout, id)
	}

	return f(), nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a layout. Used by tests to keep the global state clean.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(infos, id)
}
