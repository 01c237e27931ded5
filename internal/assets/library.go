// Package assets resolves mesh assets to their bounds.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/pathway/internal/logger"
	"github.com/Faultbox/pathway/pkg/math"
)

// ErrMeshNotFound is returned when no directory holds the requested mesh.
var ErrMeshNotFound = errors.New("mesh not found")

// Built-in primitives, sized like the engine's basic shapes (100 unit cube).
var builtins = map[string]Bounds{
	"cube":     BoxBounds(math.Vec3{X: 50, Y: 50, Z: 50}),
	"plane":    BoxBounds(math.Vec3{X: 50, Y: 50, Z: 0}),
	"cylinder": BoxBounds(math.Vec3{X: 50, Y: 50, Z: 50}),
	"sphere":   BoxBounds(math.Vec3{X: 50, Y: 50, Z: 50}),
}

// Library looks up mesh files in a list of directories.
// Directories are searched in order (first = highest priority).
type Library struct {
	dirs  []string
	cache *Cache[Bounds]
	mu    sync.RWMutex
}

// NewLibrary creates a library searching dirs.
func NewLibrary(dirs ...string) *Library {
	return &Library{
		dirs:  append([]string(nil), dirs...),
		cache: NewCache[Bounds](),
	}
}

// AddDir appends a lower-priority search directory.
func (l *Library) AddDir(dir string) {
	l.mu.Lock()
	l.dirs = append(l.dirs, dir)
	l.mu.Unlock()
}

// Lookup returns the bounds of a mesh. Names without an extension are
// resolved as .obj files; built-in primitive names need no file.
func (l *Library) Lookup(name string) (Bounds, error) {
	if b, ok := l.cache.Get(name); ok {
		return b, nil
	}

	if b, ok := builtins[strings.ToLower(name)]; ok {
		l.cache.Set(name, b)
		return b, nil
	}

	file := name
	if filepath.Ext(file) == "" {
		file += ".obj"
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	candidates := []string{file}
	if !filepath.IsAbs(file) {
		candidates = candidates[:0]
		for _, dir := range l.dirs {
			candidates = append(candidates, filepath.Join(dir, file))
		}
	}

	for _, path := range candidates {
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Bounds{}, fmt.Errorf("opening mesh %s: %w", path, err)
		}

		b, n, err := ReadOBJBounds(f)
		f.Close()
		if err != nil {
			return Bounds{}, fmt.Errorf("reading mesh %s: %w", path, err)
		}

		logger.Debug("mesh loaded",
			zap.String("mesh", name),
			zap.String("path", path),
			zap.Int("vertices", n),
		)
		l.cache.Set(name, b)
		return b, nil
	}

	return Bounds{}, fmt.Errorf("%w: %s", ErrMeshNotFound, name)
}

// Bounds returns the half-extents of a mesh. A missing or unreadable mesh
// reports false so callers fall back to a unit footprint.
func (l *Library) Bounds(mesh string) (math.Vec3, bool) {
	if mesh == "" {
		return math.Vec3{}, false
	}
	b, err := l.Lookup(mesh)
	if err != nil {
		logger.Warn("mesh bounds unavailable", zap.String("mesh", mesh), zap.Error(err))
		return math.Vec3{}, false
	}
	if b.Empty {
		return math.Vec3{}, false
	}
	return b.Extent(), true
}

// Stats returns bounds cache statistics.
func (l *Library) Stats() (hits, misses int) {
	return l.cache.Stats()
}

// Clear drops cached bounds so edited mesh files are read again.
func (l *Library) Clear() {
	l.cache.Clear()
}
