// Package router picks a map store by file extension.
package router

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/bordermap/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/bordermap/internal/adapters/driven/storage/xmlfile"
	"github.com/custodia-labs/bordermap/internal/adapters/driven/storage/yamlfile"
	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
)

// Ensure Router implements the interface.
var _ driven.MapStore = (*Router)(nil)

// Router dispatches each call to the store registered for the path's
// extension. Extensions are matched case-insensitively.
type Router struct {
	stores map[string]driven.MapStore
}

// New creates an empty router.
func New() *Router {
	return &Router{stores: make(map[string]driven.MapStore)}
}

// NewDefault routes .xml to XML, .yaml and .yml to YAML, and .db and
// .sqlite to SQLite.
func NewDefault() *Router {
	r := New()
	r.Register(xmlfile.NewStore(), ".xml")
	r.Register(yamlfile.NewStore(), ".yaml", ".yml")
	r.Register(sqlite.NewStore(), ".db", ".sqlite")
	return r
}

// Register routes the given extensions to store.
func (r *Router) Register(store driven.MapStore, exts ...string) {
	for _, ext := range exts {
		r.stores[normalise(ext)] = store
	}
}

// Extensions returns the registered extensions.
func (r *Router) Extensions() []string {
	out := make([]string, 0, len(r.stores))
	for ext := range r.stores {
		out = append(out, ext)
	}
	return out
}

// Load reads path with the store for its extension.
func (r *Router) Load(ctx context.Context, path string) (*domain.MapSnapshot, error) {
	store, err := r.route(path)
	if err != nil {
		return nil, err
	}
	return store.Load(ctx, path)
}

// Save writes path with the store for its extension.
func (r *Router) Save(ctx context.Context, path string, snap *domain.MapSnapshot) error {
	store, err := r.route(path)
	if err != nil {
		return err
	}
	return store.Save(ctx, path, snap)
}

// Exists checks path with the store for its extension.
func (r *Router) Exists(ctx context.Context, path string) (bool, error) {
	store, err := r.route(path)
	if err != nil {
		return false, err
	}
	return store.Exists(ctx, path)
}

func (r *Router) route(path string) (driven.MapStore, error) {
	ext := normalise(filepath.Ext(path))
	store, ok := r.stores[ext]
	if !ok {
		return nil, fmt.Errorf("no document store for %q: %w", path, domain.ErrUnsupportedType)
	}
	return store, nil
}

func normalise(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
