package driven

import (
	"context"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

// MapStore persists map documents.
//
// Implementations must reproduce a saved snapshot exactly on Load,
// including the order of points, borders, parts and countries.
type MapStore interface {
	// Load reads the document at path.
	// Returns domain.ErrNotFound if path does not exist and
	// domain.ErrCorruptData if it cannot be decoded.
	Load(ctx context.Context, path string) (*domain.MapSnapshot, error)

	// Save writes the document to path, replacing any existing file.
	Save(ctx context.Context, path string, snap *domain.MapSnapshot) error

	// Exists reports whether a document file is present at path.
	Exists(ctx context.Context, path string) (bool, error)
}
