package driving

import (
	"context"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

// DocumentService owns one map document: its border points, borders and
// countries, and the lifecycle of the file they are saved to.
//
// Implementations are not safe for concurrent use.
type DocumentService interface {
	// AddBorderPoint allocates a new point and returns its number.
	AddBorderPoint(x, y float64, isEndpoint bool) (uint32, error)

	// RemoveBorderPoint deletes a point no border ends at.
	RemoveBorderPoint(n uint32) error

	// BorderPoints returns all points in insertion order.
	BorderPoints() []domain.BorderPoint

	// AddCountryBorder creates a border between two endpoints.
	AddCountryBorder(endpoints domain.EdgeKey) error

	// InsertBorderPoint splits the part spanning segment at point n.
	InsertBorderPoint(segment domain.EdgeKey, n uint32) error

	// RemoveCountryBorder deletes an unused border and its interior points.
	RemoveCountryBorder(endpoints domain.EdgeKey) error

	// CountryBorders returns all borders in creation order.
	CountryBorders() []domain.CountryBorder

	// AddCountry stores a named closed loop of borders.
	AddCountry(name string, borders []domain.EdgeKey) error

	// RemoveCountry deletes a country. Its borders are kept.
	RemoveCountry(name string) error

	// Countries returns all countries in creation order.
	Countries() []domain.Country

	// Polygon linearises one country.
	Polygon(name string) (domain.Polygon, error)

	// Polygons linearises every country.
	Polygons() ([]domain.Polygon, error)

	// ReferenceImage returns the path of the image being traced.
	ReferenceImage() string

	// SetReferenceImage validates and records the image being traced.
	SetReferenceImage(path string) error

	// Summary returns counts for display.
	Summary() domain.MapSummary

	// FileName returns the current document path.
	FileName() string

	// SetFileName changes the document path. The document is marked
	// unsaved and may not overwrite an existing file until allowed.
	SetFileName(name string)

	// SetMayOverwrite permits or forbids Save replacing an existing file.
	SetMayOverwrite(allow bool)

	// SetIgnoreChanges lets Open and New discard unsaved changes.
	SetIgnoreChanges(ignore bool)

	// HasUnsavedChanges reports whether the map changed since it was
	// last saved or opened.
	HasUnsavedChanges() bool

	// FileExists reports whether the current document path exists.
	FileExists(ctx context.Context) bool

	// State returns all lifecycle flags.
	State(ctx context.Context) domain.DocumentState

	// Save writes the document and regenerates its exports.
	Save(ctx context.Context) error

	// Open replaces the map with the document at path.
	Open(ctx context.Context, path string) error

	// New discards the map and starts an empty, unnamed one.
	New() error

	// Export regenerates the derived artifacts without saving.
	// Returns the paths written.
	Export(ctx context.Context) ([]string, error)
}
