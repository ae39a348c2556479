package driven

import (
	"context"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

// ExportRequest carries everything an exporter may render.
type ExportRequest struct {
	// BasePath is the document path without its extension.
	// Exporters append their own extensions.
	BasePath string

	// Snapshot is the full document at the time of export.
	Snapshot domain.MapSnapshot

	// Polygons are the linearised countries in country order.
	Polygons []domain.Polygon

	// Seed fixes random display colours. Zero means time-seeded.
	Seed int64
}

// Exporter writes derived artifacts for a map document.
type Exporter interface {
	// Format identifies the exporter.
	Format() domain.ExportFormat

	// Export writes the artifacts and returns the paths written.
	Export(ctx context.Context, req ExportRequest) ([]string, error)
}
