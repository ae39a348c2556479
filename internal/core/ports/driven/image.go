package driven

import "github.com/custodia-labs/bordermap/internal/core/domain"

// ImageInspector validates reference images.
type ImageInspector interface {
	// Inspect decodes the header of the image at path.
	// Returns domain.ErrNotFound if the file is missing and
	// domain.ErrUnsupportedType if the format is not recognised.
	Inspect(path string) (domain.ImageInfo, error)
}
